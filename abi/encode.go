package abi

import "github.com/api3dao/airnode-abi/word"

// Encode lays out a as a sequence of 32-byte words: the schema word,
// then two fixed words per parameter in order (a name word and a
// value/placeholder word), then the dynamic tail for any Bytes or
// String parameters, in declaration order.
//
// Encode is a two-pass algorithm. Pass one emits the fixed region and
// records, for each parameter with a dynamic payload, the word index of
// its placeholder. Pass two walks the parameters again, overwriting
// each placeholder with the byte offset of that parameter's dynamic
// payload and appending the payload words.
func Encode(a ABI) ([]word.Word, error) {
	if len(a.Params) > MaxParams {
		return nil, ErrTooManyParams
	}

	schemaWord, err := word.ShortStringToWord(a.Schema)
	if err != nil {
		return nil, ErrStringTooLong
	}
	out := []word.Word{schemaWord}

	// placeholderAt maps a parameter's index to the word index of its
	// placeholder, for parameters with a dynamic payload. It is a
	// short-lived, local mapping; no part of it outlives this call.
	placeholderAt := make(map[int]int)
	for i, p := range a.Params {
		chunks, err := p.fixedChunks()
		if err != nil {
			return nil, err
		}
		if !p.IsFixedSize() {
			placeholderAt[i] = len(out) + 1
		}
		out = append(out, chunks[0], chunks[1])
	}

	offset := len(out) * 32
	for i, p := range a.Params {
		dyn := p.dynamicChunks()
		if len(dyn) == 0 {
			continue
		}
		out[placeholderAt[i]] = word.Uint64ToWord(uint64(offset))
		out = append(out, dyn...)
		offset = len(out) * 32
	}

	return out, nil
}
