package abi

import (
	"unicode/utf8"

	"github.com/api3dao/airnode-abi/word"
)

// Decode parses words into an ABI. The schema string is read from
// words[0]; each subsequent schema character consumes a name word and,
// depending on the character, either a value word from the fixed region
// or a pointer word that dereferences into the dynamic tail.
//
// strict controls how the overloaded 'b' schema character is resolved:
// when true, 'b' always yields a Bytes32Param; when false, Decode
// attempts to recover a BoolParam, DateParam, or String32Param from the
// word's UTF-8 content before falling back to Bytes32Param.
func Decode(words []word.Word, strict bool) (ABI, error) {
	if len(words) == 0 {
		return ABI{}, ErrNoInput
	}
	if words[0] == (word.Word{}) {
		return ABI{}, ErrNoSchema
	}

	schema, err := word.WordToShortString(words[0])
	if err != nil {
		return ABI{}, &InvalidUTF8Error{Detail: err.Error()}
	}
	// schema is never "" here: the only Word that decodes to "" is the
	// all-zero Word, already rejected above as ErrNoSchema.
	if schema[0] != Version {
		return ABI{}, ErrInvalidVersion
	}
	if len(schema) == 1 {
		return None(), nil
	}

	params := make([]Param, 0, len(schema)-1)
	offs := 1
	for _, ch := range []byte(schema[1:]) {
		p, next, err := decodeOne(ch, words, offs, strict)
		if err != nil {
			// The caller only ever observes the first error (per the
			// documented first-error-wins policy), and continuing
			// past a bad cursor position risks chasing a corrupt
			// offset into later characters, so stop here.
			return ABI{}, err
		}
		params = append(params, p)
		offs = next
	}
	return New(params), nil
}

// DecodeWithSchema decodes data as if the given schema string had been
// prepended as word 0. It is used when the caller already knows the
// schema from another source (e.g. the request that produced data).
func DecodeWithSchema(schema string, data []word.Word, strict bool) (ABI, error) {
	schemaWord, err := word.ShortStringToWord(schema)
	if err != nil {
		return ABI{}, &InvalidSchemaError{Msg: err.Error()}
	}
	words := make([]word.Word, 0, len(data)+1)
	words = append(words, schemaWord)
	words = append(words, data...)
	return Decode(words, strict)
}

// decodeOne decodes the parameter for schema character ch starting at
// words[offs] (the name word), returning the decoded Param and the
// cursor position just past this parameter's fixed-region words.
func decodeOne(ch byte, words []word.Word, offs int, strict bool) (Param, int, error) {
	if offs >= len(words) {
		return nil, offs + 1, ErrOffsetOutOfRange
	}
	name, err := word.WordToShortString(words[offs])
	if err != nil {
		return nil, offs + 2, &InvalidUTF8Error{Detail: err.Error()}
	}
	offs++

	switch ch {
	case 'a':
		if offs >= len(words) {
			return nil, offs + 1, ErrOffsetOutOfRange
		}
		return NewAddress(name, word.WordToAddress(words[offs])), offs + 1, nil

	case 'u':
		if offs >= len(words) {
			return nil, offs + 1, ErrOffsetOutOfRange
		}
		return NewUint256(name, words[offs]), offs + 1, nil

	case 'i':
		if offs >= len(words) {
			return nil, offs + 1, ErrOffsetOutOfRange
		}
		magnitude, negative := word.WordToInt(words[offs])
		return NewInt256(name, magnitude, negative), offs + 1, nil

	case 'b':
		if offs >= len(words) {
			return nil, offs + 1, ErrOffsetOutOfRange
		}
		v := words[offs]
		return decodeB(name, v, strict), offs + 1, nil

	case 'B', 'S':
		if offs >= len(words) {
			return nil, offs + 1, ErrOffsetOutOfRange
		}
		payload, err := dereference(words, words[offs])
		if err != nil {
			return nil, offs + 1, err
		}
		if ch == 'B' {
			return NewBytes(name, payload), offs + 1, nil
		}
		s, err := toUTF8(payload)
		if err != nil {
			return nil, offs + 1, err
		}
		return NewString(name, s), offs + 1, nil

	default:
		return nil, offs + 1, &InvalidSchemaCharacterError{Char: ch}
	}
}

// decodeB resolves the overloaded 'b' schema character. In strict mode
// it always yields Bytes32. In non-strict mode it yields a Bool for
// "true"/"false", a Date for a "YYYY-MM-DD" string, a String32 for any
// other valid UTF-8 content, and falls back to Bytes32 only when v is
// not valid UTF-8.
func decodeB(name string, v word.Word, strict bool) Param {
	if !strict {
		if s, err := word.WordToShortString(v); err == nil {
			switch s {
			case "true":
				return NewBool(name, true)
			case "false":
				return NewBool(name, false)
			}
			if y, m, d, ok := word.ParseDate(s); ok {
				return NewDate(name, y, m, d)
			}
			return NewString32(name, s)
		}
	}
	return NewBytes32(name, v)
}

// dereference resolves a byte-offset pointer word into the dynamic
// tail, returning the payload bytes referenced by its length-prefixed
// entry.
func dereference(words []word.Word, ptr word.Word) ([]byte, error) {
	offsetBytes, ok := word.WordToUint64(ptr)
	if !ok || offsetBytes%32 != 0 {
		return nil, ErrOffsetOutOfRange
	}
	lengthIdx := offsetBytes / 32
	if lengthIdx >= uint64(len(words)) {
		return nil, ErrOffsetOutOfRange
	}
	length, ok := word.WordToUint64(words[lengthIdx])
	if !ok || length > (uint64(len(words))-lengthIdx-1)*32 {
		return nil, ErrOffsetOutOfRange
	}
	nWords := word.ChunkCount(length, 32)
	firstPayloadWord := lengthIdx + 1
	if firstPayloadWord > uint64(len(words)) || nWords > uint64(len(words))-firstPayloadWord {
		return nil, ErrOffsetOutOfRange
	}
	payload := make([]byte, 0, length)
	for i := uint64(0); i < nWords; i++ {
		payload = append(payload, words[firstPayloadWord+i][:]...)
	}
	return payload[:length], nil
}

func toUTF8(b []byte) (string, error) {
	if !utf8.Valid(b) {
		return "", &InvalidUTF8Error{Detail: "payload is not valid UTF-8"}
	}
	return string(b), nil
}
