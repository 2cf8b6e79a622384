package abi

import (
	"math/rand"
	"reflect"
	"testing"

	"github.com/api3dao/airnode-abi/word"
)

// randName returns a random short name of at most word.MaxShortStringLen
// bytes, in the style of the teacher's own rand-driven table tests
// (date/date_test.go, ints/random.go).
func randName(rng *rand.Rand) string {
	const alphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	n := rng.Intn(word.MaxShortStringLen) + 1
	b := make([]byte, n)
	for i := range b {
		b[i] = alphabet[rng.Intn(len(alphabet))]
	}
	return string(b)
}

func randBytes(rng *rand.Rand, n int) []byte {
	b := make([]byte, n)
	rng.Read(b)
	return b
}

func randWord(rng *rand.Rand) word.Word {
	var w word.Word
	rng.Read(w[:])
	return w
}

// roundTrip encodes p, decodes the result under strict, and fails the
// test unless the decoded ABI equals Only(p).
func roundTrip(t *testing.T, p Param, strict bool) {
	t.Helper()
	encoded, err := Encode(Only(p))
	if err != nil {
		t.Fatalf("Encode(%v): %v", p, err)
	}
	decoded, err := Decode(encoded, strict)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}
	if !reflect.DeepEqual(decoded, Only(p)) {
		t.Fatalf("round trip mismatch: got %+v want %+v", decoded, Only(p))
	}
}

// Property 1: strict round trip for every variant except Bool, Date,
// and String32, which are only recoverable in non-strict mode.
func TestPropertyStrictRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	for i := 0; i < 50; i++ {
		roundTrip(t, NewAddress(randName(rng), *(*word.Address)(randBytes(rng, 20))), true)
		roundTrip(t, NewBytes(randName(rng), randBytes(rng, rng.Intn(96))), true)
		roundTrip(t, NewBytes32(randName(rng), randWord(rng)), true)
		roundTrip(t, NewUint256(randName(rng), randWord(rng)), true)
		roundTrip(t, NewString(randName(rng), randName(rng)), true)

		m := randWord(rng)
		m[0] &= 0x7f
		roundTrip(t, NewInt256(randName(rng), m, rng.Intn(2) == 0), true)
	}
}

// Property 2: non-strict round trip for Bool, Date, and String32.
func TestPropertyNonStrictRoundTrip(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for i := 0; i < 50; i++ {
		roundTrip(t, NewBool(randName(rng), rng.Intn(2) == 0), false)
		roundTrip(t, NewDate(randName(rng), int32(1900+rng.Intn(200)), 1+rng.Intn(12), 1+rng.Intn(28)), false)
		roundTrip(t, NewString32(randName(rng), randName(rng)), false)
	}
}

// Property 3: schema derivation.
func TestPropertySchemaDerivation(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 50; i++ {
		n := rng.Intn(10)
		params := make([]Param, n)
		want := make([]byte, 1, n+1)
		want[0] = '1'
		for j := 0; j < n; j++ {
			params[j] = NewUint256(randName(rng), randWord(rng))
			want = append(want, 'u')
		}
		a := New(params)
		if a.Schema != string(want) {
			t.Fatalf("got schema %q want %q", a.Schema, want)
		}
	}
}

// Property 4: word alignment.
func TestPropertyWordAlignment(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	for i := 0; i < 30; i++ {
		var params []Param
		expected := 1
		nFixed := rng.Intn(5)
		for j := 0; j < nFixed; j++ {
			params = append(params, NewUint256(randName(rng), randWord(rng)))
			expected += 2
		}
		nDynamic := rng.Intn(4)
		for j := 0; j < nDynamic; j++ {
			payload := randBytes(rng, rng.Intn(80))
			params = append(params, NewBytes(randName(rng), payload))
			expected += 2 + 1 + (len(payload)+31)/32
		}
		encoded, err := Encode(New(params))
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		if len(encoded) != expected {
			t.Fatalf("got %d words, want %d", len(encoded), expected)
		}
	}
}

// Property 5: offset correctness — every dynamic parameter's offset
// word, divided by 32, points at a word whose value equals the
// payload's byte length.
func TestPropertyOffsetCorrectness(t *testing.T) {
	rng := rand.New(rand.NewSource(123))
	for i := 0; i < 20; i++ {
		payloadA := randBytes(rng, rng.Intn(70))
		payloadB := []byte(randName(rng))
		params := []Param{
			NewUint256(randName(rng), randWord(rng)),
			NewBytes("bytesParam", payloadA),
			NewString("stringParam", string(payloadB)),
		}
		encoded, err := Encode(New(params))
		if err != nil {
			t.Fatalf("Encode: %v", err)
		}
		// fixed region: schema(1) + uint(2) + bytes placeholder(2) + string placeholder(2) = 7
		bytesOffsetWord := encoded[4]
		stringOffsetWord := encoded[6]

		checkOffset := func(offsetWord word.Word, wantLen int) {
			t.Helper()
			offBytes, ok := word.WordToUint64(offsetWord)
			if !ok || offBytes%32 != 0 {
				t.Fatalf("bad offset word %x", offsetWord)
			}
			lengthWord := encoded[offBytes/32]
			gotLen, ok := word.WordToUint64(lengthWord)
			if !ok || int(gotLen) != wantLen {
				t.Fatalf("got length %d want %d", gotLen, wantLen)
			}
		}
		checkOffset(bytesOffsetWord, len(payloadA))
		checkOffset(stringOffsetWord, len(payloadB))
	}
}

// Property 6: signed-int symmetry.
func TestPropertySignedIntSymmetry(t *testing.T) {
	rng := rand.New(rand.NewSource(55))
	for i := 0; i < 100; i++ {
		m := randWord(rng)
		m[0] &= 0x7f
		if m == (word.Word{}) {
			continue
		}
		neg := word.IntToWord(m, true)
		gotM, gotNeg := word.WordToInt(neg)
		if !gotNeg || gotM != m {
			t.Fatalf("negative round trip failed for %x", m)
		}
		pos := word.IntToWord(m, false)
		if pos != m {
			t.Fatalf("positive encoding changed magnitude for %x", m)
		}
	}
}
