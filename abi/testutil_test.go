package abi

import (
	"encoding/hex"
	"testing"

	"github.com/api3dao/airnode-abi/word"
)

// mustWord decodes a 64-hex-character string into a Word, failing the
// test on any malformed input.
func mustWord(t *testing.T, hexStr string) word.Word {
	t.Helper()
	b, err := hex.DecodeString(hexStr)
	if err != nil {
		t.Fatalf("bad hex %q: %v", hexStr, err)
	}
	if len(b) != 32 {
		t.Fatalf("hex %q decodes to %d bytes, want 32", hexStr, len(b))
	}
	var w word.Word
	copy(w[:], b)
	return w
}
