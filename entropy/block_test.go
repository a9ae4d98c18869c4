package entropy

import (
	"bytes"
	"io"
	"testing"

	"github.com/duffcomp/huffpack/bitstream"
)

func encodeDecode(t *testing.T, data []byte) []byte {
	var buf bytes.Buffer

	sink, err := bitstream.NewDefaultBitSink(&buf)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	enc, err := NewBlockEncoder(sink)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := enc.Write(data); err != nil {
		t.Fatalf("Write failed: %v", err)
	}

	if err := enc.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	if err := sink.Align(); err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	source, err := bitstream.NewDefaultBitSource(&buf)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	dec, err := NewBlockDecoder(source)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	got, err := io.ReadAll(dec)

	if err != nil {
		t.Fatalf("ReadAll failed: %v", err)
	}

	return got
}

func TestBlockRoundTripVariedAlphabets(t *testing.T) {
	cases := [][]byte{
		[]byte(""),
		[]byte("a"),
		[]byte("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"),
		[]byte("the quick brown fox jumps over the lazy dog"),
		bytes.Repeat([]byte{0, 1, 2, 3, 4, 5, 6, 7}, 37),
	}

	for i, c := range cases {
		got := encodeDecode(t, c)

		if !bytes.Equal(got, c) {
			t.Errorf("case %d: round trip mismatch, got %d bytes want %d bytes", i, len(got), len(c))
		}
	}
}

func TestBlockRoundTripAllByteValues(t *testing.T) {
	data := make([]byte, 256)

	for i := range data {
		data[i] = byte(i)
	}

	got := encodeDecode(t, data)

	if !bytes.Equal(got, data) {
		t.Errorf("round trip mismatch over full byte alphabet")
	}
}

func TestBlockRoundTripLargerThanMaxBlockSize(t *testing.T) {
	data := bytes.Repeat([]byte("0123456789"), 1000)
	got := encodeDecode(t, data)

	if !bytes.Equal(got, data) {
		t.Errorf("round trip mismatch for multi-block payload: got %d bytes want %d", len(got), len(data))
	}
}

func TestBuildCodeLengthsSingleSymbol(t *testing.T) {
	var freq [256]int
	freq[42] = 100

	length := buildCodeLengths(freq)

	if length[42] != 1 {
		t.Errorf("expected length 1 for the sole present symbol, got %d", length[42])
	}

	for i, l := range length {
		if i != 42 && l != 0 {
			t.Errorf("symbol %d: expected length 0, got %d", i, l)
		}
	}
}

func TestBuildCanonicalCodesPrefixProperty(t *testing.T) {
	var freq [256]int
	freq['a'] = 50
	freq['b'] = 20
	freq['c'] = 10
	freq['d'] = 1
	freq['e'] = 1

	length := buildCodeLengths(freq)
	code := buildCanonicalCodes(length)

	type entry struct {
		code uint32
		len  int
	}

	var entries []entry

	for i := 0; i < 256; i++ {
		if length[i] > 0 {
			entries = append(entries, entry{code[i], length[i]})
		}
	}

	for i := range entries {
		for j := range entries {
			if i == j {
				continue
			}

			a, b := entries[i], entries[j]

			if a.len >= b.len {
				continue
			}

			if (b.code >> uint(b.len-a.len)) == a.code {
				t.Errorf("code %d (len %d) is a prefix of code %d (len %d)", a.code, a.len, b.code, b.len)
			}
		}
	}
}
