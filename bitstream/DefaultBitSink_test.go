package bitstream

import (
	"bytes"
	"testing"
)

func TestBitSinkSourceRoundTrip(t *testing.T) {
	widths := []uint{1, 3, 8, 13, 20, 32, 4, 7}
	values := []uint32{1, 5, 0xAB, 0x1A2B, 0xFFFFF, 0xDEADBEEF, 0xF, 0x7F}

	var buf bytes.Buffer
	sink, err := NewDefaultBitSink(&buf)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, v := range values {
		if err := sink.WriteBits(v, widths[i]); err != nil {
			t.Fatalf("WriteBits failed: %v", err)
		}
	}

	if err := sink.Align(); err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	source, err := NewDefaultBitSource(&buf)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for i, want := range values {
		got, err := source.ReadBits(widths[i])

		if err != nil {
			t.Fatalf("ReadBits failed: %v", err)
		}

		mask := uint32((uint64(1) << widths[i]) - 1)

		if widths[i] == 32 {
			mask = 0xFFFFFFFF
		}

		if got != want&mask {
			t.Errorf("value %d: got %x, want %x", i, got, want&mask)
		}
	}
}

func TestBitSinkAlignPadsWithZero(t *testing.T) {
	var buf bytes.Buffer
	sink, _ := NewDefaultBitSink(&buf)

	sink.WriteBits(1, 1)

	if err := sink.Align(); err != nil {
		t.Fatalf("Align failed: %v", err)
	}

	if buf.Len() != 1 {
		t.Fatalf("expected 1 byte flushed, got %d", buf.Len())
	}

	if buf.Bytes()[0] != 0x80 {
		t.Errorf("expected 0x80, got %x", buf.Bytes()[0])
	}
}

func TestBitSinkWrittenCounts(t *testing.T) {
	var buf bytes.Buffer
	sink, _ := NewDefaultBitSink(&buf)

	sink.WriteBits(0, 5)

	if sink.Written() != 5 {
		t.Errorf("expected 5 bits written, got %d", sink.Written())
	}

	sink.WriteBits(0, 3)

	if sink.Written() != 8 {
		t.Errorf("expected 8 bits written, got %d", sink.Written())
	}
}

func TestBitSourceAlignDropsRemainder(t *testing.T) {
	var buf bytes.Buffer
	sink, _ := NewDefaultBitSink(&buf)
	sink.WriteBits(0x3, 2)
	sink.Align()
	sink.WriteBits(0x5, 4)
	sink.Align()

	source, _ := NewDefaultBitSource(&buf)

	if _, err := source.ReadBits(2); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	source.Align()
	v, err := source.ReadBits(4)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if v != 0x5 {
		t.Errorf("expected 0x5, got %x", v)
	}
}
