package archive

import (
	"bytes"
	"io"
	"testing"
)

func TestWriterReaderRoundTrip(t *testing.T) {
	files := map[string]string{
		"hello.txt": "hello, world",
		"empty.bin": "",
		"poem.txt":  "the quick brown fox jumps over the lazy dog, again and again and again",
	}
	order := []string{"hello.txt", "empty.bin", "poem.txt"}

	var buf bytes.Buffer
	w, err := NewWriter(&buf)

	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	for _, name := range order {
		if _, err := w.WriteEntry(name, bytes.NewBufferString(files[name])); err != nil {
			t.Fatalf("WriteEntry(%s) failed: %v", name, err)
		}
	}

	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := NewReader(&buf)

	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	for _, want := range order {
		name, entry, err := r.Next()

		if err != nil {
			t.Fatalf("Next failed: %v", err)
		}

		if name != want {
			t.Errorf("expected name %q, got %q", want, name)
		}

		data, err := io.ReadAll(entry)

		if err != nil {
			t.Fatalf("ReadAll(%s) failed: %v", name, err)
		}

		if string(data) != files[want] {
			t.Errorf("entry %s: got %q, want %q", name, string(data), files[want])
		}
	}

	if _, _, err := r.Next(); err != io.EOF {
		t.Errorf("expected io.EOF after last entry, got %v", err)
	}
}

func TestReaderRejectsBadMagic(t *testing.T) {
	buf := bytes.NewBufferString("not an archive")

	if _, err := NewReader(buf); err == nil {
		t.Errorf("expected an error for a bad magic header")
	}
}

func TestWriterRejectsBadNameLength(t *testing.T) {
	var buf bytes.Buffer
	w, err := NewWriter(&buf)

	if err != nil {
		t.Fatalf("NewWriter failed: %v", err)
	}

	if _, err := w.WriteEntry("", bytes.NewBufferString("x")); err == nil {
		t.Errorf("expected an error for an empty entry name")
	}
}

func TestReaderSkipsUndrainedEntry(t *testing.T) {
	var buf bytes.Buffer
	w, _ := NewWriter(&buf)
	w.WriteEntry("a.txt", bytes.NewBufferString("aaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"))
	w.WriteEntry("b.txt", bytes.NewBufferString("bbbb"))
	w.Close()

	r, err := NewReader(&buf)

	if err != nil {
		t.Fatalf("NewReader failed: %v", err)
	}

	name, _, err := r.Next()

	if err != nil || name != "a.txt" {
		t.Fatalf("expected a.txt, got %q err %v", name, err)
	}

	name, entry, err := r.Next()

	if err != nil {
		t.Fatalf("Next failed: %v", err)
	}

	if name != "b.txt" {
		t.Fatalf("expected b.txt, got %q", name)
	}

	data, err := io.ReadAll(entry)

	if err != nil || string(data) != "bbbb" {
		t.Errorf("expected bbbb, got %q err %v", string(data), err)
	}
}
