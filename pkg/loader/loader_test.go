package loader

import (
	"bytes"
	"testing"
)

func TestLoadImage(t *testing.T) {
	raw := []byte{0x70, 0x00, 0x00, 0x00, 0xD2, 0x00, 0x00, 0x41}
	words, err := LoadImage(bytes.NewReader(raw))
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	want := []uint32{0x70000000, 0xD2000041}
	if len(words) != len(want) {
		t.Fatalf("len(words) = %d, want %d", len(words), len(want))
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %#x, want %#x", i, words[i], want[i])
		}
	}
}

func TestLoadImageTruncated(t *testing.T) {
	raw := []byte{0x70, 0x00, 0x00}
	if _, err := LoadImage(bytes.NewReader(raw)); err != ErrTruncated {
		t.Fatalf("LoadImage = %v, want ErrTruncated", err)
	}
}

func TestLoadImageEmpty(t *testing.T) {
	words, err := LoadImage(bytes.NewReader(nil))
	if err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	if len(words) != 0 {
		t.Fatalf("len(words) = %d, want 0", len(words))
	}
}
