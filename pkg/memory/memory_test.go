package memory

import "testing"

func TestNewAndFetch(t *testing.T) {
	s := New([]uint32{1, 2, 3})
	if s.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", s.Len())
	}
	if w, ok := s.Fetch(1); !ok || w != 2 {
		t.Fatalf("Fetch(1) = (%d, %v), want (2, true)", w, ok)
	}
	if _, ok := s.Fetch(3); ok {
		t.Fatalf("Fetch(3) should be out of range")
	}
}

func TestMapIsZeroFilledAndNonzero(t *testing.T) {
	s := New(nil)
	id := s.Map(4)
	if id == 0 {
		t.Fatalf("Map returned 0, identifier 0 is reserved")
	}
	for i := uint32(0); i < 4; i++ {
		v, err := s.Read(id, i)
		if err != nil || v != 0 {
			t.Fatalf("Read(%d, %d) = (%d, %v), want (0, nil)", id, i, v, err)
		}
	}
}

func TestUnmapThenMapReuses(t *testing.T) {
	s := New(nil)
	id := s.Map(1)
	if err := s.Unmap(id); err != nil {
		t.Fatalf("Unmap: %v", err)
	}
	reused := s.Map(1)
	if reused != id {
		t.Fatalf("Map after Unmap = %d, want reused id %d", reused, id)
	}
}

func TestUnmapZeroFails(t *testing.T) {
	s := New(nil)
	if err := s.Unmap(0); err != ErrUnmapZero {
		t.Fatalf("Unmap(0) = %v, want ErrUnmapZero", err)
	}
}

func TestUnmapUnmappedFails(t *testing.T) {
	s := New(nil)
	if err := s.Unmap(5); err == nil {
		t.Fatalf("Unmap of unmapped segment should fail")
	}
}

func TestReadDeadSegmentFaults(t *testing.T) {
	s := New(nil)
	id := s.Map(2)
	if err := s.Unmap(id); err != nil {
		t.Fatalf("Unmap: %v", err)
	}
	if _, err := s.Read(id, 0); err == nil {
		t.Fatalf("Read of unmapped segment should fault")
	}
}

func TestWriteOutOfRange(t *testing.T) {
	s := New(nil)
	id := s.Map(2)
	if err := s.Write(id, 5, 1); err == nil {
		t.Fatalf("Write out of range should fault")
	}
}

func TestCloneIndependence(t *testing.T) {
	s := New([]uint32{0, 0})
	id := s.Map(1)
	if err := s.Write(id, 0, 42); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if err := s.CloneIntoZero(id); err != nil {
		t.Fatalf("CloneIntoZero: %v", err)
	}
	v0, _ := s.Read(0, 0)
	if v0 != 42 {
		t.Fatalf("segment zero after clone = %d, want 42", v0)
	}
	if err := s.Write(id, 0, 7); err != nil {
		t.Fatalf("Write: %v", err)
	}
	v0, _ = s.Read(0, 0)
	if v0 != 42 {
		t.Fatalf("segment zero mutated after writing source segment: got %d, want still 42", v0)
	}
}

func TestCloneIsDeepCopy(t *testing.T) {
	s := New([]uint32{9})
	id := s.Map(1)
	if err := s.CloneIntoZero(id); err != nil {
		t.Fatalf("CloneIntoZero: %v", err)
	}
	if err := s.Write(0, 0, 100); err != nil {
		t.Fatalf("Write: %v", err)
	}
	v, _ := s.Read(id, 0)
	if v != 0 {
		t.Fatalf("source segment mutated after writing clone: got %d, want 0", v)
	}
}
