// Package memory implements the Universal Machine's segmented memory
// model: a table of numbered segments, each an indexable sequence of
// 32-bit words, plus a LIFO free list of identifiers available for reuse.
//
// Segment zero is reserved for the executing program and is permanently
// mapped for the lifetime of the Segments value; it is never returned to
// the free list.
package memory

import "fmt"

// ErrNotMapped indicates that the segment identifier does not currently
// name a live segment (it is either out of range or sitting on the free
// list).
type ErrNotMapped uint32

func (e ErrNotMapped) Error() string {
	return fmt.Sprintf("memory: segment %d is not mapped", uint32(e))
}

// ErrOutOfRange indicates that a word index is outside a segment's
// current length.
type ErrOutOfRange struct {
	Segment uint32
	Index   uint32
	Length  int
}

func (e ErrOutOfRange) Error() string {
	return fmt.Sprintf("memory: index %d out of range for segment %d (length %d)",
		e.Index, e.Segment, e.Length)
}

// ErrUnmapZero indicates an attempt to unmap segment zero, which is
// permanently mapped.
var ErrUnmapZero = fmt.Errorf("memory: segment 0 can never be unmapped")

// Segments is the segment table and free list. The zero value is not
// ready for use; construct one with New.
type Segments struct {
	table  [][]uint32
	live   []bool
	free   []uint32 // LIFO stack of reusable identifiers, never contains 0
}

// New creates a Segments table whose segment zero holds a copy of
// program. program is not retained; later callers may mutate their copy
// freely.
func New(program []uint32) *Segments {
	seg0 := make([]uint32, len(program))
	copy(seg0, program)
	return &Segments{
		table: [][]uint32{seg0},
		live:  []bool{true},
	}
}

// Len returns the current length of segment zero, the executing program.
func (s *Segments) Len() int {
	return len(s.table[0])
}

// Fetch returns the word at index i of segment zero, and whether i is in
// range. Used by the dispatch loop's fetch step, which must not treat an
// out-of-range program counter as an ordinary segment access fault.
func (s *Segments) Fetch(i uint32) (uint32, bool) {
	seg := s.table[0]
	if int(i) >= len(seg) {
		return 0, false
	}
	return seg[i], true
}

func (s *Segments) mapped(id uint32) bool {
	return int(id) < len(s.live) && s.live[id]
}

// Read returns the word at index i of segment id. Fails if id is not
// currently mapped or i is out of range for that segment.
func (s *Segments) Read(id, i uint32) (uint32, error) {
	if !s.mapped(id) {
		return 0, ErrNotMapped(id)
	}
	seg := s.table[id]
	if int(i) >= len(seg) {
		return 0, ErrOutOfRange{Segment: id, Index: i, Length: len(seg)}
	}
	return seg[i], nil
}

// Write stores v at index i of segment id. Same preconditions as Read.
func (s *Segments) Write(id, i, v uint32) error {
	if !s.mapped(id) {
		return ErrNotMapped(id)
	}
	seg := s.table[id]
	if int(i) >= len(seg) {
		return ErrOutOfRange{Segment: id, Index: i, Length: len(seg)}
	}
	seg[i] = v
	return nil
}

// Map allocates a zero-filled segment of the given length and returns its
// identifier. A freed identifier is reused preferentially (LIFO); the
// returned identifier is never 0.
func (s *Segments) Map(length uint32) uint32 {
	seg := make([]uint32, length)
	if n := len(s.free); n > 0 {
		id := s.free[n-1]
		s.free = s.free[:n-1]
		s.table[id] = seg
		s.live[id] = true
		return id
	}
	id := uint32(len(s.table))
	s.table = append(s.table, seg)
	s.live = append(s.live, true)
	return id
}

// Unmap returns id to the free list, where a later Map call may reuse it.
// Fails if id is 0 or not currently mapped.
func (s *Segments) Unmap(id uint32) error {
	if id == 0 {
		return ErrUnmapZero
	}
	if !s.mapped(id) {
		return ErrNotMapped(id)
	}
	s.live[id] = false
	s.table[id] = nil // nil out the dead sequence so a stale read panics instead of silently succeeding
	s.free = append(s.free, id)
	return nil
}

// CloneIntoZero replaces segment zero's contents with a deep copy of
// segment id. Writes to segment id afterwards do not affect segment zero,
// and vice versa. Fails if id is not currently mapped.
func (s *Segments) CloneIntoZero(id uint32) error {
	if !s.mapped(id) {
		return ErrNotMapped(id)
	}
	clone := make([]uint32, len(s.table[id]))
	copy(clone, s.table[id])
	s.table[0] = clone
	return nil
}
