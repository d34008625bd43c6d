// Package engine implements the Universal Machine's dispatch loop: the
// register file, program counter, fetch-decode-execute cycle, and the
// seven fault categories that can terminate execution. It owns all
// mutable machine state and requires no locking, since a single goroutine
// runs it end to end.
package engine

import (
	"errors"
	"io"

	"github.com/jcarley/rum/pkg/isa"
	"github.com/jcarley/rum/pkg/memory"
)

const numRegisters = 8

// ByteReader is the input side of opcode 11 (Input). End-of-input must be
// reported as io.EOF; any other error is a FaultIO.
type ByteReader interface {
	ReadByte() (byte, error)
}

// ByteWriter is the output side of opcode 10 (Output).
type ByteWriter interface {
	WriteByte(c byte) error
}

type flusher interface {
	Flush() error
}

// Engine is one Universal Machine instance. The zero value is not ready
// for use; construct one with New.
type Engine struct {
	regs [numRegisters]uint32
	pc   uint32
	mem  *memory.Segments
	in   ByteReader
	out  ByteWriter

	// Trace, if non-nil, is called with the program counter and
	// instruction word immediately before each instruction executes.
	// Intended for cmd/rum's -trace flag; nil by default and never
	// required for correct execution.
	Trace func(pc uint32, word uint32)
}

// New constructs an Engine whose segment zero holds a copy of program,
// reading opcode-11 input from in and writing opcode-10 output to out.
func New(program []uint32, in ByteReader, out ByteWriter) *Engine {
	return &Engine{
		mem: memory.New(program),
		in:  in,
		out: out,
	}
}

// Registers returns a copy of the current register file. Intended for
// diagnostics (cmd/rum's -dump flag) and tests; the engine itself never
// exposes a mutable view of its registers.
func (e *Engine) Registers() [numRegisters]uint32 {
	return e.regs
}

// PC returns the current program counter.
func (e *Engine) PC() uint32 {
	return e.pc
}

// Run executes instructions from segment zero until opcode 7 (Halt) or a
// fault. It returns nil on clean halt and a *Fault otherwise.
func (e *Engine) Run() error {
	for {
		if err := e.step(); err != nil {
			if errors.Is(err, errHalted) {
				return nil
			}
			return err
		}
	}
}

// errHalted signals a clean opcode-7 halt; it is never returned to
// callers of Run, which translates it to a nil error.
var errHalted = errors.New("engine: halted")

func (e *Engine) step() error {
	startPC := e.pc
	word, ok := e.mem.Fetch(e.pc)
	if !ok {
		return fault(FaultPC, startPC, nil)
	}
	op := isa.Op(word)
	if op > isa.MaxOpcode {
		f := fault(FaultDecode, startPC, nil)
		f.Op = uint32(op)
		return f
	}
	if e.Trace != nil {
		e.Trace(startPC, word)
	}
	e.pc++

	if op == isa.OpLoadImmediate {
		reg, value := isa.LoadImmediate(word)
		e.regs[reg] = value
		return nil
	}

	a, b, c := isa.Standard(word)
	switch op {
	case isa.OpCMov:
		if e.regs[c] != 0 {
			e.regs[a] = e.regs[b]
		}
	case isa.OpSegmentedLoad:
		v, err := e.mem.Read(e.regs[b], e.regs[c])
		if err != nil {
			return fault(FaultSegment, startPC, err)
		}
		e.regs[a] = v
	case isa.OpSegmentedStore:
		if err := e.mem.Write(e.regs[a], e.regs[b], e.regs[c]); err != nil {
			return fault(FaultSegment, startPC, err)
		}
	case isa.OpAdd:
		e.regs[a] = e.regs[b] + e.regs[c]
	case isa.OpMul:
		e.regs[a] = e.regs[b] * e.regs[c]
	case isa.OpDiv:
		if e.regs[c] == 0 {
			return fault(FaultDivByZero, startPC, nil)
		}
		e.regs[a] = e.regs[b] / e.regs[c]
	case isa.OpNand:
		e.regs[a] = ^(e.regs[b] & e.regs[c])
	case isa.OpHalt:
		return errHalted
	case isa.OpMapSegment:
		e.regs[b] = e.mem.Map(e.regs[c])
	case isa.OpUnmapSegment:
		if err := e.mem.Unmap(e.regs[c]); err != nil {
			return fault(FaultUnmap, startPC, err)
		}
	case isa.OpOutput:
		if e.regs[c] > 255 {
			return fault(FaultOutputRange, startPC, nil)
		}
		if err := e.out.WriteByte(byte(e.regs[c])); err != nil {
			return fault(FaultIO, startPC, err)
		}
		if f, ok := e.out.(flusher); ok {
			if err := f.Flush(); err != nil {
				return fault(FaultIO, startPC, err)
			}
		}
	case isa.OpInput:
		byteVal, err := e.in.ReadByte()
		switch {
		case err == io.EOF:
			e.regs[c] = 0xFFFFFFFF
		case err != nil:
			return fault(FaultIO, startPC, err)
		default:
			e.regs[c] = uint32(byteVal)
		}
	case isa.OpLoadProgram:
		if e.regs[b] != 0 {
			if err := e.mem.CloneIntoZero(e.regs[b]); err != nil {
				return fault(FaultSegment, startPC, err)
			}
		}
		e.pc = e.regs[c]
	}
	return nil
}
