// Package disasm renders Universal Machine instruction words as one-line
// mnemonics for offline inspection of a program image. It is read-only
// tooling, not a debugger: no breakpoints, no stepping, no live state —
// it just turns a word into text.
package disasm

import (
	"fmt"

	"github.com/jcarley/rum/pkg/isa"
)

// Disassemble renders a single instruction word as assembly-like text.
// It is total: every uint32 produces some text, including opcodes above
// isa.MaxOpcode, which are rendered as a decode-fault annotation rather
// than causing a panic (a disassembler is diagnostic tooling, not the
// engine, and must never itself fault).
func Disassemble(w uint32) string {
	op := isa.Op(w)
	if op > isa.MaxOpcode {
		return fmt.Sprintf(".word %#08x ; invalid opcode %d", w, op)
	}
	if op == isa.OpLoadImmediate {
		reg, value := isa.LoadImmediate(w)
		return fmt.Sprintf("loadimm r%d, %d", reg, value)
	}
	a, b, c := isa.Standard(w)
	switch op {
	case isa.OpCMov:
		return fmt.Sprintf("cmov    r%d, r%d, r%d", a, b, c)
	case isa.OpSegmentedLoad:
		return fmt.Sprintf("load    r%d, r%d, r%d", a, b, c)
	case isa.OpSegmentedStore:
		return fmt.Sprintf("store   r%d, r%d, r%d", a, b, c)
	case isa.OpAdd:
		return fmt.Sprintf("add     r%d, r%d, r%d", a, b, c)
	case isa.OpMul:
		return fmt.Sprintf("mul     r%d, r%d, r%d", a, b, c)
	case isa.OpDiv:
		return fmt.Sprintf("div     r%d, r%d, r%d", a, b, c)
	case isa.OpNand:
		return fmt.Sprintf("nand    r%d, r%d, r%d", a, b, c)
	case isa.OpHalt:
		return "halt"
	case isa.OpMapSegment:
		return fmt.Sprintf("map     r%d, r%d", b, c)
	case isa.OpUnmapSegment:
		return fmt.Sprintf("unmap   r%d", c)
	case isa.OpOutput:
		return fmt.Sprintf("output  r%d", c)
	case isa.OpInput:
		return fmt.Sprintf("input   r%d", c)
	case isa.OpLoadProgram:
		return fmt.Sprintf("loadprg r%d, r%d", b, c)
	default:
		return fmt.Sprintf(".word %#08x", w)
	}
}
