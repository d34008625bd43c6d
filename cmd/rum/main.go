// Command rum runs a Universal Machine program image.
//
// Usage:
//
//	rum [-trace] [-dump] [program-file]
//
// If program-file is omitted, the image is read from standard input.
// Exit code 0 on a clean halt; non-zero on any fault.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jcarley/rum/pkg/console"
	"github.com/jcarley/rum/pkg/disasm"
	"github.com/jcarley/rum/pkg/engine"
	"github.com/jcarley/rum/pkg/loader"
)

// Exit codes just need to differ from zero and from each other, so a
// script can tell fault categories apart.
const (
	exitOK = iota
	exitUsage
	exitLoadError
	exitFaultDecode
	exitFaultPC
	exitFaultDivByZero
	exitFaultUnmap
	exitFaultSegment
	exitFaultOutputRange
	exitFaultIO
	exitFaultUnknown
)

func main() {
	log.SetFlags(0)
	trace := flag.Bool("trace", false, "log each instruction's disassembly to stderr before executing it")
	dump := flag.Bool("dump", false, "print the final register file to stderr on halt or fault")
	flag.Parse()

	image, err := openImage(flag.Arg(0))
	if err != nil {
		log.Printf("rum: %v", err)
		os.Exit(exitLoadError)
	}

	con := console.Open(os.Stdin, os.Stdout)

	eng := engine.New(image, con, con)
	if *trace {
		eng.Trace = func(pc uint32, word uint32) {
			fmt.Fprintf(os.Stderr, "rum: %6d: %s\n", pc, disasm.Disassemble(word))
		}
	}

	runErr := eng.Run()
	// Restore the terminal explicitly: os.Exit below skips deferred calls.
	con.Close()
	if *dump {
		regs := eng.Registers()
		fmt.Fprintf(os.Stderr, "rum: registers: %v\n", regs)
		fmt.Fprintf(os.Stderr, "rum: pc: %d\n", eng.PC())
	}
	if runErr == nil {
		os.Exit(exitOK)
	}
	log.Printf("rum: %v", runErr)
	os.Exit(faultExitCode(runErr))
}

func openImage(path string) ([]uint32, error) {
	if path == "" {
		return loader.LoadImage(os.Stdin)
	}
	fp, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer fp.Close()
	return loader.LoadImage(fp)
}

func faultExitCode(err error) int {
	var f *engine.Fault
	if !errors.As(err, &f) {
		return exitFaultUnknown
	}
	switch f.Category {
	case engine.FaultDecode:
		return exitFaultDecode
	case engine.FaultPC:
		return exitFaultPC
	case engine.FaultDivByZero:
		return exitFaultDivByZero
	case engine.FaultUnmap:
		return exitFaultUnmap
	case engine.FaultSegment:
		return exitFaultSegment
	case engine.FaultOutputRange:
		return exitFaultOutputRange
	case engine.FaultIO:
		return exitFaultIO
	default:
		return exitFaultUnknown
	}
}
