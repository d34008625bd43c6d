// Command disasm prints a one-line mnemonic for each word of a program
// image. It is read-only, offline tooling: it never executes the image.
//
// Usage:
//
//	disasm [program-file]
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jcarley/rum/pkg/disasm"
	"github.com/jcarley/rum/pkg/loader"
)

func main() {
	log.SetFlags(0)
	flag.Parse()

	var r *os.File = os.Stdin
	if path := flag.Arg(0); path != "" {
		fp, err := os.Open(path)
		if err != nil {
			log.Fatalf("disasm: %v", err)
		}
		defer fp.Close()
		r = fp
	}

	words, err := loader.LoadImage(r)
	if err != nil {
		log.Fatalf("disasm: %v", err)
	}
	for i, w := range words {
		fmt.Printf("%6d: %s\n", i, disasm.Disassemble(w))
	}
}
