// Package console adapts stdin/stdout for the engine's single-byte I/O
// opcodes. When the process is attached to a real terminal, it puts stdin
// into raw mode so a keystroke reaches the engine immediately rather than
// after a newline, avoiding the line buffering a terminal normally
// imposes. Grounded in
// IntuitionAmiga-IntuitionEngine/terminal_host.go, the corpus's only
// example of talking to a real terminal for byte-level interactive I/O.
package console

import (
	"bufio"
	"io"
	"os"

	"golang.org/x/term"
)

// Console wraps an input and output stream for opcode 11 (Input) and
// opcode 10 (Output). Open inspects whether in is a terminal; if so it
// switches it to raw mode for the lifetime of the Console and restores it
// on Close. Piped or redirected input is left untouched, since raw mode
// on a non-terminal is meaningless and would corrupt binary data.
type Console struct {
	in       *bufio.Reader
	out      io.Writer
	fd       int
	oldState *term.State
}

// Open wraps in/out. It never fails: if stdin is not a terminal, or
// putting it into raw mode errors, Console simply falls back to using in
// unmodified.
func Open(in *os.File, out io.Writer) *Console {
	c := &Console{in: bufio.NewReader(in), out: out}
	if !term.IsTerminal(int(in.Fd())) {
		return c
	}
	c.fd = int(in.Fd())
	if state, err := term.MakeRaw(c.fd); err == nil {
		c.oldState = state
	}
	return c
}

// Close restores the terminal to its original state, if Open put it into
// raw mode. Safe to call on a Console that never touched terminal state.
func (c *Console) Close() error {
	if c.oldState == nil {
		return nil
	}
	err := term.Restore(c.fd, c.oldState)
	c.oldState = nil
	return err
}

// ReadByte implements engine.ByteReader.
func (c *Console) ReadByte() (byte, error) {
	return c.in.ReadByte()
}

// WriteByte implements engine.ByteWriter. It writes directly to the
// underlying stream with no buffering, so a later Flush call is always a
// no-op — the engine's opcode 10 handler calls Flush unconditionally when
// the writer offers one, to satisfy the "flush before next cycle"
// ordering guarantee even if a buffered writer is substituted later.
func (c *Console) WriteByte(b byte) error {
	_, err := c.out.Write([]byte{b})
	return err
}

// Flush is a no-op: WriteByte never buffers.
func (c *Console) Flush() error {
	return nil
}
