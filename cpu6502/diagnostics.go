package cpu6502

import (
	"bytes"
	"fmt"
	"log"
)

// diagnostics is the CPU's append-only console log. Illegal opcodes are
// the only thing that write to it; the host reads it with Diagnostics.
// Modeled after the teacher's per-instruction *log.Logger, pointed at an
// in-process sink instead of a file since the core owns no files.
type diagnostics struct {
	buf    bytes.Buffer
	logger *log.Logger
}

func newDiagnostics() *diagnostics {
	d := &diagnostics{}
	d.logger = log.New(&d.buf, "", 0)
	return d
}

func (d *diagnostics) logIllegalOpcode(opcode uint8, pc uint16) {
	d.logger.Print(fmt.Sprintf("illegal opcode $%02X at $%04X treated as NOP", opcode, pc))
}

// lines splits the accumulated log into one string per entry.
func (d *diagnostics) lines() []string {
	raw := d.buf.String()
	if raw == "" {
		return nil
	}
	var out []string
	start := 0
	for i := 0; i < len(raw); i++ {
		if raw[i] == '\n' {
			out = append(out, raw[start:i])
			start = i + 1
		}
	}
	return out
}

// Diagnostics returns every illegal-opcode warning logged so far, oldest
// first. The CPU never clears this buffer on its own.
func (cpu *CPU) Diagnostics() []string {
	return cpu.diag.lines()
}
