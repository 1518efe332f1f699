// Package disasm decodes RV32IM and compressed (C extension) machine code
// into a common instruction representation and renders each instruction as
// one canonical text line.
package disasm

import (
	"fmt"
	"strconv"
	"strings"
)

// Inst is a single decoded instruction.
type Inst struct {
	Addr   uint32   // offset within .text
	Op     string   // mnemonic in lowercase; empty for unrecognized encodings
	Args   []string // rendered operands: registers, immediates, labels
	MemRef bool     // load/store syntax: last operand parenthesized
}

// Stream is a linear sequence of instructions.
type Stream []Inst

// Line renders the output line for the instruction, including the trailing
// newline. label is the symbol attached to the address, if any. Unrecognized
// encodings render as a bare placeholder with no address prefix.
func (in Inst) Line(label string) string {
	if in.Op == "" {
		return "unknown_command\n"
	}
	var b strings.Builder
	if label == "" {
		fmt.Fprintf(&b, "%08x%13s", in.Addr, "")
	} else {
		fmt.Fprintf(&b, "%08x %-10s: ", in.Addr, label)
	}
	b.WriteString(in.Op)
	switch n := len(in.Args); {
	case n == 0:
	case in.MemRef && n == 1:
		fmt.Fprintf(&b, "(%s)", in.Args[0])
	case in.MemRef:
		fmt.Fprintf(&b, " %s(%s)", strings.Join(in.Args[:n-1], ", "), in.Args[n-1])
	default:
		b.WriteString(" " + strings.Join(in.Args, ", "))
	}
	b.WriteByte('\n')
	return b.String()
}

func utoa(v uint32) string {
	return strconv.FormatUint(uint64(v), 10)
}

func itoa(v int32) string {
	return strconv.FormatInt(int64(v), 10)
}

// resolve renders a pc-relative displacement, substituting the symbol name
// at the target address when one exists. The sum wraps at 32 bits.
func resolve(pc uint32, disp int32, tags map[uint32]string) string {
	if name, ok := tags[pc+uint32(disp)]; ok {
		return name
	}
	return itoa(disp)
}
