package disasm

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Decode walks the .text bytes and produces one Inst per instruction.
// Addresses are offsets from the start of text. A half-word whose low two
// bits are 11 is the low half of a 32-bit instruction; everything else is a
// complete compressed instruction. tags maps addresses to symbol names for
// branch and jump targets and is never modified.
func Decode(text []byte, tags map[uint32]string) (stream Stream, err error) {
	defer func() {
		if r := recover(); r != nil {
			bug, ok := r.(bugError)
			if !ok {
				panic(r)
			}
			stream, err = nil, fmt.Errorf("decoder bug: %w", bug)
		}
	}()

	for cur := 0; cur < len(text); {
		adr := uint32(cur)
		if cur+2 > len(text) {
			return nil, fmt.Errorf("truncated instruction at %#x: %w", adr, io.ErrUnexpectedEOF)
		}
		w16 := binary.LittleEndian.Uint16(text[cur:])

		var in Inst
		if w16&3 == 3 {
			if cur+4 > len(text) {
				return nil, fmt.Errorf("truncated instruction at %#x: %w", adr, io.ErrUnexpectedEOF)
			}
			w32 := uint32(binary.LittleEndian.Uint16(text[cur+2:]))<<16 | uint32(w16)
			in = decode32(w32, adr, tags)
			cur += 4
		} else {
			in = decode16(w16, adr, tags)
			cur += 2
		}
		if len(in.Args) > 4 {
			panic(bugf("%s at %08x carries %d operands", in.Op, adr, len(in.Args)))
		}
		in.Addr = adr
		stream = append(stream, in)
	}
	return stream, nil
}
