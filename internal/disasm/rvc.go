package disasm

// decode16 decodes one compressed instruction. The quadrant (bits [1:0])
// selects the encoding group; quadrant 3 is the 32-bit path and never
// reaches here.
func decode16(hw uint16, pc uint32, tags map[uint32]string) Inst {
	w := uint32(hw)
	switch w & 3 {
	case 0b00:
		return decodeQuadrant0(w)
	case 0b01:
		return decodeQuadrant1(w, pc, tags)
	case 0b10:
		return decodeQuadrant2(w)
	}
	panic(bugf("16-bit dispatch on word %#04x", hw))
}

func decodeQuadrant0(w uint32) Inst {
	rdP := regName(field(w, 2, 4) + 8)
	rs1P := regName(field(w, 7, 9) + 8)
	switch field(w, 13, 15) {
	case 0b000:
		nzuimm := immAssemble(w, cAddi4spnImm)
		return Inst{Op: "c.addi4spn", Args: []string{rdP, regName(2), utoa(nzuimm)}}
	case 0b001:
		return Inst{Op: "c.fld", Args: []string{rdP, utoa(immAssemble(w, cFldImm)), rs1P}, MemRef: true}
	case 0b010:
		return Inst{Op: "c.lw", Args: []string{rdP, utoa(immAssemble(w, cLwImm)), rs1P}, MemRef: true}
	case 0b011:
		return Inst{Op: "c.flw", Args: []string{rdP, utoa(immAssemble(w, cLwImm)), rs1P}, MemRef: true}
	case 0b101:
		return Inst{Op: "c.fsd", Args: []string{rdP, utoa(immAssemble(w, cFldImm)), rs1P}, MemRef: true}
	case 0b110:
		return Inst{Op: "c.sw", Args: []string{rdP, utoa(immAssemble(w, cLwImm)), rs1P}, MemRef: true}
	case 0b111:
		return Inst{Op: "c.fsw", Args: []string{rdP, utoa(immAssemble(w, cLwImm)), rs1P}, MemRef: true}
	}
	return Inst{}
}

// Register-register subtypes of quadrant 1, funct3=100, bits {w[12], w[6:5]}.
var cArithOps = [8]string{"c.sub", "c.xor", "c.or", "c.and", "c.subw", "c.addw", "", ""}

func decodeQuadrant1(w uint32, pc uint32, tags map[uint32]string) Inst {
	if field(w, 2, 15) == 0 {
		return Inst{Op: "c.nop"}
	}
	switch field(w, 13, 15) {
	case 0b000:
		rd := regName(field(w, 7, 11))
		nzimm := signExtend(immAssemble(w, cImm6), 5)
		return Inst{Op: "c.addi", Args: []string{rd, rd, itoa(nzimm)}}
	case 0b001:
		off := signExtend(immAssemble(w, cJImm), 11)
		return Inst{Op: "c.jal", Args: []string{resolve(pc, off, tags)}}
	case 0b010:
		rd := regName(field(w, 7, 11))
		return Inst{Op: "c.li", Args: []string{rd, itoa(signExtend(immAssemble(w, cImm6), 5))}}
	case 0b011:
		if field(w, 7, 11) == 2 {
			nzimm := signExtend(immAssemble(w, cAddi16spImm), 9)
			sp := regName(2)
			return Inst{Op: "c.addi16sp", Args: []string{sp, sp, itoa(nzimm)}}
		}
		rd := regName(field(w, 7, 11))
		nzimm := signExtend(immAssemble(w, cLuiImm), 17)
		return Inst{Op: "c.lui", Args: []string{rd, itoa(nzimm)}}
	case 0b100:
		rdP := regName(field(w, 7, 9) + 8)
		switch field(w, 10, 11) {
		case 0b00:
			return Inst{Op: "c.srli", Args: []string{rdP, rdP, utoa(immAssemble(w, cImm6))}}
		case 0b01:
			return Inst{Op: "c.srai", Args: []string{rdP, rdP, utoa(immAssemble(w, cImm6))}}
		case 0b10:
			imm := signExtend(immAssemble(w, cImm6), 5)
			return Inst{Op: "c.andi", Args: []string{rdP, rdP, itoa(imm)}}
		default:
			op := cArithOps[field(w, 12, 12)<<2|field(w, 5, 6)]
			if op == "" {
				return Inst{}
			}
			rs2P := regName(field(w, 2, 4) + 8)
			return Inst{Op: op, Args: []string{rdP, rdP, rs2P}}
		}
	case 0b101:
		off := signExtend(immAssemble(w, cJImm), 11)
		return Inst{Op: "c.j", Args: []string{resolve(pc, off, tags)}}
	case 0b110:
		rs1P := regName(field(w, 7, 9) + 8)
		off := signExtend(immAssemble(w, cBranchImm), 8)
		return Inst{Op: "c.beqz", Args: []string{rs1P, resolve(pc, off, tags)}}
	case 0b111:
		rs1P := regName(field(w, 7, 9) + 8)
		off := signExtend(immAssemble(w, cBranchImm), 8)
		return Inst{Op: "c.bnez", Args: []string{rs1P, resolve(pc, off, tags)}}
	}
	return Inst{}
}

func decodeQuadrant2(w uint32) Inst {
	rd := regName(field(w, 7, 11))
	sp := regName(2)
	switch field(w, 13, 15) {
	case 0b000:
		return Inst{Op: "c.slli", Args: []string{rd, rd, utoa(immAssemble(w, cImm6))}}
	case 0b001:
		return Inst{Op: "c.fldsp", Args: []string{rd, utoa(immAssemble(w, cFldspImm)), sp}, MemRef: true}
	case 0b010:
		return Inst{Op: "c.lwsp", Args: []string{rd, utoa(immAssemble(w, cLwspImm)), sp}, MemRef: true}
	case 0b011:
		return Inst{Op: "c.flwsp", Args: []string{rd, utoa(immAssemble(w, cLwspImm)), sp}, MemRef: true}
	case 0b100:
		if rs2 := field(w, 2, 6); rs2 != 0 {
			if field(w, 12, 12) == 1 {
				return Inst{Op: "c.add", Args: []string{rd, rd, regName(rs2)}}
			}
			return Inst{Op: "c.mv", Args: []string{rd, regName(rs2)}}
		}
		if field(w, 7, 15) == 0b100100000 {
			return Inst{Op: "c.ebreak"}
		}
		if field(w, 12, 12) == 0 {
			return Inst{Op: "c.jr", Args: []string{rd}}
		}
		return Inst{Op: "c.jalr", Args: []string{rd}}
	case 0b101:
		rs2 := regName(field(w, 2, 6))
		return Inst{Op: "c.fsdsp", Args: []string{rs2, utoa(immAssemble(w, cFsdspImm)), sp}, MemRef: true}
	case 0b110:
		rs2 := regName(field(w, 2, 6))
		return Inst{Op: "c.swsp", Args: []string{rs2, utoa(immAssemble(w, cSwspImm)), sp}, MemRef: true}
	case 0b111:
		rs2 := regName(field(w, 2, 6))
		return Inst{Op: "c.fswsp", Args: []string{rs2, utoa(immAssemble(w, cSwspImm)), sp}, MemRef: true}
	}
	return Inst{}
}
