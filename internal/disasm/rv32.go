package disasm

// Base-ISA mnemonic tables, indexed by funct3.
var (
	loadOps   = [8]string{"lb", "lh", "lw", "", "lbu", "lhu", "", ""}
	storeOps  = [8]string{"sb", "sh", "sw", "", "", "", "", ""}
	branchOps = [8]string{"beq", "bne", "", "", "blt", "bge", "bltu", "bgeu"}
	mulOps    = [8]string{"mul", "mulh", "mulhsu", "mulhu", "div", "divu", "rem", "remu"}
)

// Integer register-register ops, keyed by funct7[6:2]<<3 | funct3. Only the
// sub/sra bit of funct7 varies within the base set.
var intOps = map[uint32]string{
	0b00000_000: "add",
	0b01000_000: "sub",
	0b00000_001: "sll",
	0b00000_010: "slt",
	0b00000_011: "sltu",
	0b00000_100: "xor",
	0b00000_101: "srl",
	0b01000_101: "sra",
	0b00000_110: "or",
	0b00000_111: "and",
}

// decode32 decodes one 32-bit base instruction by its 7-bit opcode.
func decode32(w uint32, pc uint32, tags map[uint32]string) Inst {
	rd := field(w, 7, 11)
	rs1 := field(w, 15, 19)
	rs2 := field(w, 20, 24)
	funct3 := field(w, 12, 14)
	switch field(w, 0, 6) {
	case 0b0110111:
		imm := signExtend(field(w, 12, 31)<<12, 31)
		return Inst{Op: "lui", Args: []string{regName(rd), itoa(imm)}}
	case 0b0010111:
		imm := signExtend(field(w, 12, 31)<<12, 31)
		return Inst{Op: "auipc", Args: []string{regName(rd), itoa(imm)}}
	case 0b0010011:
		switch funct3 {
		case 0b001:
			return Inst{Op: "slli", Args: []string{regName(rd), regName(rs1), utoa(rs2)}}
		case 0b101:
			op := "srli"
			if field(w, 30, 30) == 1 {
				op = "srai"
			}
			return Inst{Op: op, Args: []string{regName(rd), regName(rs1), utoa(rs2)}}
		default:
			ops := [8]string{"addi", "", "slti", "sltiu", "xori", "", "ori", "andi"}
			imm := sfield(w, 20, 31)
			return Inst{Op: ops[funct3], Args: []string{regName(rd), regName(rs1), itoa(imm)}}
		}
	case 0b0110011:
		args := []string{regName(rd), regName(rs1), regName(rs2)}
		switch field(w, 25, 26) {
		case 0b00:
			if op, ok := intOps[field(w, 27, 31)<<3|funct3]; ok {
				return Inst{Op: op, Args: args}
			}
		case 0b01:
			return Inst{Op: mulOps[funct3], Args: args}
		}
		return Inst{}
	case 0b0000011:
		if loadOps[funct3] == "" {
			return Inst{}
		}
		imm := sfield(w, 20, 31)
		return Inst{Op: loadOps[funct3], Args: []string{regName(rd), itoa(imm), regName(rs1)}, MemRef: true}
	case 0b0100011:
		if storeOps[funct3] == "" {
			return Inst{}
		}
		imm := signExtend(immAssemble(w, sImm), 11)
		return Inst{Op: storeOps[funct3], Args: []string{regName(rs2), itoa(imm), regName(rs1)}, MemRef: true}
	case 0b1101111:
		off := signExtend(immAssemble(w, jImm), 20)
		return Inst{Op: "jal", Args: []string{regName(rd), resolve(pc, off, tags)}}
	case 0b1100111:
		imm := sfield(w, 20, 31)
		return Inst{Op: "jalr", Args: []string{regName(rd), regName(rs1), itoa(imm)}}
	case 0b1100011:
		if branchOps[funct3] == "" {
			return Inst{}
		}
		off := signExtend(immAssemble(w, bImm), 12)
		return Inst{Op: branchOps[funct3], Args: []string{regName(rs1), regName(rs2), resolve(pc, off, tags)}}
	}
	return Inst{}
}
