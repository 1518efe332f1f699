package disasm

// ABI names per the RISC-V calling convention, indexed by register number.
var regNames = [32]string{
	"zero", "ra", "sp", "gp", "tp", "t0", "t1", "t2",
	"s0", "s1", "a0", "a1", "a2", "a3", "a4", "a5",
	"a6", "a7", "s2", "s3", "s4", "s5", "s6", "s7",
	"s8", "s9", "s10", "s11", "t3", "t4", "t5", "t6",
}

// regName maps a register index to its ABI mnemonic. Callers extract the
// index from a 5-bit field, so anything out of range is a decoder defect.
func regName(id uint32) string {
	if id >= 32 {
		panic(bugf("register index %d out of range", id))
	}
	return regNames[id]
}
