package disasm

// immField copies source bits [l,r] of the instruction word into an
// immediate, with bit l landing at position dst. Each instruction format
// below is one permutation table; sign extension happens afterwards at the
// format's top bit.
type immField struct {
	l, r, dst uint
}

func immAssemble(v uint32, fields []immField) uint32 {
	var imm uint32
	for _, f := range fields {
		imm |= field(v, f.l, f.r) << f.dst
	}
	return imm
}

// Compressed formats. Field layouts follow the C-extension encoding tables.
var (
	cAddi4spnImm = []immField{{11, 12, 4}, {7, 10, 6}, {6, 6, 2}, {5, 5, 3}}
	cFldImm      = []immField{{10, 12, 3}, {5, 6, 6}}
	cLwImm       = []immField{{10, 12, 3}, {6, 6, 2}, {5, 5, 6}}
	cImm6        = []immField{{12, 12, 5}, {2, 6, 0}}
	cLuiImm      = []immField{{12, 12, 17}, {2, 6, 12}}
	cAddi16spImm = []immField{{12, 12, 9}, {6, 6, 4}, {5, 5, 6}, {3, 4, 7}, {2, 2, 5}}
	cJImm        = []immField{{12, 12, 11}, {11, 11, 4}, {9, 10, 8}, {8, 8, 10}, {7, 7, 6}, {6, 6, 7}, {3, 5, 1}, {2, 2, 5}}
	cBranchImm   = []immField{{12, 12, 8}, {10, 11, 3}, {5, 6, 6}, {3, 4, 1}, {2, 2, 5}}
	cLwspImm     = []immField{{12, 12, 5}, {4, 6, 2}, {2, 3, 6}}
	cFldspImm    = []immField{{12, 12, 5}, {5, 6, 3}, {2, 4, 6}}
	cSwspImm     = []immField{{9, 12, 2}, {7, 8, 6}}
	cFsdspImm    = []immField{{10, 12, 3}, {7, 9, 6}}
)

// Base formats.
var (
	sImm = []immField{{25, 31, 5}, {7, 11, 0}}
	bImm = []immField{{31, 31, 12}, {25, 30, 5}, {8, 11, 1}, {7, 7, 11}}
	jImm = []immField{{31, 31, 20}, {21, 30, 1}, {20, 20, 11}, {12, 19, 12}}
)
