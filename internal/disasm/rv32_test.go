package disasm

import (
	"reflect"
	"testing"
)

func TestDecode32(t *testing.T) {
	tests := []struct {
		name string
		word uint32
		pc   uint32
		tags map[uint32]string
		want Inst
	}{
		{
			name: "lui",
			word: 0x00005537,
			want: Inst{Op: "lui", Args: []string{"a0", "20480"}},
		},
		{
			name: "lui negative",
			word: 0xFFFFF537,
			want: Inst{Op: "lui", Args: []string{"a0", "-4096"}},
		},
		{
			name: "auipc",
			word: 0x00001517,
			want: Inst{Op: "auipc", Args: []string{"a0", "4096"}},
		},
		{
			name: "addi",
			word: 0x00A00513,
			want: Inst{Op: "addi", Args: []string{"a0", "zero", "10"}},
		},
		{
			name: "addi minus one",
			word: 0xFFF00793,
			want: Inst{Op: "addi", Args: []string{"a5", "zero", "-1"}},
		},
		{
			name: "slti",
			word: 0x00A5A513,
			want: Inst{Op: "slti", Args: []string{"a0", "a1", "10"}},
		},
		{
			name: "sltiu",
			word: 0x00A5B513,
			want: Inst{Op: "sltiu", Args: []string{"a0", "a1", "10"}},
		},
		{
			name: "xori",
			word: 0x00A5C513,
			want: Inst{Op: "xori", Args: []string{"a0", "a1", "10"}},
		},
		{
			name: "ori",
			word: 0x00A5E513,
			want: Inst{Op: "ori", Args: []string{"a0", "a1", "10"}},
		},
		{
			name: "andi",
			word: 0x00A5F513,
			want: Inst{Op: "andi", Args: []string{"a0", "a1", "10"}},
		},
		{
			name: "slli",
			word: 0x00359513,
			want: Inst{Op: "slli", Args: []string{"a0", "a1", "3"}},
		},
		{
			name: "srli",
			word: 0x0035D513,
			want: Inst{Op: "srli", Args: []string{"a0", "a1", "3"}},
		},
		{
			name: "srai",
			word: 0x4035D513,
			want: Inst{Op: "srai", Args: []string{"a0", "a1", "3"}},
		},
		{
			name: "add",
			word: 0x00A58533,
			want: Inst{Op: "add", Args: []string{"a0", "a1", "a0"}},
		},
		{
			name: "sub",
			word: 0x40C58533,
			want: Inst{Op: "sub", Args: []string{"a0", "a1", "a2"}},
		},
		{
			name: "sra",
			word: 0x40C5D533,
			want: Inst{Op: "sra", Args: []string{"a0", "a1", "a2"}},
		},
		{
			name: "and",
			word: 0x00C5F533,
			want: Inst{Op: "and", Args: []string{"a0", "a1", "a2"}},
		},
		{
			name: "mul",
			word: 0x02C58533,
			want: Inst{Op: "mul", Args: []string{"a0", "a1", "a2"}},
		},
		{
			name: "remu",
			word: 0x02C5F533,
			want: Inst{Op: "remu", Args: []string{"a0", "a1", "a2"}},
		},
		{
			name: "register op bad funct7",
			word: 0x10A58533,
			want: Inst{},
		},
		{
			name: "register op funct2 reserved",
			word: 0x04A58533,
			want: Inst{},
		},
		{
			name: "lw",
			word: 0x00412503,
			want: Inst{Op: "lw", Args: []string{"a0", "4", "sp"}, MemRef: true},
		},
		{
			name: "lbu",
			word: 0x0045C503,
			want: Inst{Op: "lbu", Args: []string{"a0", "4", "a1"}, MemRef: true},
		},
		{
			name: "load negative offset",
			word: 0xFFC12503,
			want: Inst{Op: "lw", Args: []string{"a0", "-4", "sp"}, MemRef: true},
		},
		{
			name: "load reserved funct3",
			word: 0x0045B503,
			want: Inst{},
		},
		{
			name: "sw",
			word: 0x00A12623,
			want: Inst{Op: "sw", Args: []string{"a0", "12", "sp"}, MemRef: true},
		},
		{
			name: "sb negative offset",
			word: 0xFEA10FA3,
			want: Inst{Op: "sb", Args: []string{"a0", "-1", "sp"}, MemRef: true},
		},
		{
			name: "store reserved funct3",
			word: 0x00A13623,
			want: Inst{},
		},
		{
			name: "jal",
			word: 0x008000EF,
			pc:   0,
			want: Inst{Op: "jal", Args: []string{"ra", "8"}},
		},
		{
			name: "jal to label",
			word: 0x008000EF,
			pc:   4,
			tags: map[uint32]string{12: "target"},
			want: Inst{Op: "jal", Args: []string{"ra", "target"}},
		},
		{
			name: "jalr",
			word: 0x000500E7,
			want: Inst{Op: "jalr", Args: []string{"ra", "a0", "0"}},
		},
		{
			name: "jalr negative",
			word: 0xFFC500E7,
			want: Inst{Op: "jalr", Args: []string{"ra", "a0", "-4"}},
		},
		{
			name: "beq back four",
			word: 0xFEB50EE3,
			pc:   8,
			want: Inst{Op: "beq", Args: []string{"a0", "a1", "-4"}},
		},
		{
			name: "beq resolves label",
			word: 0xFEB50EE3,
			pc:   8,
			tags: map[uint32]string{4: "loop"},
			want: Inst{Op: "beq", Args: []string{"a0", "a1", "loop"}},
		},
		{
			name: "bgeu",
			word: 0x00B57463,
			pc:   0,
			want: Inst{Op: "bgeu", Args: []string{"a0", "a1", "8"}},
		},
		{
			name: "branch reserved funct3",
			word: 0x00B52463,
			want: Inst{},
		},
		{
			name: "system opcode unknown",
			word: 0x00000073,
			want: Inst{},
		},
		{
			name: "fence opcode unknown",
			word: 0x0000000F,
			want: Inst{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := decode32(tt.word, tt.pc, tt.tags)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("decode32(%#08x) = %+v, want %+v", tt.word, got, tt.want)
			}
		})
	}
}
