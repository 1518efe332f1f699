package disasm

import "fmt"

// bugError marks an internal inconsistency in the decoder itself rather than
// in the input. Decode recovers it and surfaces it as an error.
type bugError string

func (e bugError) Error() string { return string(e) }

func bugf(format string, args ...any) bugError {
	return bugError(fmt.Sprintf(format, args...))
}

// field returns bits [l,r] of v (inclusive, LSB-0) as an unsigned value.
func field(v uint32, l, r uint) uint32 {
	if l > r || r > 31 {
		panic(bugf("bad bit range [%d,%d]", l, r))
	}
	mask := uint32(uint64(1)<<(r-l+1) - 1)
	return (v >> l) & mask
}

// sfield returns bits [l,r] of v sign-extended at bit r.
func sfield(v uint32, l, r uint) int32 {
	w := 32 - (r - l + 1)
	return int32(field(v, l, r)<<w) >> w
}

// signExtend treats bit top of v as the sign and extends it.
func signExtend(v uint32, top uint) int32 {
	return sfield(v, 0, top)
}
