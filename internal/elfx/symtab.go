package elfx

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"strconv"
)

// Symbol is a symtab entry with its resolved name and its index within the
// symbol table that contains it.
type Symbol struct {
	Sym
	Index int
	Name  string
}

// Symbols returns the entries of every SYMTAB section in file order. Names
// are resolved through the first STRTAB section.
func (im *Image) Symbols() ([]Symbol, error) {
	strtab := im.SectionByType(SHTStrtab)
	var out []Symbol
	for _, s := range im.Sections {
		if s.Type != SHTSymtab {
			continue
		}
		data, err := im.slice(s.Offset, s.Size)
		if err != nil {
			return nil, err
		}
		r := bytes.NewReader(data)
		for i := 0; i < len(data)/symSize; i++ {
			var sym Sym
			if err := binary.Read(r, binary.LittleEndian, &sym); err != nil {
				return nil, fmt.Errorf("read symbol %d: %w", i, err)
			}
			name, err := im.strtabName(strtab, sym.Name)
			if err != nil {
				return nil, err
			}
			out = append(out, Symbol{Sym: sym, Index: i, Name: name})
		}
	}
	return out, nil
}

// Tags maps symbol values to names for label resolution. Unnamed symbols are
// skipped; when several symbols share a value the last one wins.
func (im *Image) Tags() (map[uint32]string, error) {
	syms, err := im.Symbols()
	if err != nil {
		return nil, err
	}
	tags := make(map[uint32]string, len(syms))
	for _, s := range syms {
		if s.Name != "" {
			tags[s.Value] = s.Name
		}
	}
	return tags, nil
}

// strtabName reads the NUL-terminated string at the given offset inside the
// string table. Offset 0 is the reserved empty name.
func (im *Image) strtabName(strtab SectionHeader, off uint32) (string, error) {
	if off == 0 {
		return "", nil
	}
	start := uint64(strtab.Offset) + uint64(off)
	if start >= uint64(len(im.All)) {
		return "", fmt.Errorf("name offset %#x outside file: %w", off, io.ErrUnexpectedEOF)
	}
	end := bytes.IndexByte(im.All[start:], 0)
	if end < 0 {
		return "", fmt.Errorf("unterminated name at %#x: %w", start, io.ErrUnexpectedEOF)
	}
	return string(im.All[start : start+uint64(end)]), nil
}

// TypeName renders the type nibble of st_info.
func TypeName(info uint8) (string, error) {
	switch info & 0xf {
	case 0:
		return "NOTYPE", nil
	case 1:
		return "OBJECT", nil
	case 2:
		return "FUNC", nil
	case 3:
		return "SECTION", nil
	case 4:
		return "FILE", nil
	case 5:
		return "COMMON", nil
	case 6:
		return "TLS", nil
	case 10:
		return "LOOS", nil
	case 12:
		return "HIOS", nil
	case 13:
		return "LOPROC", nil
	case 15:
		return "HIPROC", nil
	}
	return "", fmt.Errorf("unknown symbol type %d", info&0xf)
}

// BindName renders the binding half of st_info.
func BindName(info uint8) (string, error) {
	switch info >> 4 {
	case 0:
		return "LOCAL", nil
	case 1:
		return "GLOBAL", nil
	case 2:
		return "WEAK", nil
	case 10:
		return "LOOS", nil
	case 12:
		return "HIOS", nil
	case 13:
		return "LOPROC", nil
	case 15:
		return "HIPROC", nil
	}
	return "", fmt.Errorf("unknown symbol bind %d", info>>4)
}

// VisibilityName renders the visibility bits of st_other.
func VisibilityName(other uint8) string {
	switch other & 0x3 {
	case 0:
		return "DEFAULT"
	case 1:
		return "INTERNAL"
	case 2:
		return "HIDDEN"
	}
	return "PROTECTED"
}

// IndexName renders st_shndx, naming the reserved indices.
func IndexName(shndx uint16) string {
	switch shndx {
	case 0:
		return "UNDEF"
	case 0xff00:
		return "LOPROC"
	case 0xff1f:
		return "HIPROC"
	case 0xff20:
		return "LOOS"
	case 0xff3f:
		return "HIOS"
	case 0xfff1:
		return "ABS"
	case 0xfff2:
		return "COMMON"
	case 0xffff:
		return "XINDEX"
	}
	return strconv.Itoa(int(shndx))
}
