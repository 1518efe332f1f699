// Package report renders the two-section disassembly report: the .text
// listing followed by the .symtab table.
package report

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/sergeykhargelia/RISC-V-disassembler/internal/disasm"
	"github.com/sergeykhargelia/RISC-V-disassembler/internal/elfx"
)

const symtabHeader = "Symbol Value           Size Type     Bind     Vis        Index Name\n"

// Summary describes a written report. It doubles as the machine-readable
// output of the --json flag.
type Summary struct {
	Digest       string `json:"digest"`
	Instructions int    `json:"instructions"`
	Unknown      int    `json:"unknown"`
	Symbols      int    `json:"symbols"`
}

// Write renders the full report for the image. The same image always
// produces byte-identical output.
func Write(w io.Writer, im *elfx.Image) (*Summary, error) {
	tags, err := im.Tags()
	if err != nil {
		return nil, err
	}
	text, err := im.TextBytes()
	if err != nil {
		return nil, err
	}
	stream, err := disasm.Decode(text, tags)
	if err != nil {
		return nil, err
	}

	sum := &Summary{}
	bw := bufio.NewWriter(w)
	bw.WriteString(".text\n")
	for _, in := range stream {
		bw.WriteString(in.Line(tags[in.Addr]))
		sum.Instructions++
		if in.Op == "" {
			sum.Unknown++
		}
	}

	bw.WriteString("\n.symtab\n")
	bw.WriteString(symtabHeader)
	syms, err := im.Symbols()
	if err != nil {
		return nil, err
	}
	for _, s := range syms {
		typ, err := elfx.TypeName(s.Info)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", s.Index, err)
		}
		bind, err := elfx.BindName(s.Info)
		if err != nil {
			return nil, fmt.Errorf("symbol %d: %w", s.Index, err)
		}
		fmt.Fprintf(bw, "[%4d] 0x%-15X %5d %-8s %-8s %-8s %6s %s\n",
			s.Index, s.Value, s.Size, typ, bind,
			elfx.VisibilityName(s.Other), elfx.IndexName(s.Shndx), s.Name)
		sum.Symbols++
	}
	return sum, bw.Flush()
}

// WriteFile writes the report to path and fills in the content digest.
func WriteFile(path string, im *elfx.Image) (*Summary, error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create output: %w", err)
	}
	h := sha256.New()
	sum, err := Write(io.MultiWriter(f, h), im)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return nil, err
	}
	sum.Digest = hex.EncodeToString(h.Sum(nil))
	return sum, nil
}
