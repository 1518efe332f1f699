package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestRootRejectsNonELF(t *testing.T) {
	dir := t.TempDir()
	in := filepath.Join(dir, "not.elf")
	if err := os.WriteFile(in, []byte("plain text, definitely not machine code"), 0o644); err != nil {
		t.Fatal(err)
	}
	out := filepath.Join(dir, "out.txt")

	rootCmd.SetArgs([]string{in, out})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for a non-ELF input")
	}
}

func TestRootMissingInput(t *testing.T) {
	dir := t.TempDir()
	rootCmd.SetArgs([]string{filepath.Join(dir, "missing.elf"), filepath.Join(dir, "out.txt")})
	if err := rootCmd.Execute(); err == nil {
		t.Error("expected an error for a missing input file")
	}
}

func TestSchemaOutput(t *testing.T) {
	var buf bytes.Buffer
	schemaCmd.SetOut(&buf)
	if err := schemaCmd.RunE(schemaCmd, nil); err != nil {
		t.Fatal(err)
	}
	for _, field := range []string{"digest", "instructions", "unknown", "symbols"} {
		if !strings.Contains(buf.String(), field) {
			t.Errorf("schema is missing field %q", field)
		}
	}
}

func TestCachedDemangle(t *testing.T) {
	plain := cachedDemangle("just_a_c_symbol")
	if plain != "just_a_c_symbol" {
		t.Errorf("plain symbol changed to %q", plain)
	}
	// Second lookup must hit the cache and agree.
	if again := cachedDemangle("just_a_c_symbol"); again != plain {
		t.Errorf("cache returned %q, want %q", again, plain)
	}
	if got := cachedDemangle("_ZN4math3addEii"); !strings.Contains(got, "math::add") {
		t.Errorf("demangled = %q, want it to contain math::add", got)
	}
}
