package seed

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lifeterm/internal/core"
)

func TestParse(t *testing.T) {
	g, err := Parse(strings.NewReader("010\r\n020\n000\n\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if g.Width() != 3 || g.Height() != 3 {
		t.Fatalf("size = %dx%d, want 3x3", g.Width(), g.Height())
	}
	if got := g.String(); got != "010\n010\n000" {
		t.Fatalf("grid = %q", got)
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"empty", "", core.ErrEmptyGrid},
		{"only blank lines", "\n\n", core.ErrEmptyGrid},
		{"jagged", "010\n01\n", core.ErrJaggedGrid},
		{"blank line inside", "01\n\n01\n", core.ErrJaggedGrid},
		{"letters", "01x\n", ErrBadCell},
		{"dots", "0.1\n", ErrBadCell},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tt.input))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestParseRandomSpec(t *testing.T) {
	w, h, err := ParseRandomSpec("rand40,20")
	if err != nil || w != 40 || h != 20 {
		t.Fatalf("got %d,%d,%v", w, h, err)
	}
	for _, bad := range []string{"rand", "rand40", "rand0,3", "rand3,-1", "randx,2", "40,20"} {
		if _, _, err := ParseRandomSpec(bad); !errors.Is(err, ErrBadRandomSpec) {
			t.Errorf("ParseRandomSpec(%q) err = %v", bad, err)
		}
	}
}

func TestResolve(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "glider.txt")
	if err := os.WriteFile(path, []byte("010\n001\n111\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	g, err := Resolve(path, core.NewRNG(1))
	if err != nil {
		t.Fatalf("Resolve(file): %v", err)
	}
	if g.Population() != 5 {
		t.Fatalf("glider population = %d, want 5", g.Population())
	}

	g, err = Resolve("rand7,4", core.NewRNG(1))
	if err != nil {
		t.Fatalf("Resolve(rand): %v", err)
	}
	if g.Width() != 7 || g.Height() != 4 {
		t.Fatalf("random size = %dx%d, want 7x4", g.Width(), g.Height())
	}

	if _, err := Resolve("", core.NewRNG(1)); !errors.Is(err, ErrNoSeed) {
		t.Fatalf("empty spec err = %v", err)
	}
	if _, err := Resolve(filepath.Join(dir, "missing.txt"), core.NewRNG(1)); !errors.Is(err, ErrNoSeed) {
		t.Fatalf("missing file err = %v", err)
	}
	if _, err := Resolve("rand7", core.NewRNG(1)); !errors.Is(err, ErrBadRandomSpec) {
		t.Fatalf("bad random spec err = %v", err)
	}
}

func TestResolvePrefersExistingFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "rand2,2")
	if err := os.WriteFile(path, []byte("1\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	g, err := Resolve(path, core.NewRNG(1))
	if err != nil {
		t.Fatal(err)
	}
	if g.Width() != 1 || g.Height() != 1 {
		t.Fatalf("expected file contents, got %dx%d grid", g.Width(), g.Height())
	}
}

func TestRandomDeterministic(t *testing.T) {
	a, _ := Random(10, 10, core.NewRNG(42))
	b, _ := Random(10, 10, core.NewRNG(42))
	if !a.Equal(b) {
		t.Fatal("same rng seed should give the same grid")
	}
	if _, err := Random(0, 10, core.NewRNG(42)); !errors.Is(err, core.ErrEmptyGrid) {
		t.Fatalf("err = %v, want ErrEmptyGrid", err)
	}
}
