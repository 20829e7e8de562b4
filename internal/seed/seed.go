// Package seed builds initial grids from seed files or random specs.
package seed

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"lifeterm/internal/core"
)

var (
	// ErrNoSeed is returned when neither a seed file nor a random spec was given.
	ErrNoSeed = errors.New("no seed was given")
	// ErrBadRandomSpec is returned for malformed "randW,H" specs.
	ErrBadRandomSpec = errors.New("random seed must look like randW,H")
	// ErrBadCell is returned for characters other than digits in a seed file.
	ErrBadCell = errors.New("seed cells must be digits")
)

const randomPrefix = "rand"

// Parse reads one grid row per line and one digit per cell. 0 is dead and any
// other digit is alive. Trailing blank lines are ignored.
func Parse(r io.Reader) (*core.Grid, error) {
	var rows [][]uint8
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)
	line := 0
	for sc.Scan() {
		line++
		text := strings.TrimRight(sc.Text(), "\r")
		row := make([]uint8, len(text))
		for col, ch := range []byte(text) {
			if ch < '0' || ch > '9' {
				return nil, fmt.Errorf("%w: line %d column %d: %q", ErrBadCell, line, col+1, ch)
			}
			if ch != '0' {
				row[col] = 1
			}
		}
		rows = append(rows, row)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading seed: %w", err)
	}
	for len(rows) > 0 && len(rows[len(rows)-1]) == 0 {
		rows = rows[:len(rows)-1]
	}
	return core.FromRows(rows)
}

// LoadFile parses the seed file at path.
func LoadFile(path string) (*core.Grid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening seed file: %w", err)
	}
	defer f.Close()
	g, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Random returns a w×h grid where each cell is alive with probability one half.
func Random(w, h int, rng *core.RNG) (*core.Grid, error) {
	g, err := core.NewGrid(w, h)
	if err != nil {
		return nil, err
	}
	rng.Fill(g)
	return g, nil
}

// ParseRandomSpec extracts the dimensions from a "randW,H" spec.
func ParseRandomSpec(spec string) (w, h int, err error) {
	dims, ok := strings.CutPrefix(spec, randomPrefix)
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRandomSpec, spec)
	}
	ws, hs, ok := strings.Cut(dims, ",")
	if !ok {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRandomSpec, spec)
	}
	w, errW := strconv.Atoi(strings.TrimSpace(ws))
	h, errH := strconv.Atoi(strings.TrimSpace(hs))
	if errW != nil || errH != nil || w <= 0 || h <= 0 {
		return 0, 0, fmt.Errorf("%w: %q", ErrBadRandomSpec, spec)
	}
	return w, h, nil
}

// Resolve turns a seed spec into a grid. An existing file wins over the
// random form, so a file literally named "rand3,3" is still read as a file.
func Resolve(spec string, rng *core.RNG) (*core.Grid, error) {
	if spec == "" {
		return nil, ErrNoSeed
	}
	if info, err := os.Stat(spec); err == nil && !info.IsDir() {
		return LoadFile(spec)
	}
	if strings.HasPrefix(spec, randomPrefix) {
		w, h, err := ParseRandomSpec(spec)
		if err != nil {
			return nil, err
		}
		return Random(w, h, rng)
	}
	return nil, fmt.Errorf("%w: %q is neither a file nor randW,H", ErrNoSeed, spec)
}
