package life

import (
	_ "embed"
	"errors"
	"fmt"
	"sort"

	"github.com/gocarina/gocsv"
)

//go:embed presets.csv
var presetsCSV []byte

// ErrUnknownPreset is returned by LookupPreset for unregistered names.
var ErrUnknownPreset = errors.New("unknown rule preset")

// Preset is a named rule.
type Preset struct {
	Name        string
	Description string
	Rules       Rules
}

type presetRecord struct {
	Name        string `csv:"name"`
	SurviveMin  int    `csv:"survive_min"`
	SurviveMax  int    `csv:"survive_max"`
	BirthMin    int    `csv:"birth_min"`
	BirthMax    int    `csv:"birth_max"`
	Description string `csv:"description"`
}

var presets = map[string]Preset{}

// RegisterPreset adds a named rule. Invalid or unnamed rules are ignored.
func RegisterPreset(p Preset) {
	if p.Name == "" || p.Rules.Validate() != nil {
		return
	}
	presets[p.Name] = p
}

// LookupPreset returns the rules registered under name.
func LookupPreset(name string) (Rules, error) {
	p, ok := presets[name]
	if !ok {
		return Rules{}, fmt.Errorf("%w: %q", ErrUnknownPreset, name)
	}
	return p.Rules, nil
}

// Presets lists the registered rules sorted by name.
func Presets() []Preset {
	out := make([]Preset, 0, len(presets))
	for _, p := range presets {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

func parsePresets(data []byte) ([]Preset, error) {
	var records []presetRecord
	if err := gocsv.UnmarshalBytes(data, &records); err != nil {
		return nil, fmt.Errorf("parsing presets: %w", err)
	}
	out := make([]Preset, 0, len(records))
	for _, rec := range records {
		p := Preset{
			Name:        rec.Name,
			Description: rec.Description,
			Rules: Rules{
				Survive: Range{Min: rec.SurviveMin, Max: rec.SurviveMax},
				Birth:   Range{Min: rec.BirthMin, Max: rec.BirthMax},
			},
		}
		if err := p.Rules.Validate(); err != nil {
			return nil, fmt.Errorf("preset %q: %w", rec.Name, err)
		}
		out = append(out, p)
	}
	return out, nil
}

func init() {
	list, err := parsePresets(presetsCSV)
	if err != nil {
		panic(err)
	}
	for _, p := range list {
		RegisterPreset(p)
	}
}
