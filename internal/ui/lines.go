// Package ui draws the status panel beside the window renderer.
package ui

import (
	"fmt"

	"lifeterm/internal/driver"
)

// PanelWidth is the width in pixels of the status panel.
const PanelWidth = 160

var keyHelp = []string{
	"space  pause",
	"n      step",
	"+/up   faster",
	"-/down slower",
	"q/esc  quit",
}

// Lines returns the text rows shown in the panel, top to bottom. An empty
// string marks a blank row.
func Lines(st driver.Status) []string {
	state := "running"
	if st.Paused {
		state = "paused"
	}
	lines := []string{
		st.Rules.String(),
		"",
		fmt.Sprintf("gen   %d", st.Generation),
		fmt.Sprintf("pop   %d", st.Population),
		fmt.Sprintf("delay %v", st.Interval),
		state,
		"",
	}
	return append(lines, keyHelp...)
}
