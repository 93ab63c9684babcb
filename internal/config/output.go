package config

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessticle-go/internal/errors"
)

// OutputForm selects how the final position is printed.
type OutputForm int

const (
	BoardOutput OutputForm = iota // Diagram, rank 8 first
	FENOutput                     // One FEN line
	MovesOutput                   // Legal moves of the side to move
	JSONOutput                    // Position report as JSON
)

var outputFormNames = map[string]OutputForm{
	"board": BoardOutput,
	"fen":   FENOutput,
	"moves": MovesOutput,
	"json":  JSONOutput,
}

// ParseOutputForm maps a -W value to an OutputForm.
func ParseOutputForm(name string) (OutputForm, error) {
	if f, ok := outputFormNames[strings.ToLower(name)]; ok {
		return f, nil
	}
	return BoardOutput, errors.Wrapf(errors.ErrInvalidConfig, "unknown output form %q", name)
}

// String returns the flag name of the form.
func (f OutputForm) String() string {
	switch f {
	case BoardOutput:
		return "board"
	case FENOutput:
		return "fen"
	case MovesOutput:
		return "moves"
	case JSONOutput:
		return "json"
	}
	return fmt.Sprintf("OutputForm(%d)", int(f))
}

func (f OutputForm) valid() bool {
	return f >= BoardOutput && f <= JSONOutput
}

// ColourMode controls terminal colour in board diagrams.
type ColourMode int

const (
	ColourAuto   ColourMode = iota // Use colour if the output is a terminal
	ColourAlways                   // Always emit colour sequences
	ColourNever                    // Plain text
)

var colourModeNames = map[string]ColourMode{
	"auto":   ColourAuto,
	"always": ColourAlways,
	"never":  ColourNever,
}

// ParseColourMode maps a -color value to a ColourMode.
func ParseColourMode(name string) (ColourMode, error) {
	if m, ok := colourModeNames[strings.ToLower(name)]; ok {
		return m, nil
	}
	return ColourAuto, errors.Wrapf(errors.ErrInvalidConfig, "unknown colour mode %q", name)
}

// String returns the flag name of the mode.
func (m ColourMode) String() string {
	switch m {
	case ColourAuto:
		return "auto"
	case ColourAlways:
		return "always"
	case ColourNever:
		return "never"
	}
	return fmt.Sprintf("ColourMode(%d)", int(m))
}

func (m ColourMode) valid() bool {
	return m >= ColourAuto && m <= ColourNever
}
