package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessticle-go/internal/config"
	"github.com/lgbarn/chessticle-go/internal/engine"
)

// PositionWriter is the interface for writing positions to output.
// Different implementations handle different output forms.
type PositionWriter interface {
	// WritePosition writes the current position of g.
	WritePosition(g *engine.Game) error
}

// NewPositionWriter returns the writer for the configured output form.
// The status line is added when cfg.Verbosity is above zero.
func NewPositionWriter(cfg *config.Config) PositionWriter {
	status := cfg.Verbosity > 0
	switch cfg.Output {
	case config.FENOutput:
		return &FENWriter{w: cfg.OutputFile, status: status}
	case config.MovesOutput:
		return &MovesWriter{w: cfg.OutputFile, lineLength: cfg.LineLength, status: status}
	case config.JSONOutput:
		return &JSONWriter{w: cfg.OutputFile}
	}
	return &BoardWriter{
		w:        cfg.OutputFile,
		renderer: NewBoardRenderer(cfg.OutputFile, cfg.Colour),
		status:   status,
	}
}

// BoardWriter writes diagrams.
type BoardWriter struct {
	w        io.Writer
	renderer *BoardRenderer
	status   bool
}

// WritePosition writes a diagram of g.
func (bw *BoardWriter) WritePosition(g *engine.Game) error {
	if _, err := io.WriteString(bw.w, bw.renderer.Render(g)); err != nil {
		return err
	}
	return writeStatus(bw.w, g, bw.status)
}

// FENWriter writes one FEN line per position.
type FENWriter struct {
	w      io.Writer
	status bool
}

// WritePosition writes g as FEN.
func (fw *FENWriter) WritePosition(g *engine.Game) error {
	if _, err := fmt.Fprintln(fw.w, g.FEN()); err != nil {
		return err
	}
	return writeStatus(fw.w, g, fw.status)
}

// MovesWriter writes the legal moves of the side to move, wrapped at the
// line length.
type MovesWriter struct {
	w          io.Writer
	lineLength int
	status     bool
}

// WritePosition writes the legal moves of g.
func (mw *MovesWriter) WritePosition(g *engine.Game) error {
	ow := NewOutputWriter(mw.w, mw.lineLength)
	for _, name := range LegalMoveNames(g) {
		ow.Write(name)
	}
	ow.NewLine()
	return writeStatus(mw.w, g, mw.status)
}

// JSONWriter writes one JSON object per position.
type JSONWriter struct {
	w io.Writer
}

// WritePosition writes the JSON report of g.
func (jw *JSONWriter) WritePosition(g *engine.Game) error {
	return WritePositionJSON(jw.w, g)
}

func writeStatus(w io.Writer, g *engine.Game, enabled bool) error {
	if !enabled {
		return nil
	}
	_, err := fmt.Fprintln(w, StatusLine(g))
	return err
}
