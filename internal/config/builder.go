package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithFEN sets the starting position.
func (b *ConfigBuilder) WithFEN(fen string) *ConfigBuilder {
	b.cfg.FEN = fen
	return b
}

// WithMoves sets the moves to replay.
func (b *ConfigBuilder) WithMoves(moves string) *ConfigBuilder {
	b.cfg.Moves = moves
	return b
}

// WithMovesFile sets the file to read moves from.
func (b *ConfigBuilder) WithMovesFile(name string) *ConfigBuilder {
	b.cfg.MovesFile = name
	return b
}

// WithOutputForm sets the output form.
func (b *ConfigBuilder) WithOutputForm(form OutputForm) *ConfigBuilder {
	b.cfg.Output = form
	return b
}

// WithLineLength sets the wrap width of the moves form.
func (b *ConfigBuilder) WithLineLength(n int) *ConfigBuilder {
	b.cfg.LineLength = n
	return b
}

// WithColour sets the colour mode.
func (b *ConfigBuilder) WithColour(mode ColourMode) *ConfigBuilder {
	b.cfg.Colour = mode
	return b
}

// WithPerft sets the perft depth and whether to divide by root move.
func (b *ConfigBuilder) WithPerft(depth int, divide bool) *ConfigBuilder {
	b.cfg.PerftDepth = depth
	b.cfg.Divide = divide
	return b
}

// WithWorkers sets the number of perft workers.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Workers = n
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}

// WithOutputFile sets the output writer.
func (b *ConfigBuilder) WithOutputFile(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLogFile sets the log writer.
func (b *ConfigBuilder) WithLogFile(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}
