package folio

import (
	"github.com/tsawler/folio/layout"
	"github.com/tsawler/folio/tables"
)

// Config is the single configuration structure passed into the grouping and
// orchestration operations.
type Config struct {
	// ArtifactDir is the directory for exported bitmaps, rasterized crops,
	// and serialized tables.
	ArtifactDir string

	// Stem is the document stem that keys artifact filenames.
	Stem string

	// Engine selects the registered table detection engine.
	Engine string

	// Grouper holds the figure grouping parameters.
	Grouper layout.GrouperConfig

	// Tables holds the table extraction parameters.
	Tables tables.Config
}

// DefaultConfig returns the default processing configuration.
func DefaultConfig() Config {
	return Config{
		ArtifactDir: "artifacts",
		Stem:        "document",
		Engine:      "geometric",
		Grouper:     layout.DefaultGrouperConfig(),
		Tables:      tables.DefaultConfig(),
	}
}

// clone creates a deep copy of the config.
func (c Config) clone() Config {
	out := c
	out.Tables = c.Tables.Clone()
	return out
}
