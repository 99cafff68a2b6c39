package tables

import (
	"fmt"
	"log/slog"

	"github.com/tsawler/folio/assets"
	"github.com/tsawler/folio/internal/logging"
	"github.com/tsawler/folio/model"
)

// Config holds table extraction parameters.
type Config struct {
	// Strategies are the detection strategies tried per search area, in
	// order.
	Strategies []string

	// AreaPad is the margin (points) between a caption edge and the derived
	// search areas, also used as the full-page fallback inset.
	AreaPad float64

	// MinRows and MinCols are the acceptance thresholds for a returned
	// candidate.
	MinRows int
	MinCols int

	// SaveCSV enables serializing accepted tables as CSV artifacts.
	SaveCSV bool
}

// DefaultConfig returns the default extraction parameters.
func DefaultConfig() Config {
	return Config{
		Strategies: []string{StrategyLattice, StrategyStream},
		AreaPad:    6.0,
		MinRows:    2,
		MinCols:    2,
		SaveCSV:    true,
	}
}

// Clone creates a deep copy of the config.
func (c Config) Clone() Config {
	out := c
	if c.Strategies != nil {
		out.Strategies = make([]string, len(c.Strategies))
		copy(out.Strategies, c.Strategies)
	}
	return out
}

// Stats summarizes table extraction for one page.
type Stats struct {
	Page     int
	Tried    []string // Attempt descriptions, in execution order
	Found    int      // Accepted candidates
	SavedCSV int      // CSV artifacts written
	Err      string   // Diagnostic: engine failure or "no tables detected"
}

// Orchestrator drives ordered multi-strategy table detection attempts
// against an engine.
type Orchestrator struct {
	engine   Engine
	config   Config
	exporter *assets.Exporter
	log      *slog.Logger
}

// NewOrchestrator creates an orchestrator with default configuration.
// The exporter may be nil, which disables CSV serialization.
func NewOrchestrator(engine Engine, exporter *assets.Exporter) *Orchestrator {
	return NewOrchestratorWithConfig(engine, exporter, DefaultConfig())
}

// NewOrchestratorWithConfig creates an orchestrator with custom
// configuration.
func NewOrchestratorWithConfig(engine Engine, exporter *assets.Exporter, config Config) *Orchestrator {
	return &Orchestrator{
		engine:   engine,
		config:   config,
		exporter: exporter,
		log:      logging.Get("tables"),
	}
}

// attempt is one ordered detection trial: a strategy plus its search areas.
type attempt struct {
	strategy string
	desc     string
	areas    []Area
}

// Extract runs the ordered attempt list for a page and returns the records
// of the first attempt that yields an accepted candidate. Only the first
// table caption on the page is anchored; multiple table captions per page
// are a known limitation of the upstream pipeline and later captions are
// ignored.
func (o *Orchestrator) Extract(page *model.Page, captions []model.Caption) ([]model.TableRecord, Stats) {
	stats := Stats{Page: page.Number}

	var records []model.TableRecord

	for _, att := range o.buildAttempts(page, captions) {
		stats.Tried = append(stats.Tried, fmt.Sprintf("%s:%s", att.strategy, att.desc))

		candidates, err := o.engine.Detect(page, att.strategy, att.areas)
		if err != nil {
			// Engine failure ends table extraction for this page. The page's
			// figures and text are unaffected.
			stats.Err = fmt.Sprintf("table engine failed: %v", err)
			o.log.Warn("table engine failed",
				"page", page.Number, "strategy", att.strategy, "error", err)
			break
		}
		if len(candidates) == 0 {
			continue
		}

		accepted := 0
		for i, table := range candidates {
			if !o.accept(table) {
				continue
			}

			record := model.TableRecord{
				PageNumber: page.Number,
				Index:      i + 1,
				Strategy:   att.strategy,
				RowCount:   table.RowCount(),
				ColCount:   table.ColCount(),
			}

			if o.config.SaveCSV && o.exporter != nil {
				path, err := o.exporter.WriteCSV(table, page.Number, record.Index, att.strategy)
				if err != nil {
					o.log.Warn("table CSV write failed",
						"page", page.Number, "index", record.Index, "error", err)
				} else {
					record.CSVPath = path
					stats.SavedCSV++
				}
			}

			records = append(records, record)
			accepted++
		}

		if accepted > 0 {
			// First attempt with an acceptance wins; remaining attempts are
			// discarded.
			stats.Found = accepted
			break
		}
	}

	if stats.Found == 0 && stats.Err == "" {
		stats.Err = "no tables detected on this page"
	}

	return records, stats
}

// accept applies the candidate filter: minimum dimensions plus at least one
// digit somewhere in the cell text.
func (o *Orchestrator) accept(table *model.Table) bool {
	if table.RowCount() < o.config.MinRows || table.ColCount() < o.config.MinCols {
		return false
	}
	return table.ContainsDigit()
}

// buildAttempts assembles the ordered attempt list: caption-anchored areas
// crossed with every strategy, then the inset full-page variants. Without
// page dimensions only unrestricted attempts are possible.
func (o *Orchestrator) buildAttempts(page *model.Page, captions []model.Caption) []attempt {
	var attempts []attempt

	if page.Width <= 0 || page.Height <= 0 {
		for _, strategy := range o.config.Strategies {
			attempts = append(attempts, attempt{strategy: strategy, desc: "no-area"})
		}
		return attempts
	}

	if caption, ok := FirstTableCaption(captions); ok {
		for _, area := range AreasFromCaption(caption.Rect, page.Width, page.Height, o.config.AreaPad) {
			for _, strategy := range o.config.Strategies {
				attempts = append(attempts, attempt{
					strategy: strategy,
					desc:     area.String(),
					areas:    []Area{area},
				})
			}
		}
	}

	for _, area := range FullPageAreas(page.Width, page.Height, o.config.AreaPad) {
		for _, strategy := range o.config.Strategies {
			attempts = append(attempts, attempt{
				strategy: strategy,
				desc:     area.String(),
				areas:    []Area{area},
			})
		}
	}

	return attempts
}

// FirstTableCaption returns the first table-kind caption, or false when the
// page has none.
func FirstTableCaption(captions []model.Caption) (model.Caption, bool) {
	for _, c := range captions {
		if c.Kind == model.CaptionTable {
			return c, true
		}
	}
	return model.Caption{}, false
}
