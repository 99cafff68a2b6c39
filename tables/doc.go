// Package tables drives table detection against a swappable detection
// engine, using caption-anchored search areas and multi-strategy fallback.
//
// # Engines
//
// Table detection is performed by types implementing the [Engine] interface:
// page in, strategy name and optional search areas in, table candidates out.
// Engines are registered globally and can be retrieved by name:
//
//	engine := tables.GetEngine("geometric")
//
// The in-tree [GeometricEngine] detects tables from the spatial alignment of
// text spans. It supports two strategies:
//
//   - "lattice" - requires visible ruling lines along the grid boundaries
//   - "stream" - whitespace-alignment only, for borderless tables
//
// # Search Areas
//
// [AreasFromCaption] derives candidate search rectangles from a table
// caption: a full-width region above the caption and one below it. Because
// the vertical-origin convention of an engine is not reliably known in
// advance, each region is emitted twice: once converted to a bottom-left
// origin and once passed through unchanged. The fixed order is
// above-flipped, above-unflipped, below-flipped, below-unflipped.
//
// # Orchestration
//
// [Orchestrator.Extract] executes attempts strictly in order: every caption
// area crossed with every configured strategy, then two inset full-page
// variants per strategy. Each returned candidate passes an acceptance filter
// (at least two rows, two columns, and one digit somewhere in the cell text)
// before it counts. The first attempt yielding an accepted candidate wins
// and all remaining attempts are discarded. An engine failure is recorded as
// a diagnostic distinct from "no tables detected" and stops table extraction
// for the page without affecting its figures or text.
package tables
