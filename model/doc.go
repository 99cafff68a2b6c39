// Package model provides the intermediate representation (IR) for page-level
// layout analysis.
//
// This package defines the data structures that flow between the layout
// grouping components: the per-page input model built from a PDF layout
// provider, and the figure/table outputs produced by grouping.
//
// # Page Input
//
// A [Page] carries everything the grouping components need for one page:
//
//   - [TextBlock] - hierarchical text layout (blocks, lines, spans)
//   - [ImageBlock] - vector layout blocks that place a bitmap on the page
//   - [EmbeddedImage] - raw bitmap assets embedded in the page resources
//   - [Rule] - drawn lines, used by ruling-line table detection
//
// Pages are built fresh for each page and never mutated after processing.
// Entities have no cross-page identity.
//
// # Coordinates
//
// All layout geometry uses a top-left origin with Y increasing downward,
// matching the convention of layout providers. [Rect] stores edges rather
// than width/height so candidate tests read directly off edge comparisons.
// Conversion to a bottom-left origin happens only at the table-engine
// boundary (see the tables package).
//
// # Outputs
//
// Grouping produces [Figure] values (union box, caption, ordered parts) and
// [TableRecord] values (dimensions, detection strategy, serialized artifact
// path). Detection engines report candidates as [Table] grids of [Cell].
package model
