// Package assets handles bitmap artifacts produced during page-level layout
// analysis: exporting embedded page images, rasterizing crop regions as a
// fallback, and naming artifact files.
//
// # Export
//
// [Exporter.ExportPageImages] deduplicates the embedded bitmap assets of a
// page, skips soft masks, and writes each content image to disk. The payload
// container is sniffed from magic bytes ([Sniff]); TIFF payloads are
// re-encoded to PNG so downstream consumers deal with a single raster family.
//
// # Rasterization
//
// When a figure has no exported bitmap among its parts, [Exporter.RasterizeCrop]
// asks a [Rasterizer] for the clipped region and writes a PNG scaled to the
// configured resolution. Failures degrade the single artifact (the path stays
// empty) and never abort the page.
//
// # File layout
//
// Artifacts are keyed by document stem, page number, and asset identity:
//
//	<stem>_p<page>_x<asset>.<ext>        exported embedded bitmap
//	<stem>_p<page>_fig<n>.png            rasterized figure union crop
//	<stem>_p<page>_blk<n>_crop.png       rasterized leftover block crop
//	<stem>_p<page>_table<n>_<strategy>.csv  serialized table
package assets
