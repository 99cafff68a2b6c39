// Package layout groups raw page primitives into semantic figures using
// caption anchoring.
//
// # Caption Detection
//
// [CaptionDetector] scans a page's text blocks for "Figure N" / "Table N"
// numbering patterns. Block text is NFKC-normalized first so that PDF
// ligatures ("ﬁgure") still match.
//
// # Figure Grouping
//
// [Grouper] associates layout image blocks with figure captions via spatial
// rules, processing captions in document scan order:
//
//  1. A block is a candidate for a caption when its bottom edge sits above
//     the caption top, its horizontal overlap with the caption is at least
//     MinCaptionOverlap of the caption width, the vertical gap is within
//     MaxVerticalGap, and the relative width difference is within
//     WidthTolerance.
//  2. Candidates are merged under their union bounding box and marked
//     assigned. Assignment is greedy, first-caption-wins: a block taken by
//     an earlier caption is unavailable to later ones.
//  3. The representative asset is the first candidate with an exported
//     bitmap; otherwise the union box is rasterized at RasterDPI. A
//     rasterization failure leaves the path unset without aborting.
//  4. Blocks left unassigned after all captions become singleton figures
//     without a caption, resolved the same way.
//
// Every image block of a page lands in exactly one figure's parts list.
//
// Behavior is controlled by [GrouperConfig]:
//
//	config := layout.DefaultGrouperConfig()
//	config.MaxVerticalGap = 80
//	grouper := layout.NewGrouperWithConfig(exporter, rasterizer, config)
package layout
