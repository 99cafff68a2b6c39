// Package folio turns the raw layout of scientific-paper PDF pages into
// structured figure and table records for downstream indexing.
//
// The hard part of paper parsing is not reading PDFs or defining output
// schemas; it is grouping noisy page primitives (text spans, embedded
// bitmaps, vector layout blocks) into semantic figures and tables under
// incomplete geometric information. folio covers that grouping core. PDF
// decoding stays behind the [PageProvider] interface, and document assembly
// consumes the per-page results.
//
// Basic usage:
//
//	proc := folio.NewProcessor()
//	result, err := proc.ProcessPage(provider, 1)
//	if err != nil {
//	    // handle error
//	}
//	if len(result.Warnings) > 0 {
//	    log.Println("Warnings:", folio.FormatWarnings(result.Warnings))
//	}
//
// With options:
//
//	config := folio.DefaultConfig()
//	config.ArtifactDir = "out"
//	config.Stem = "paper"
//	config.Grouper.MaxVerticalGap = 80
//	proc := folio.NewProcessorWithConfig(config)
//
// For advanced use cases, the lower-level layout and tables packages are
// also available.
package folio

// Must is a helper that wraps a call to a function returning (T, error)
// and panics if the error is non-nil. It is intended for use in scripts
// or tests where error handling would be cumbersome.
//
// Example:
//
//	result := folio.Must(proc.ProcessPage(provider, 1))
func Must[T any](val T, err error) T {
	if err != nil {
		panic(err)
	}
	return val
}
