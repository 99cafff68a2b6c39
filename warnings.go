package folio

import (
	"fmt"
	"strings"
)

// Warning describes a non-fatal issue encountered while processing a page.
// Processing succeeded but the result may be partial (e.g. a figure without
// its bitmap, or a page whose table extraction failed).
type Warning struct {
	Page    int
	Message string
}

func (w Warning) String() string {
	if w.Page > 0 {
		return fmt.Sprintf("page %d: %s", w.Page, w.Message)
	}
	return w.Message
}

// FormatWarnings joins warnings into a single human-readable string.
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.String()
	}
	return strings.Join(parts, "; ")
}
