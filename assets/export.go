package assets

import (
	"bytes"
	"fmt"
	"image/png"
	"log/slog"
	"os"
	"path/filepath"

	"golang.org/x/image/tiff"

	"github.com/tsawler/folio/internal/logging"
	"github.com/tsawler/folio/model"
)

// Exporter writes page-level bitmap artifacts under a directory, keyed by
// the document stem and page number.
type Exporter struct {
	dir  string
	stem string
	log  *slog.Logger
}

// NewExporter creates an exporter writing into dir with the given document
// stem. The directory is created on first write.
func NewExporter(dir, stem string) *Exporter {
	return &Exporter{
		dir:  dir,
		stem: stem,
		log:  logging.Get("assets"),
	}
}

// ExportPageImages deduplicates and writes the embedded bitmap assets of a
// page. Soft masks are skipped; they are transparency data, not content
// images. The result maps each distinct asset ID to its exported path, with
// an empty path when the write failed. A failed asset never aborts the page.
func (e *Exporter) ExportPageImages(page *model.Page) map[int]string {
	paths := make(map[int]string)

	for _, img := range page.Images {
		if img.SoftMask {
			continue
		}
		if _, seen := paths[img.ID]; seen {
			continue
		}

		path, err := e.writeAsset(page.Number, img)
		if err != nil {
			e.log.Warn("asset export failed",
				"page", page.Number, "asset", img.ID, "error", err)
			paths[img.ID] = ""
			continue
		}
		paths[img.ID] = path
	}

	return paths
}

// writeAsset writes one embedded asset, sniffing the container format for
// the file extension. TIFF payloads are re-encoded to PNG so every exported
// raster is directly consumable downstream.
func (e *Exporter) writeAsset(pageNum int, img model.EmbeddedImage) (string, error) {
	if err := e.ensureDir(); err != nil {
		return "", err
	}

	data := img.Data
	format := Sniff(data)

	if format == FormatTIFF {
		converted, err := tiffToPNG(data)
		if err != nil {
			return "", fmt.Errorf("converting TIFF asset: %w", err)
		}
		data = converted
		format = FormatPNG
	}

	path := filepath.Join(e.dir, fmt.Sprintf("%s_p%d_x%d.%s", e.stem, pageNum, img.ID, format.Extension()))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return "", fmt.Errorf("writing asset: %w", err)
	}
	return path, nil
}

// tiffToPNG decodes a TIFF payload and re-encodes it as PNG.
func tiffToPNG(data []byte) ([]byte, error) {
	img, err := tiff.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// FigurePath returns the artifact path for a rasterized figure union crop.
// Figure numbering is 1-based within the page.
func (e *Exporter) FigurePath(pageNum, figureNum int) string {
	return filepath.Join(e.dir, fmt.Sprintf("%s_p%d_fig%d.png", e.stem, pageNum, figureNum))
}

// LeftoverPath returns the artifact path for a rasterized leftover block
// crop. Block numbering is 1-based within the page.
func (e *Exporter) LeftoverPath(pageNum, blockNum int) string {
	return filepath.Join(e.dir, fmt.Sprintf("%s_p%d_blk%d_crop.png", e.stem, pageNum, blockNum))
}

// CSVPath returns the artifact path for a serialized table.
func (e *Exporter) CSVPath(pageNum, tableIndex int, strategy string) string {
	return filepath.Join(e.dir, fmt.Sprintf("%s_p%d_table%d_%s.csv", e.stem, pageNum, tableIndex, strategy))
}

// WriteCSV serializes a table to its artifact path.
func (e *Exporter) WriteCSV(table *model.Table, pageNum, tableIndex int, strategy string) (string, error) {
	if err := e.ensureDir(); err != nil {
		return "", err
	}
	path := e.CSVPath(pageNum, tableIndex, strategy)
	if err := os.WriteFile(path, []byte(table.ToCSV()), 0644); err != nil {
		return "", fmt.Errorf("writing table CSV: %w", err)
	}
	return path, nil
}

func (e *Exporter) ensureDir() error {
	return os.MkdirAll(e.dir, 0755)
}
