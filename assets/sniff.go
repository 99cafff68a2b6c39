package assets

import "bytes"

// ImageFormat represents a recognized bitmap container format.
type ImageFormat int

const (
	// FormatUnknown indicates an unrecognized payload.
	FormatUnknown ImageFormat = iota
	// FormatPNG indicates a PNG container.
	FormatPNG
	// FormatJPEG indicates a JPEG container.
	FormatJPEG
	// FormatTIFF indicates a TIFF container (either byte order).
	FormatTIFF
	// FormatGIF indicates a GIF container.
	FormatGIF
	// FormatBMP indicates a BMP container.
	FormatBMP
	// FormatJPEG2000 indicates a JPEG 2000 container.
	FormatJPEG2000
)

// String returns the string representation of the format.
func (f ImageFormat) String() string {
	switch f {
	case FormatPNG:
		return "PNG"
	case FormatJPEG:
		return "JPEG"
	case FormatTIFF:
		return "TIFF"
	case FormatGIF:
		return "GIF"
	case FormatBMP:
		return "BMP"
	case FormatJPEG2000:
		return "JPEG2000"
	default:
		return "Unknown"
	}
}

// Extension returns the file extension for the format, without the dot.
// Unknown payloads are written with a "bin" extension.
func (f ImageFormat) Extension() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatJPEG:
		return "jpg"
	case FormatTIFF:
		return "tiff"
	case FormatGIF:
		return "gif"
	case FormatBMP:
		return "bmp"
	case FormatJPEG2000:
		return "jp2"
	default:
		return "bin"
	}
}

var (
	magicPNG  = []byte{0x89, 'P', 'N', 'G', 0x0D, 0x0A, 0x1A, 0x0A}
	magicGIF  = []byte("GIF8")
	magicBMP  = []byte("BM")
	magicJP2  = []byte{0x00, 0x00, 0x00, 0x0C, 0x6A, 0x50, 0x20, 0x20}
	magicTIFI = []byte{0x49, 0x49, 0x2A, 0x00} // little-endian
	magicTIFM = []byte{0x4D, 0x4D, 0x00, 0x2A} // big-endian
)

// Sniff checks payload magic bytes to determine the bitmap container format.
// Returns FormatUnknown if the payload is too short or unrecognized.
func Sniff(data []byte) ImageFormat {
	if len(data) < 4 {
		return FormatUnknown
	}

	switch {
	case bytes.HasPrefix(data, magicPNG):
		return FormatPNG
	case data[0] == 0xFF && data[1] == 0xD8 && data[2] == 0xFF:
		return FormatJPEG
	case bytes.HasPrefix(data, magicTIFI), bytes.HasPrefix(data, magicTIFM):
		return FormatTIFF
	case bytes.HasPrefix(data, magicGIF):
		return FormatGIF
	case bytes.HasPrefix(data, magicBMP):
		return FormatBMP
	case bytes.HasPrefix(data, magicJP2):
		return FormatJPEG2000
	}

	return FormatUnknown
}
