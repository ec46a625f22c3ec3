package constants

import "strings"

// SourceFormat is the canonical input kind routed through the pipeline.
type SourceFormat string

const (
	IMAGE SourceFormat = "IMAGE"
	PDF   SourceFormat = "PDF"
	CSV   SourceFormat = "CSV"
	XLSX  SourceFormat = "XLSX"
)

var imageExts = map[string]struct{}{
	"jpg":  {},
	"jpeg": {},
	"png":  {},
	"webp": {},
	"heic": {},
	"heif": {},
}

// NormalizeExt lowercases and trims the dot from a file extension.
func NormalizeExt(ext string) string {
	return strings.ToLower(strings.TrimPrefix(ext, "."))
}

// MapExtToFormat maps a normalized extension to a SourceFormat.
// Returns "" for extensions the pipeline cannot route.
func MapExtToFormat(ext string) SourceFormat {
	ext = NormalizeExt(ext)
	if _, ok := imageExts[ext]; ok {
		return IMAGE
	}
	switch ext {
	case "pdf":
		return PDF
	case "csv":
		return CSV
	case "xls", "xlsx":
		return XLSX
	}
	return ""
}

// IsHEICExt reports whether the extension needs HEIC pre-conversion before OCR.
func IsHEICExt(ext string) bool {
	ext = NormalizeExt(ext)
	return ext == "heic" || ext == "heif"
}
