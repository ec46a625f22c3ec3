package source

import (
	"bytes"
	"image/png"

	"github.com/gen2brain/heic"

	"github.com/shashankg86/catalog-extractor/internal/common"
)

// ConvertHEIC re-encodes HEIC/HEIF bytes as PNG so the recognizer and the
// region detector can consume them.
func ConvertHEIC(data []byte) ([]byte, error) {
	img, err := heic.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, common.UnsupportedFormatError("decoding HEIC", err)
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, common.UnsupportedFormatError("encoding PNG", err)
	}
	return buf.Bytes(), nil
}
