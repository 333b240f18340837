package utils

import (
	"bytes"
	"crypto/rand"
	"image"
	_ "image/gif"
	"image/jpeg"
	_ "image/png"
	"io"
	"math/big"
	"path/filepath"
	"strings"

	"github.com/nfnt/resize"
)

func Rand8BytesToBase62() string {
	buf := make([]byte, 8)
	_, err := rand.Read(buf)
	if err != nil {
		panic(err)
	}
	var i big.Int
	return i.SetBytes(buf).Text(62)
}

// SanitizeFilename strips path components and anything outside
// [a-zA-Z0-9._-] from an uploaded file name. Returns "" if nothing safe
// remains.
func SanitizeFilename(name string) string {
	name = filepath.Base(strings.ReplaceAll(name, "\\", "/"))
	var b strings.Builder
	for _, r := range name {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') ||
			r == '.' || r == '_' || r == '-' {
			b.WriteRune(r)
		} else if r == ' ' {
			b.WriteRune('_')
		}
	}
	result := strings.Trim(b.String(), "._")
	if result == "" || strings.Trim(result, ".") == "" {
		return ""
	}
	return result
}

// NormalizeTags splits a comma-separated tag string into trimmed,
// lower-cased, de-duplicated names, preserving first-seen order.
func NormalizeTags(s string) []string {
	result := []string{}
	seen := map[string]bool{}
	for _, part := range strings.Split(s, ",") {
		name := strings.ToLower(strings.TrimSpace(part))
		if name == "" || seen[name] {
			continue
		}
		seen[name] = true
		result = append(result, name)
	}
	return result
}

type ImageThumbConverted struct {
	ThumbSize int64
	NewX      uint16
	NewY      uint16
	OldX      uint16
	OldY      uint16
}

func CreateThumb(size uint, reader io.Reader, writer io.Writer) (result ImageThumbConverted, err error) {
	image, _, err := image.Decode(reader)
	if err != nil {
		return result, err
	}
	var newBuf bytes.Buffer
	newImage := resize.Thumbnail(size, size, image, resize.Lanczos3)
	if err = jpeg.Encode(&newBuf, newImage, &jpeg.Options{Quality: 90}); err != nil {
		return result, err
	}
	result.ThumbSize = int64(newBuf.Len())
	result.OldX = uint16(image.Bounds().Dx())
	result.OldY = uint16(image.Bounds().Dy())
	result.NewX = uint16(newImage.Bounds().Dx())
	result.NewY = uint16(newImage.Bounds().Dy())
	_, err = io.Copy(writer, &newBuf)
	return result, err
}
