package utils

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // GIF decoder
	_ "image/jpeg" // JPEG decoder
	"image/png"
	"strings"

	_ "github.com/gen2brain/webp" // WebP decoder
)

// ErrEmptyImage - no image payload was supplied
var ErrEmptyImage = errors.New("image data is empty")

// DecodedImage - a validated input image plus the bytes it was parsed from
type DecodedImage struct {
	Data     []byte
	MIMEType string
	Width    int
	Height   int
}

// DecodeBase64Image - base64 (optionally a data URL) to a validated image.
// Fails when the payload is not base64 or not a PNG/JPEG/GIF/WebP image.
func DecodeBase64Image(encoded string) (*DecodedImage, error) {
	payload := strings.TrimSpace(encoded)
	if strings.HasPrefix(payload, "data:") {
		if idx := strings.Index(payload, ","); idx >= 0 {
			payload = payload[idx+1:]
		}
	}
	if payload == "" {
		return nil, ErrEmptyImage
	}

	data, err := base64.StdEncoding.DecodeString(payload)
	if err != nil {
		return nil, fmt.Errorf("invalid base64: %w", err)
	}

	img, format, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("cannot identify image: %w", err)
	}

	bounds := img.Bounds()
	return &DecodedImage{
		Data:     data,
		MIMEType: "image/" + format,
		Width:    bounds.Dx(),
		Height:   bounds.Dy(),
	}, nil
}

// ReencodePNG - decodes any registered image format and writes it back as PNG
func ReencodePNG(data []byte) ([]byte, error) {
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode generated image: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// ConvertImageToBase64 - binary image to standard base64
func ConvertImageToBase64(imageData []byte) string {
	return base64.StdEncoding.EncodeToString(imageData)
}
