package imaging

import (
	"bytes"
	"image"
	"image/jpeg"
	"image/png"
	"net/http"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"

	"github.com/lostpaws/petfinder-api/internal/httperr"
)

const (
	// MaxUploadBytes bounds the raw upload accepted from clients.
	MaxUploadBytes = 5 << 20

	// Long edge of the stored rendition.
	maxEdge = 1600

	webpQuality = 85
)

// Normalize validates an uploaded photo and produces the rendition that
// actually gets stored: jpeg, png and webp input only, downscaled to
// the long-edge cap and re-encoded as webp.
func Normalize(data []byte) ([]byte, string, error) {
	if len(data) == 0 {
		return nil, "", httperr.ErrValidation("empty_photo", "uploaded photo is empty")
	}
	if len(data) > MaxUploadBytes {
		return nil, "", httperr.ErrValidation("photo_too_large", "photo must be at most 5 MiB")
	}

	img, err := decode(data)
	if err != nil {
		return nil, "", err
	}

	img = downscale(img)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, "", httperr.ErrStorage("photo_encode_failed", err.Error())
	}

	return buf.Bytes(), "image/webp", nil
}

// The sniffed content type decides the decoder; the client-supplied
// header is not trusted.
func decode(data []byte) (image.Image, error) {
	var (
		img image.Image
		err error
	)

	switch http.DetectContentType(data) {
	case "image/jpeg":
		img, err = jpeg.Decode(bytes.NewReader(data))
	case "image/png":
		img, err = png.Decode(bytes.NewReader(data))
	case "image/webp":
		img, err = webp.Decode(bytes.NewReader(data))
	default:
		return nil, httperr.ErrValidation("unsupported_photo_format", "allowed image formats: jpg, png, webp")
	}

	if err != nil {
		return nil, httperr.ErrValidation("invalid_photo", "could not decode uploaded photo")
	}
	return img, nil
}

func downscale(img image.Image) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxEdge && h <= maxEdge {
		return img
	}

	scale := float64(maxEdge) / float64(w)
	if h > w {
		scale = float64(maxEdge) / float64(h)
	}

	dst := image.NewRGBA(image.Rect(0, 0,
		int(float64(w)*scale),
		int(float64(h)*scale),
	))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Over, nil)
	return dst
}
