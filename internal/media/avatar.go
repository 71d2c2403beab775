package media

import (
	"bytes"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/webp"

	"github.com/BruksfildServices01/salon-booking/internal/httperr"
)

const (
	AvatarMaxSide = 512
	AvatarQuality = 80

	// MaxUploadBytes bounds the raw upload before decoding.
	MaxUploadBytes = 5 << 20
)

var ErrInvalidImage = httperr.ErrBusiness("invalid_image")

// EncodeAvatar decodes a jpeg, png or webp image, shrinks it to fit
// AvatarMaxSide x AvatarMaxSide keeping the aspect ratio, and returns it as WebP.
func EncodeAvatar(r io.Reader) ([]byte, error) {
	src, _, err := image.Decode(io.LimitReader(r, MaxUploadBytes))
	if err != nil {
		return nil, ErrInvalidImage
	}

	img := fit(src, AvatarMaxSide)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, img, &webp.Options{Quality: AvatarQuality}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func fit(src image.Image, maxSide int) image.Image {
	b := src.Bounds()
	w, h := b.Dx(), b.Dy()
	if w <= maxSide && h <= maxSide {
		return src
	}

	if w >= h {
		h = h * maxSide / w
		w = maxSide
	} else {
		w = w * maxSide / h
		h = maxSide
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, b, draw.Over, nil)
	return dst
}
