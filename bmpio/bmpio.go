// Package bmpio converts between BMP files and the raw BGR(A)
// pixel buffers the prs package operates on.
package bmpio

import (
	"image"
	"image/color"
	"io"

	"golang.org/x/image/bmp"

	"github.com/hatoba/marbletk/prs"
)

// Decode reads a BMP file and returns its pixels as a BGR(A) buffer,
// along with its dimensions and bytes-per-pixel (3 or 4).
func Decode(r io.Reader) (pixels []byte, width, height int, bpp int, err error) {
	img, err := bmp.Decode(r)
	if err != nil {
		return nil, 0, 0, 0, err
	}
	b := img.Bounds()
	width, height = b.Dx(), b.Dy()
	bpp = 3
	if _, ok := img.(*image.NRGBA); ok {
		bpp = 4
	}

	pixels = make([]byte, width*height*bpp)
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
			pixels[i] = c.B
			pixels[i+1] = c.G
			pixels[i+2] = c.R
			if bpp == 4 {
				pixels[i+3] = c.A
			}
			i += bpp
		}
	}
	return pixels, width, height, bpp, nil
}

// Encode writes pixels (a BGR(A) buffer of the given dimensions and
// bytes-per-pixel) to w as a BMP file. If the pixel buffer carries a
// dummy alpha channel (per prs.IsDummyAlphaChannel), the alpha plane is
// dropped and the image is written as opaque RGB.
func Encode(w io.Writer, pixels []byte, width, height, bpp int) error {
	rect := image.Rect(0, 0, width, height)

	if bpp == 4 && !prs.IsDummyAlphaChannel(pixels) {
		img := image.NewNRGBA(rect)
		for pixel, p := 0, 0; p+4 <= len(pixels); pixel, p = pixel+1, p+4 {
			img.SetNRGBA(pixel%width+rect.Min.X, pixel/width+rect.Min.Y, color.NRGBA{
				R: pixels[p+2], G: pixels[p+1], B: pixels[p], A: pixels[p+3],
			})
		}
		return bmp.Encode(w, img)
	}

	img := image.NewRGBA(rect)
	for pixel, p := 0, 0; p+bpp <= len(pixels); pixel, p = pixel+1, p+bpp {
		img.SetRGBA(pixel%width+rect.Min.X, pixel/width+rect.Min.Y, color.RGBA{
			R: pixels[p+2], G: pixels[p+1], B: pixels[p], A: 0xFF,
		})
	}
	return bmp.Encode(w, img)
}
