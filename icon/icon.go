// Package icon decodes the embedded application logo for the system tray.
package icon

import (
	"bytes"
	_ "embed"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"runtime"

	"github.com/nfnt/resize"
	ico "github.com/sergeymakinen/go-ico"
	"github.com/yllada/trayapp/common"
)

//go:embed logo.png
var logo []byte

// Icon is a decoded bitmap ready for the tray.
type Icon struct {
	// Width and Height are the pixel dimensions.
	Width, Height int
	// RGBA holds Width*Height*4 bytes, row-major, non-premultiplied.
	RGBA []byte
}

// Load decodes the embedded logo and scales it to the tray icon size.
func Load() (*Icon, error) {
	return Decode(logo, common.TrayIconSize)
}

// Decode decodes PNG data into a raw pixel buffer. When size is positive the
// image is scaled to size x size first.
func Decode(data []byte, size int) (*Icon, error) {
	img, err := png.Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", common.ErrIconDecode, err)
	}

	bounds := img.Bounds()
	if size > 0 && (bounds.Dx() != size || bounds.Dy() != size) {
		img = resize.Resize(uint(size), uint(size), img, resize.Lanczos3)
	}

	return FromImage(img), nil
}

// FromImage copies img into a tightly packed RGBA buffer.
func FromImage(img image.Image) *Icon {
	bounds := img.Bounds()
	nrgba := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(nrgba, nrgba.Bounds(), img, bounds.Min, draw.Src)

	return &Icon{
		Width:  bounds.Dx(),
		Height: bounds.Dy(),
		RGBA:   nrgba.Pix,
	}
}

// Image returns the icon as an image sharing the pixel buffer.
func (i *Icon) Image() *image.NRGBA {
	return &image.NRGBA{
		Pix:    i.RGBA,
		Stride: i.Width * 4,
		Rect:   image.Rect(0, 0, i.Width, i.Height),
	}
}

// PNG encodes the icon as PNG.
func (i *Icon) PNG() ([]byte, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, i.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// ICO encodes the icon as a Windows icon file.
func (i *Icon) ICO() ([]byte, error) {
	var buf bytes.Buffer
	if err := ico.Encode(&buf, i.Image()); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// TrayBytes returns the encoding the platform tray expects:
// ICO on Windows, PNG elsewhere.
func (i *Icon) TrayBytes() ([]byte, error) {
	if runtime.GOOS == "windows" {
		return i.ICO()
	}
	return i.PNG()
}
