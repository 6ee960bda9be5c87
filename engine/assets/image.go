// Package assets converts between GL pixel buffers and image files.
package assets

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	"golang.org/x/image/tiff"
)

// FlipRows reverses the row order of a tightly packed RGBA8 buffer in
// place, converting between GL's bottom-left origin and image top-left.
func FlipRows(pix []byte, w, h int) {
	stride := w * 4
	tmp := make([]byte, stride)
	for top, bottom := 0, h-1; top < bottom; top, bottom = top+1, bottom-1 {
		a := pix[top*stride : (top+1)*stride]
		b := pix[bottom*stride : (bottom+1)*stride]
		copy(tmp, a)
		copy(a, b)
		copy(b, tmp)
	}
}

// FromGL wraps a bottom-up RGBA8 buffer as a top-down image. pix is
// flipped in place and owned by the returned image.
func FromGL(w, h int, pix []byte) (*image.NRGBA, error) {
	if len(pix) != w*h*4 {
		return nil, fmt.Errorf("assets: %d bytes for a %dx%d image", len(pix), w, h)
	}
	FlipRows(pix, w, h)
	return &image.NRGBA{Pix: pix, Stride: w * 4, Rect: image.Rect(0, 0, w, h)}, nil
}

// SaveImage encodes img by the file extension: .png, .bmp, .tif or .tiff.
func SaveImage(path string, img image.Image) (err error) {
	encode, err := encoderFor(path)
	if err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %q: %w", path, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("close %q: %w", path, cerr)
		}
	}()
	if err := encode(f, img); err != nil {
		return fmt.Errorf("encode %q: %w", path, err)
	}
	return nil
}

func encoderFor(path string) (func(*os.File, image.Image) error, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return func(f *os.File, m image.Image) error { return png.Encode(f, m) }, nil
	case ".bmp":
		return func(f *os.File, m image.Image) error { return bmp.Encode(f, m) }, nil
	case ".tif", ".tiff":
		return func(f *os.File, m image.Image) error {
			return tiff.Encode(f, m, &tiff.Options{Compression: tiff.Deflate})
		}, nil
	}
	return nil, fmt.Errorf("assets: unsupported image type %q", filepath.Ext(path))
}

// LoadImage decodes a png, bmp or tiff file into NRGBA.
func LoadImage(path string) (*image.NRGBA, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %q: %w", path, err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %q: %w", path, err)
	}
	if m, ok := img.(*image.NRGBA); ok {
		return m, nil
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst, nil
}
