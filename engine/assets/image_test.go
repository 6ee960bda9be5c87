package assets

import (
	"image"
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFlipRows(t *testing.T) {
	pix := []byte{
		1, 1, 1, 1, 2, 2, 2, 2,
		3, 3, 3, 3, 4, 4, 4, 4,
		5, 5, 5, 5, 6, 6, 6, 6,
	}
	FlipRows(pix, 2, 3)
	assert.Equal(t, []byte{
		5, 5, 5, 5, 6, 6, 6, 6,
		3, 3, 3, 3, 4, 4, 4, 4,
		1, 1, 1, 1, 2, 2, 2, 2,
	}, pix)
}

func TestFromGLPutsFirstRowAtBottom(t *testing.T) {
	pix := []byte{
		255, 0, 0, 255,
		0, 0, 255, 255,
	}
	img, err := FromGL(1, 2, pix)
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{0, 0, 255, 255}, img.NRGBAAt(0, 0))
	assert.Equal(t, color.NRGBA{255, 0, 0, 255}, img.NRGBAAt(0, 1))

	_, err = FromGL(2, 2, pix)
	assert.Error(t, err)
}

func TestSaveAndLoadByExtension(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	src.SetNRGBA(0, 0, color.NRGBA{255, 0, 0, 255})
	src.SetNRGBA(2, 1, color.NRGBA{0, 128, 255, 255})

	for _, name := range []string{"shot.png", "shot.bmp", "shot.tiff"} {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), name)
			require.NoError(t, SaveImage(path, src))
			got, err := LoadImage(path)
			require.NoError(t, err)
			assert.Equal(t, src.Bounds(), got.Bounds())
			assert.Equal(t, src.NRGBAAt(0, 0), got.NRGBAAt(0, 0))
			assert.Equal(t, src.NRGBAAt(2, 1), got.NRGBAAt(2, 1))
		})
	}
}

func TestSaveRejectsUnknownExtension(t *testing.T) {
	err := SaveImage(filepath.Join(t.TempDir(), "shot.jpg"), image.NewNRGBA(image.Rect(0, 0, 1, 1)))
	assert.ErrorContains(t, err, "unsupported")
}
