package impex

import (
	"image/color"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"sovella.fi/paint-engine/api/painttype"
)

func TestLoadImageThumbnail(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "large.png")
	writeTestPng(t, path, 100, 50, color.NRGBA{R: 255, A: 255})

	thumbnail, err := LoadImageThumbnail(path, painttype.SizeOf(20, 20))

	a.NoError(err)
	a.Equal(20, thumbnail.Bounds().Dx())
	a.Equal(10, thumbnail.Bounds().Dy())
}

func TestLoadImageThumbnail_SmallImageNotScaledUp(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "small.png")
	writeTestPng(t, path, 8, 4, color.NRGBA{G: 255, A: 255})

	thumbnail, err := LoadImageThumbnail(path, painttype.SizeOf(100, 100))

	a.NoError(err)
	a.Equal(8, thumbnail.Bounds().Dx())
	a.Equal(4, thumbnail.Bounds().Dy())
}

func TestLoadImageThumbnail_Errors(t *testing.T) {
	_, err := LoadImageThumbnail("/no/such/file.png", painttype.SizeOf(10, 10))
	assertImportErrorKind(t, err, ErrorIO)

	path := filepath.Join(t.TempDir(), "garbage.png")
	writeFile(t, path, []byte("not an image"))
	_, err = LoadImageThumbnail(path, painttype.SizeOf(10, 10))
	assertImportErrorKind(t, err, ErrorDecode)
}
