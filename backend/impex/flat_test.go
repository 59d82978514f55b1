package impex

import (
	"image"
	"image/color"
	"image/jpeg"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"sovella.fi/paint-engine/api/painttype"
)

func writeTestJpeg(t *testing.T, path string, width int, height int) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	file, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer file.Close()
	if err := jpeg.Encode(file, img, &jpeg.Options{Quality: 90}); err != nil {
		t.Fatal(err)
	}
}

func TestLoadImage_FlatJpeg(t *testing.T) {
	a := assert.New(t)

	path := filepath.Join(t.TempDir(), "photo.jpg")
	writeTestJpeg(t, path, 12, 6)

	stack, err := LoadImage(path)

	a.NoError(err)
	a.Equal(12, stack.Width())
	a.Equal(6, stack.Height())
	a.Equal(1, stack.LayerCount())

	layer := stack.Layers()[0]
	a.Equal("photo", layer.Title())
	// JPEG is lossy; just verify the pixel came out opaque
	a.False(painttype.FromPixel(layer.PixelAt(0, 0)).IsTransparent())
}

func TestFileTitle(t *testing.T) {
	a := assert.New(t)

	a.Equal("drawing", fileTitle("/some/dir/drawing.png"))
	a.Equal("drawing", fileTitle("drawing.png"))
	a.Equal("drawing.tar", fileTitle("drawing.tar.gz"))
	a.Equal("drawing", fileTitle("drawing"))
}

func TestExifOrientationToAngleAndFlip(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		orientation int
		angle       float64
		flipped     bool
	}{
		{1, noRotate, false},
		{2, noRotate, true},
		{3, rotate180, false},
		{4, rotate180, true},
		{5, right90, true},
		{6, right90, false},
		{7, left90, true},
		{8, left90, false},
		{0, noRotate, false},
		{9, noRotate, false},
	}
	for _, tt := range tests {
		angle, flipped := exifOrientationToAngleAndFlip(tt.orientation)
		a.Equal(tt.angle, angle, "orientation %d", tt.orientation)
		a.Equal(tt.flipped, flipped, "orientation %d", tt.orientation)
	}
}

func TestApplyExifRotation(t *testing.T) {
	a := assert.New(t)

	source := image.NewNRGBA(image.Rect(0, 0, 4, 2))

	t.Run("UnchangedOrientationKeepsImage", func(t *testing.T) {
		a.Equal(image.Image(source), applyExifRotation(source, exifUnchangedOrientation))
	})
	t.Run("Rotation90SwapsDimensions", func(t *testing.T) {
		rotated := applyExifRotation(source, 6)
		a.Equal(2, rotated.Bounds().Dx())
		a.Equal(4, rotated.Bounds().Dy())
	})
	t.Run("Rotation180KeepsDimensions", func(t *testing.T) {
		rotated := applyExifRotation(source, 3)
		a.Equal(4, rotated.Bounds().Dx())
		a.Equal(2, rotated.Bounds().Dy())
	})
}
