package painttype

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSizeOf(t *testing.T) {
	a := assert.New(t)

	size := SizeOf(640, 480)

	a.Equal(640, size.Width())
	a.Equal(480, size.Height())
}

func TestSizeFromRectangle(t *testing.T) {
	a := assert.New(t)

	size := SizeFromRectangle(image.Rect(10, 10, 110, 60))

	a.Equal(100, size.Width())
	a.Equal(50, size.Height())
}

func TestScaleToFit(t *testing.T) {
	a := assert.New(t)

	t.Run("Landscape", func(t *testing.T) {
		scaled := ScaleToFit(SizeOf(100, 50), SizeOf(20, 20))
		a.Equal(20, scaled.Width())
		a.Equal(10, scaled.Height())
	})
	t.Run("Portrait", func(t *testing.T) {
		scaled := ScaleToFit(SizeOf(50, 100), SizeOf(20, 20))
		a.Equal(10, scaled.Width())
		a.Equal(20, scaled.Height())
	})
	t.Run("Square", func(t *testing.T) {
		scaled := ScaleToFit(SizeOf(100, 100), SizeOf(20, 20))
		a.Equal(20, scaled.Width())
		a.Equal(20, scaled.Height())
	})
}
