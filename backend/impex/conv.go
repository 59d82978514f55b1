package impex

import (
	"image"

	"sovella.fi/paint-engine/api/painttype"
)

// layerFromImage converts a decoded image into a layer. All pixel bytes
// go through the color core so the premultiplied values are byte
// identical with colors converted anywhere else in the engine.
func layerFromImage(id painttype.LayerId, title string, img image.Image) *painttype.Layer {
	bounds := img.Bounds()
	layer := painttype.NewLayer(id, title, bounds.Dx(), bounds.Dy())
	pixels := layer.Pixels()

	switch source := img.(type) {
	case *image.NRGBA:
		convertNrgba(source, pixels)
	case *image.RGBA:
		convertRgba(source, pixels)
	default:
		convertGeneric(img, pixels)
	}
	return layer
}

func convertNrgba(source *image.NRGBA, pixels []painttype.Pixel) {
	width := source.Rect.Dx()
	height := source.Rect.Dy()
	for y := 0; y < height; y++ {
		row := source.Pix[y*source.Stride:]
		for x := 0; x < width; x++ {
			i := x * 4
			pixels[y*width+x] = painttype.Color{
				R: float32(row[i]) / 255.0,
				G: float32(row[i+1]) / 255.0,
				B: float32(row[i+2]) / 255.0,
				A: float32(row[i+3]) / 255.0,
			}.AsPixel()
		}
	}
}

func convertRgba(source *image.RGBA, pixels []painttype.Pixel) {
	width := source.Rect.Dx()
	height := source.Rect.Dy()
	for y := 0; y < height; y++ {
		row := source.Pix[y*source.Stride:]
		for x := 0; x < width; x++ {
			// Already premultiplied, only the byte order changes
			i := x * 4
			pixels[y*width+x] = painttype.Pixel{
				row[i+2],
				row[i+1],
				row[i],
				row[i+3],
			}
		}
	}
}

func convertGeneric(source image.Image, pixels []painttype.Pixel) {
	bounds := source.Bounds()
	width := bounds.Dx()
	height := bounds.Dy()
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			// RGBA() is premultiplied 16 bit
			r, g, b, a := source.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			pixels[y*width+x] = painttype.Pixel{
				uint8(b >> 8),
				uint8(g >> 8),
				uint8(r >> 8),
				uint8(a >> 8),
			}
		}
	}
}
