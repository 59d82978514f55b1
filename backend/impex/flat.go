package impex

import (
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	libjpeg "github.com/pixiv/go-libjpeg/jpeg"
	"github.com/rwcarlsen/goexif/exif"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"sovella.fi/paint-engine/api/painttype"
	"sovella.fi/paint-engine/common/logger"
)

var decoderOptions = &libjpeg.DecoderOptions{}

var jpegFileEndings = map[string]bool{".jpg": true, ".jpeg": true}

// loadFlatImage decodes a single-image file into a one layer stack. The
// layer is titled after the file name.
func loadFlatImage(path string) (*painttype.LayerStack, error) {
	decoded, err := decodeFlatImage(path)
	if err != nil {
		return nil, err
	}

	layer := layerFromImage(1, fileTitle(path), decoded)
	stack := painttype.NewLayerStack(layer.Width(), layer.Height())
	stack.AddLayer(layer)
	return stack, nil
}

func decodeFlatImage(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer file.Close()

	if jpegFileEndings[strings.ToLower(filepath.Ext(path))] {
		decoded, err := libjpeg.Decode(file, decoderOptions)
		if err != nil {
			return nil, decodeError("jpeg", err)
		}
		return applyExifRotation(decoded, exifOrientation(path)), nil
	}

	decoded, format, err := image.Decode(file)
	if err != nil {
		return nil, decodeError(format, err)
	}
	logger.Trace.Printf("'%s': decoded as %s", path, format)
	return decoded, nil
}

func fileTitle(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

const exifUnchangedOrientation = 1

// exifOrientation reads the EXIF orientation tag from a JPEG file. A
// missing or unreadable tag is not an error; the image just stays as is.
func exifOrientation(path string) int {
	file, err := os.Open(path)
	if err != nil {
		return exifUnchangedOrientation
	}
	defer file.Close()

	decodedExif, err := exif.Decode(file)
	if err != nil {
		logger.Warn.Printf("'%s': could not decode Exif data: %s", path, err)
		return exifUnchangedOrientation
	}
	tag, err := decodedExif.Get(exif.Orientation)
	if err != nil {
		return exifUnchangedOrientation
	}
	orientation, err := tag.Int(0)
	if err != nil {
		logger.Warn.Printf("'%s': could not resolve orientation: %s", path, err)
		return exifUnchangedOrientation
	}
	return orientation
}

const (
	noRotate  = 0
	rotate180 = 180
	left90    = 90
	right90   = 270

	noHorizontalFlip = false
	horizontalFlip   = true
)

func exifOrientationToAngleAndFlip(orientation int) (float64, bool) {
	switch orientation {
	case 1:
		return noRotate, noHorizontalFlip
	case 2:
		return noRotate, horizontalFlip
	case 3:
		return rotate180, noHorizontalFlip
	case 4:
		return rotate180, horizontalFlip
	case 5:
		return right90, horizontalFlip
	case 6:
		return right90, noHorizontalFlip
	case 7:
		return left90, horizontalFlip
	case 8:
		return left90, noHorizontalFlip
	default:
		return noRotate, noHorizontalFlip
	}
}

func applyExifRotation(decoded image.Image, orientation int) image.Image {
	rotation, flipped := exifOrientationToAngleAndFlip(orientation)
	if rotation == noRotate && !flipped {
		return decoded
	}
	rotated := imaging.Rotate(decoded, rotation, color.Black)
	if flipped {
		return imaging.FlipH(rotated)
	}
	return rotated
}
