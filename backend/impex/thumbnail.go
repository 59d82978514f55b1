package impex

import (
	"image"

	"github.com/nfnt/resize"

	"sovella.fi/paint-engine/api/painttype"
	"sovella.fi/paint-engine/common/logger"
)

// LoadImageThumbnail decodes a flat image and scales it down to fit the
// given size. The thumbnail keeps the source aspect ratio and is never
// scaled up.
func LoadImageThumbnail(path string, size painttype.Size) (image.Image, error) {
	decoded, err := decodeFlatImage(path)
	if err != nil {
		return nil, err
	}

	source := painttype.SizeFromRectangle(decoded.Bounds())
	if source.Width() <= size.Width() && source.Height() <= size.Height() {
		return decoded, nil
	}

	scaled := painttype.ScaleToFit(source, size)
	logger.Trace.Printf("'%s': thumbnail %dx%d", path, scaled.Width(), scaled.Height())
	return resize.Thumbnail(uint(scaled.Width()), uint(scaled.Height()), decoded, resize.Lanczos3), nil
}
