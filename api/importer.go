package api

import (
	"image"

	"sovella.fi/paint-engine/api/painttype"
)

// ImageImporter loads image files from disk into layer stacks.
type ImageImporter interface {
	LoadImage(path string) (*painttype.LayerStack, error)
	LoadImageThumbnail(path string, size painttype.Size) (image.Image, error)
}
