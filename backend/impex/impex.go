package impex

import (
	"image"
	"path/filepath"
	"strings"

	"sovella.fi/paint-engine/api"
	"sovella.fi/paint-engine/api/painttype"
	"sovella.fi/paint-engine/common/logger"
)

// LoadImage loads an image file into a layer stack, choosing the decoder
// by file extension: "ora" is read as OpenRaster, "gif" as an animation,
// every other extension goes through the generic flat-image decoder. A
// path without an extension fails with ErrorUnsupportedFormat before any
// file access. Matching is case-insensitive.
//
// The call is synchronous and reentrant; it keeps no shared state.
func LoadImage(path string) (*painttype.LayerStack, error) {
	return loadImage(path, nil)
}

func loadImage(path string, reporter api.ProgressReporter) (*painttype.LayerStack, error) {
	ext, ok := fileExtension(path)
	if !ok {
		return nil, unsupportedFormatError()
	}
	switch strings.ToLower(ext) {
	case "ora":
		return loadOpenRasterImage(path, reporter)
	case "gif":
		return loadGifAnimation(path, reporter)
	default:
		return loadFlatImage(path)
	}
}

// fileExtension returns the part of the base name after its last dot.
// A name with no dot has no extension, and a leading dot (dotfile) does
// not start one. "name." has an empty extension, which still dispatches
// to the flat decoder.
func fileExtension(path string) (string, bool) {
	base := filepath.Base(path)
	i := strings.LastIndexByte(base, '.')
	if i <= 0 {
		return "", false
	}
	return base[i+1:], true
}

// FileImageImporter loads images from the local filesystem and reports
// per-layer progress through the sender, when one is set.
type FileImageImporter struct {
	sender api.Sender

	api.ImageImporter
}

func NewImageImporter(sender api.Sender) api.ImageImporter {
	return &FileImageImporter{
		sender: sender,
	}
}

func (s *FileImageImporter) LoadImage(path string) (*painttype.LayerStack, error) {
	logger.Debug.Printf("Importing '%s'", path)

	var reporter api.ProgressReporter
	if s.sender != nil {
		reporter = api.NewSenderProgressReporter(s.sender)
	}
	return loadImage(path, reporter)
}

func (s *FileImageImporter) LoadImageThumbnail(path string, size painttype.Size) (image.Image, error) {
	return LoadImageThumbnail(path, size)
}
