package impex

import (
	"fmt"
	"image/gif"
	"os"

	"sovella.fi/paint-engine/api"
	"sovella.fi/paint-engine/api/painttype"
	"sovella.fi/paint-engine/common/logger"
)

// loadGifAnimation imports every frame of a GIF as its own layer. Frames
// keep their own offsets inside the logical screen; no inter-frame
// compositing is done here.
func loadGifAnimation(path string, reporter api.ProgressReporter) (*painttype.LayerStack, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, ioError(err)
	}
	defer file.Close()

	decoded, err := gif.DecodeAll(file)
	if err != nil {
		return nil, decodeError("gif", err)
	}
	if len(decoded.Image) == 0 {
		return nil, noContentError()
	}

	width := decoded.Config.Width
	height := decoded.Config.Height
	if width == 0 || height == 0 {
		// Header carried no logical screen size, use the first frame
		firstBounds := decoded.Image[0].Bounds()
		width = firstBounds.Max.X
		height = firstBounds.Max.Y
	}

	stack := painttype.NewLayerStack(width, height)
	total := len(decoded.Image)
	for i, frame := range decoded.Image {
		layer := layerFromImage(painttype.LayerId(i+1), fmt.Sprintf("Frame %d", i+1), frame)
		layer.SetOffset(frame.Bounds().Min.X, frame.Bounds().Min.Y)
		stack.AddLayer(layer)
		reportProgress(reporter, "Importing frames", i+1, total)
	}
	logger.Debug.Printf("'%s': imported %d GIF frames", path, total)
	return stack, nil
}

func reportProgress(reporter api.ProgressReporter, name string, current int, total int) {
	if reporter != nil {
		reporter.Update(name, current, total)
	}
}
