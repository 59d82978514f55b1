package main

import (
	"flag"
	"fmt"
	"os"

	"sovella.fi/paint-engine/api"
	"sovella.fi/paint-engine/api/painttype"
	"sovella.fi/paint-engine/backend/impex"
	"sovella.fi/paint-engine/common/event"
	"sovella.fi/paint-engine/common/logger"
)

const eventBusQueueSize = 100

func main() {
	logLevel := flag.String("log-level", "warn", "Log level: error, warn, info, debug, trace")
	flag.Parse()
	logger.Initialize(logger.StringToLogLevel(*logLevel))

	path := flag.Arg(0)
	if path == "" {
		fmt.Fprintln(os.Stderr, "Usage: paint-engine [options] <image file>")
		os.Exit(2)
	}

	broker := event.InitBus(eventBusQueueSize)
	broker.Subscribe(api.ImportStatusUpdated, func(command *api.UpdateProgressCommand) {
		logger.Info.Printf("%s: %d/%d", command.Name, command.Current, command.Total)
	})

	importer := impex.NewImageImporter(broker)
	stack, err := importer.LoadImage(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %s\n", path, importFailureMessage(err))
		os.Exit(1)
	}

	fmt.Printf("%s: %dx%d, %d layer(s)\n", path, stack.Width(), stack.Height(), stack.LayerCount())
	for _, layer := range stack.Layers() {
		x, y := layer.Offset()
		fmt.Printf("  %-20s %dx%d at (%d,%d) opacity %.2f%s%s\n",
			layer.Title(), layer.Width(), layer.Height(), x, y, layer.Opacity(),
			hiddenMarker(layer), emptyMarker(layer))
	}
}

func hiddenMarker(layer *painttype.Layer) string {
	if layer.IsHidden() {
		return " (hidden)"
	}
	return ""
}

func emptyMarker(layer *painttype.Layer) string {
	for _, pixel := range layer.Pixels() {
		if !painttype.FromPixel(pixel).IsTransparent() {
			return ""
		}
	}
	return " (empty)"
}

func importFailureMessage(err error) string {
	kind, ok := impex.ErrorKindOf(err)
	if !ok {
		return err.Error()
	}
	switch kind {
	case impex.ErrorIO:
		return fmt.Sprintf("could not read file: %s", err)
	case impex.ErrorDecode:
		return fmt.Sprintf("could not decode image: %s", err)
	case impex.ErrorUnsupportedFormat:
		return "unsupported file format"
	case impex.ErrorNoContent:
		return "file contains no image layers"
	default:
		return err.Error()
	}
}
