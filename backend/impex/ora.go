package impex

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"image/png"
	"io/ioutil"
	"strconv"
	"strings"

	"sovella.fi/paint-engine/api"
	"sovella.fi/paint-engine/api/painttype"
	"sovella.fi/paint-engine/common/logger"
)

const oraMimetype = "image/openraster"

// loadOpenRasterImage reads a layered OpenRaster file: a zip archive with
// a stack.xml manifest and one PNG per layer.
func loadOpenRasterImage(path string, reporter api.ProgressReporter) (*painttype.LayerStack, error) {
	reader, err := zip.OpenReader(path)
	if err != nil {
		return nil, translateZipError(err)
	}
	defer reader.Close()

	if err := checkOraMimetype(&reader.Reader); err != nil {
		return nil, err
	}

	manifest, err := readZipEntry(&reader.Reader, "stack.xml")
	if err != nil {
		return nil, err
	}

	var doc oraImage
	if err := xml.Unmarshal(manifest, &doc); err != nil {
		// A broken manifest is a container error, not a codec error
		logger.Warn.Printf("'%s': invalid stack.xml: %s", path, err)
		return nil, unsupportedFormatError()
	}

	var resolved []resolvedOraLayer
	collectOraLayers(&doc.Stack, 0, 0, &resolved)
	if len(resolved) == 0 {
		return nil, noContentError()
	}

	stack := painttype.NewLayerStack(doc.Width, doc.Height)
	total := len(resolved)
	// stack.xml lists the topmost layer first, the stack wants bottom first
	for i := total - 1; i >= 0; i-- {
		entry := resolved[i]
		layer, err := loadOraLayer(&reader.Reader, painttype.LayerId(total-i), entry)
		if err != nil {
			return nil, err
		}
		stack.AddLayer(layer)
		reportProgress(reporter, "Importing layers", total-i, total)
	}
	logger.Debug.Printf("'%s': imported %d OpenRaster layers", path, total)
	return stack, nil
}

func loadOraLayer(reader *zip.Reader, id painttype.LayerId, entry resolvedOraLayer) (*painttype.Layer, error) {
	content, err := readZipEntry(reader, entry.src)
	if err != nil {
		return nil, err
	}
	decoded, err := png.Decode(bytes.NewReader(content))
	if err != nil {
		return nil, decodeError("png", err)
	}

	layer := layerFromImage(id, entry.name, decoded)
	layer.SetOffset(entry.x, entry.y)
	layer.SetOpacity(entry.opacity)
	layer.SetHidden(entry.hidden)
	return layer, nil
}

func checkOraMimetype(reader *zip.Reader) error {
	content, err := readZipEntry(reader, "mimetype")
	if err != nil {
		return err
	}
	if strings.TrimSpace(string(content)) != oraMimetype {
		return unsupportedFormatError()
	}
	return nil
}

func readZipEntry(reader *zip.Reader, name string) ([]byte, error) {
	for _, file := range reader.File {
		if file.Name != name {
			continue
		}
		entry, err := file.Open()
		if err != nil {
			return nil, translateZipError(err)
		}
		defer entry.Close()

		content, err := ioutil.ReadAll(entry)
		if err != nil {
			return nil, translateZipError(err)
		}
		return content, nil
	}
	// Required entry missing from the container
	return nil, unsupportedFormatError()
}

type oraImage struct {
	XMLName xml.Name `xml:"image"`
	Width   int      `xml:"w,attr"`
	Height  int      `xml:"h,attr"`
	Stack   oraStack `xml:"stack"`
}

type oraLayer struct {
	Name       string `xml:"name,attr"`
	Src        string `xml:"src,attr"`
	X          int    `xml:"x,attr"`
	Y          int    `xml:"y,attr"`
	Opacity    string `xml:"opacity,attr"`
	Visibility string `xml:"visibility,attr"`
}

// oraStack keeps its children in document order; layers and nested
// stacks may interleave.
type oraStack struct {
	x        int
	y        int
	children []interface{}
}

func (s *oraStack) UnmarshalXML(d *xml.Decoder, start xml.StartElement) error {
	for _, attr := range start.Attr {
		switch attr.Name.Local {
		case "x":
			s.x, _ = strconv.Atoi(attr.Value)
		case "y":
			s.y, _ = strconv.Atoi(attr.Value)
		}
	}
	for {
		token, err := d.Token()
		if err != nil {
			return err
		}
		switch element := token.(type) {
		case xml.StartElement:
			switch element.Name.Local {
			case "layer":
				layer := &oraLayer{}
				if err := d.DecodeElement(layer, &element); err != nil {
					return err
				}
				s.children = append(s.children, layer)
			case "stack":
				child := &oraStack{}
				if err := d.DecodeElement(child, &element); err != nil {
					return err
				}
				s.children = append(s.children, child)
			default:
				if err := d.Skip(); err != nil {
					return err
				}
			}
		case xml.EndElement:
			return nil
		}
	}
}

type resolvedOraLayer struct {
	name    string
	src     string
	x       int
	y       int
	opacity float32
	hidden  bool
}

// collectOraLayers flattens nested stacks depth-first, accumulating the
// stack offsets into each layer.
func collectOraLayers(stack *oraStack, offsetX int, offsetY int, out *[]resolvedOraLayer) {
	for _, child := range stack.children {
		switch element := child.(type) {
		case *oraLayer:
			if element.Src == "" {
				continue
			}
			*out = append(*out, resolvedOraLayer{
				name:    element.Name,
				src:     element.Src,
				x:       offsetX + stack.x + element.X,
				y:       offsetY + stack.y + element.Y,
				opacity: parseOraOpacity(element.Opacity),
				hidden:  element.Visibility == "hidden",
			})
		case *oraStack:
			collectOraLayers(element, offsetX+stack.x, offsetY+stack.y, out)
		}
	}
}

func parseOraOpacity(value string) float32 {
	if value == "" {
		return 1.0
	}
	opacity, err := strconv.ParseFloat(value, 32)
	if err != nil || opacity < 0.0 || opacity > 1.0 {
		return 1.0
	}
	return float32(opacity)
}
