package painttype

import "fmt"

type LayerId int32

const NoLayer = LayerId(-1)

// Layer is a single stacked image produced by an import. Pixel data is
// premultiplied and laid out row-major in the canvas byte order.
type Layer struct {
	id      LayerId
	title   string
	opacity float32
	hidden  bool
	offsetX int
	offsetY int
	width   int
	height  int
	pixels  []Pixel
}

func NewLayer(id LayerId, title string, width int, height int) *Layer {
	return &Layer{
		id:      id,
		title:   title,
		opacity: 1.0,
		width:   width,
		height:  height,
		pixels:  make([]Pixel, width*height),
	}
}

func (s *Layer) Id() LayerId {
	if s != nil {
		return s.id
	} else {
		return NoLayer
	}
}

func (s *Layer) Title() string {
	if s != nil {
		return s.title
	} else {
		return ""
	}
}

func (s *Layer) Opacity() float32 {
	if s != nil {
		return s.opacity
	} else {
		return 0.0
	}
}

func (s *Layer) SetOpacity(opacity float32) {
	s.opacity = opacity
}

func (s *Layer) IsHidden() bool {
	return s != nil && s.hidden
}

func (s *Layer) SetHidden(hidden bool) {
	s.hidden = hidden
}

func (s *Layer) Offset() (int, int) {
	if s != nil {
		return s.offsetX, s.offsetY
	} else {
		return 0, 0
	}
}

func (s *Layer) SetOffset(x int, y int) {
	s.offsetX = x
	s.offsetY = y
}

func (s *Layer) Width() int {
	if s != nil {
		return s.width
	} else {
		return 0
	}
}

func (s *Layer) Height() int {
	if s != nil {
		return s.height
	} else {
		return 0
	}
}

// Pixels returns the layer's backing pixel slice. The slice is owned by
// the layer; callers must not grow it.
func (s *Layer) Pixels() []Pixel {
	if s != nil {
		return s.pixels
	} else {
		return nil
	}
}

func (s *Layer) PixelAt(x int, y int) Pixel {
	if s == nil || x < 0 || x >= s.width || y < 0 || y >= s.height {
		return ZeroPixel
	}
	return s.pixels[y*s.width+x]
}

func (s *Layer) SetPixelAt(x int, y int, p Pixel) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.pixels[y*s.width+x] = p
}

func (s *Layer) String() string {
	if s != nil {
		return fmt.Sprintf("Layer{%s %dx%d}", s.title, s.width, s.height)
	} else {
		return "Layer<nil>"
	}
}

// LayerStack is the layered canvas an image import produces. Layers are
// kept in bottom-to-top order.
type LayerStack struct {
	width  int
	height int
	layers []*Layer
}

func NewLayerStack(width int, height int) *LayerStack {
	return &LayerStack{
		width:  width,
		height: height,
	}
}

func (s *LayerStack) Width() int {
	if s != nil {
		return s.width
	} else {
		return 0
	}
}

func (s *LayerStack) Height() int {
	if s != nil {
		return s.height
	} else {
		return 0
	}
}

func (s *LayerStack) AddLayer(layer *Layer) {
	s.layers = append(s.layers, layer)
}

func (s *LayerStack) Layers() []*Layer {
	if s != nil {
		return s.layers
	} else {
		return nil
	}
}

func (s *LayerStack) LayerCount() int {
	if s != nil {
		return len(s.layers)
	} else {
		return 0
	}
}

func (s *LayerStack) String() string {
	if s != nil {
		return fmt.Sprintf("LayerStack{%dx%d, %d layers}", s.width, s.height, len(s.layers))
	} else {
		return "LayerStack<nil>"
	}
}
