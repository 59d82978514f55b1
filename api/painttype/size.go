package painttype

import "image"

type Size struct {
	width  int
	height int
}

func SizeOf(width int, height int) Size {
	return Size{width, height}
}

func SizeFromRectangle(rectangle image.Rectangle) Size {
	return Size{
		width:  rectangle.Dx(),
		height: rectangle.Dy(),
	}
}

func (s *Size) Width() int {
	return s.width
}

func (s *Size) Height() int {
	return s.height
}

// ScaleToFit shrinks the source dimensions so they fit inside the target
// while keeping the aspect ratio.
func ScaleToFit(source Size, target Size) Size {
	ratio := float32(source.width) / float32(source.height)
	newWidth := int(float32(target.height) * ratio)
	newHeight := target.height

	if newWidth > target.width {
		newWidth = target.width
		newHeight = int(float32(target.width) / ratio)
	}
	return Size{newWidth, newHeight}
}
