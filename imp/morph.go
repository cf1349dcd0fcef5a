package imp

import (
	"errors"
	"fmt"
	"image"
	"sort"
)

// ErrUnknownOperator is returned when looking up an operator by a name that
// isn't registered.
var ErrUnknownOperator = errors.New("unknown operator")

// An Operator is a morphological filter. It never modifies its input.
type Operator func(img *image.Gray, el Element) *image.Gray

// Operators maps the command names to their implementation.
var Operators = map[string]Operator{
	"dilate":           Dilate,
	"erode":            Erode,
	"open":             Open,
	"close":            Close,
	"dilate_sub_erode": DilateSubErode,
}

// LookupOperator finds an operator by name.
func LookupOperator(name string) (Operator, error) {
	op, ok := Operators[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownOperator, name)
	}
	return op, nil
}

// OperatorNames returns the registered operator names, sorted.
func OperatorNames() []string {
	names := make([]string, 0, len(Operators))
	for name := range Operators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func maxCombine(acc, v uint8) uint8 {
	if v > acc {
		return v
	}
	return acc
}

func minCombine(acc, v uint8) uint8 {
	if v < acc {
		return v
	}
	return acc
}

// Dilate replaces each pixel by the brightest sample under the element.
func Dilate(img *image.Gray, el Element) *image.Gray {
	return Fold(img, el, 0, maxCombine)
}

// Erode replaces each pixel by the darkest sample under the element.
func Erode(img *image.Gray, el Element) *image.Gray {
	return Fold(img, el, 255, minCombine)
}

// Open erodes then dilates, removing bright specks smaller than the element.
func Open(img *image.Gray, el Element) *image.Gray {
	return Dilate(Erode(img, el), el)
}

// Close dilates then erodes, filling dark gaps smaller than the element.
func Close(img *image.Gray, el Element) *image.Gray {
	return Erode(Dilate(img, el), el)
}

// DilateSubErode computes the morphological gradient of img: its dilation
// minus its erosion, both taken from the original image. The subtraction
// saturates at 0, which only matters for elements without a center cell.
func DilateSubErode(img *image.Gray, el Element) *image.Gray {
	dilated := Dilate(img, el)
	eroded := Erode(img, el)

	dst := image.NewGray(img.Bounds())
	for i := range dst.Pix {
		d, e := dilated.Pix[i], eroded.Pix[i]
		if d > e {
			dst.Pix[i] = d - e
		}
	}
	return dst
}

// Complement inverts every sample of img (255 - v) into a new image.
func Complement(img *image.Gray) *image.Gray {
	dst := image.NewGray(img.Bounds())
	rect := img.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			dst.Pix[dst.PixOffset(x, y)] = 255 - img.Pix[img.PixOffset(x, y)]
		}
	}
	return dst
}
