package imp

import "fmt"

// An Element is a 3x3 structuring element, indexed [row][col]. The center
// cell is [1][1]; entry [dy+1][dx+1] decides whether the neighbor at offset
// (dx, dy) takes part in a fold.
type Element [3][3]bool

var (
	// Square is the full 8-connected neighborhood plus the center.
	Square = Element{
		{true, true, true},
		{true, true, true},
		{true, true, true},
	}

	// Cross is the 4-connected neighborhood plus the center.
	Cross = Element{
		{false, true, false},
		{true, true, true},
		{false, true, false},
	}
)

// HasCenter returns true if the element includes the origin.
func (e Element) HasCenter() bool {
	return e[1][1]
}

// Size returns the number of enabled cells.
func (e Element) Size() int {
	n := 0
	for _, row := range e {
		for _, on := range row {
			if on {
				n++
			}
		}
	}
	return n
}

func (e Element) String() string {
	s := ""
	for i, row := range e {
		if i > 0 {
			s += "/"
		}
		for _, on := range row {
			if on {
				s += "#"
			} else {
				s += "."
			}
		}
	}
	return s
}

// ParseElement returns the named structuring element ("square" or "cross").
func ParseElement(name string) (Element, error) {
	switch name {
	case "square", "":
		return Square, nil
	case "cross":
		return Cross, nil
	}
	return Element{}, fmt.Errorf("unknown structuring element %q", name)
}
