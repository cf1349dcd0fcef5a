package imp

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"sort"
)

var (
	Black = color.Gray{0}
	White = color.Gray{255}
)

var (
	// ErrEmptyImage is returned when an image has no pixels.
	ErrEmptyImage = errors.New("empty image")

	// ErrUnknownThreshold is returned for an unrecognized threshold mode.
	ErrUnknownThreshold = errors.New("unknown threshold mode")
)

// ThresholdMode selects the statistic used to pick a binarization cutoff.
type ThresholdMode int

const (
	ThresholdNone ThresholdMode = iota
	ThresholdMean
	ThresholdMedian
)

func (m ThresholdMode) String() string {
	switch m {
	case ThresholdMean:
		return "mean"
	case ThresholdMedian:
		return "median"
	}
	return "none"
}

// ParseThresholdMode reads a mode name. "average" is accepted as an alias
// for "mean".
func ParseThresholdMode(s string) (ThresholdMode, error) {
	switch s {
	case "", "none":
		return ThresholdNone, nil
	case "mean", "average":
		return ThresholdMean, nil
	case "median":
		return ThresholdMedian, nil
	}
	return ThresholdNone, fmt.Errorf("%w %q", ErrUnknownThreshold, s)
}

// MeanCutoff returns the mean sample value of img, truncated.
func MeanCutoff(img *image.Gray) (uint8, error) {
	rect := img.Bounds()
	if rect.Empty() {
		return 0, ErrEmptyImage
	}

	var total float64
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			total += float64(img.GrayAt(x, y).Y)
		}
	}
	return uint8(total / float64(rect.Dx()*rect.Dy())), nil
}

// MedianCutoff returns the sample at index n/2 of the sorted samples of
// img, which is the upper median when n is even.
func MedianCutoff(img *image.Gray) (uint8, error) {
	rect := img.Bounds()
	if rect.Empty() {
		return 0, ErrEmptyImage
	}

	values := make([]int, 0, rect.Dx()*rect.Dy())
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			values = append(values, int(img.GrayAt(x, y).Y))
		}
	}
	sort.Ints(values)
	return uint8(values[len(values)/2]), nil
}

// Threshold performs simple binarization of a grayscale image: samples at
// or below level become black, the others white.
func Threshold(src, dst *image.Gray, level uint8) error {
	if src.Bounds() != dst.Bounds() {
		return errors.New("src and dst should have the same bounds")
	}

	for y := src.Bounds().Min.Y; y < src.Bounds().Max.Y; y++ {
		for x := src.Bounds().Min.X; x < src.Bounds().Max.X; x++ {
			if src.GrayAt(x, y).Y <= level {
				dst.SetGray(x, y, Black)
			} else {
				dst.SetGray(x, y, White)
			}
		}
	}
	return nil
}

// Binarize thresholds src into a new image with the cutoff chosen by mode,
// and returns the cutoff it used. ThresholdNone returns src itself.
func Binarize(src *image.Gray, mode ThresholdMode) (*image.Gray, uint8, error) {
	var (
		level uint8
		err   error
	)
	switch mode {
	case ThresholdNone:
		return src, 0, nil
	case ThresholdMean:
		level, err = MeanCutoff(src)
	case ThresholdMedian:
		level, err = MedianCutoff(src)
	default:
		return nil, 0, fmt.Errorf("%w %d", ErrUnknownThreshold, int(mode))
	}
	if err != nil {
		return nil, 0, err
	}

	dst := image.NewGray(src.Bounds())
	if err := Threshold(src, dst, level); err != nil {
		return nil, 0, err
	}
	return dst, level, nil
}
