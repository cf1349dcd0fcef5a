package imp

import (
	"errors"
	"fmt"
	"image"
	"io"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
	_ "golang.org/x/image/webp"
)

// ErrUnknownFormat is returned when an output file name has an extension
// no encoder handles.
var ErrUnknownFormat = errors.New("unknown image format")

// ReadFile reads an image from a file, applying EXIF orientation.
func ReadFile(filename string) (image.Image, error) {
	return imaging.Open(filename, imaging.AutoOrientation(true))
}

// Read reads an image from a io.Reader.
func Read(r io.Reader) (image.Image, error) {
	return imaging.Decode(r, imaging.AutoOrientation(true))
}

// Save creates a file and writes an image to it. Image format is decided based
// upon its extension (png, jpg, jpeg, gif, tif, tiff or bmp).
func Save(filename string, img image.Image) error {
	if _, err := imaging.FormatFromFilename(filename); err != nil {
		return fmt.Errorf("%w %q", ErrUnknownFormat, filepath.Ext(filename))
	}
	return imaging.Save(img, filename, imaging.JPEGQuality(100))
}

// Write encodes an image to w in the format named by ext.
func Write(w io.Writer, img image.Image, ext string) error {
	format, err := imaging.FormatFromExtension(ext)
	if err != nil {
		return fmt.Errorf("%w %q", ErrUnknownFormat, ext)
	}
	return imaging.Encode(w, img, format, imaging.JPEGQuality(100))
}

// OutputPath derives the default output file name for an input file:
// "dir/name.png" becomes "dir/name_processed.png".
func OutputPath(input string) string {
	ext := filepath.Ext(input)
	return strings.TrimSuffix(input, ext) + "_processed" + ext
}
