package imp

import (
	"image"
	"math/rand"
)

// grayFrom builds a w x h image from row-major samples.
func grayFrom(w, h int, pix ...uint8) *image.Gray {
	img := image.NewGray(image.Rect(0, 0, w, h))
	copy(img.Pix, pix)
	return img
}

// randomGray returns a reproducible noisy image; with binary set, samples
// are only 0 or 255.
func randomGray(seed int64, w, h int, binary bool) *image.Gray {
	rnd := rand.New(rand.NewSource(seed))
	img := image.NewGray(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		v := uint8(rnd.Intn(256))
		if binary {
			if v < 160 {
				v = 0
			} else {
				v = 255
			}
		}
		img.Pix[i] = v
	}
	return img
}
