package imp

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDilateErodeSpeck(t *testing.T) {
	speck := grayFrom(5, 5,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 255, 0, 0,
		0, 0, 0, 0, 0,
		0, 0, 0, 0, 0,
	)

	assert.Equal(t, []uint8{
		0, 0, 0, 0, 0,
		0, 255, 255, 255, 0,
		0, 255, 255, 255, 0,
		0, 255, 255, 255, 0,
		0, 0, 0, 0, 0,
	}, Dilate(speck, Square).Pix)

	assert.Equal(t, []uint8{
		0, 0, 0, 0, 0,
		0, 0, 255, 0, 0,
		0, 255, 255, 255, 0,
		0, 0, 255, 0, 0,
		0, 0, 0, 0, 0,
	}, Dilate(speck, Cross).Pix)

	assert.Equal(t, make([]uint8, 25), Erode(speck, Square).Pix)
	assert.Equal(t, make([]uint8, 25), Open(speck, Square).Pix)
}

func TestCloseFillsHole(t *testing.T) {
	hole := grayFrom(4, 4,
		255, 255, 255, 255,
		255, 0, 255, 255,
		255, 255, 255, 255,
		255, 255, 255, 255,
	)

	closed := Close(hole, Square)
	for i, v := range closed.Pix {
		assert.Equal(t, uint8(255), v, "pixel %d", i)
	}
}

func TestErodeBorder(t *testing.T) {
	// Out-of-bounds neighbors are skipped, so a white image stays white
	// up to its border instead of being eaten by implicit black padding.
	img := grayFrom(3, 2, 255, 255, 255, 255, 255, 255)
	assert.Equal(t, img.Pix, Erode(img, Square).Pix)

	img = grayFrom(3, 2, 0, 0, 0, 0, 0, 0)
	assert.Equal(t, img.Pix, Dilate(img, Square).Pix)
}

func TestIdempotence(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		for _, el := range []Element{Square, Cross} {
			img := randomGray(seed, 31, 23, seed%2 == 0)

			opened := Open(img, el)
			assert.Equal(t, opened.Pix, Open(opened, el).Pix, "open, seed %d, element %v", seed, el)

			closed := Close(img, el)
			assert.Equal(t, closed.Pix, Close(closed, el).Pix, "close, seed %d, element %v", seed, el)
		}
	}
}

func TestDuality(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		img := randomGray(seed, 17, 29, false)
		for _, el := range []Element{Square, Cross} {
			assert.Equal(t,
				Complement(Dilate(img, el)).Pix,
				Erode(Complement(img), el).Pix,
				"erode/dilate, seed %d", seed)
			assert.Equal(t,
				Complement(Open(img, el)).Pix,
				Close(Complement(img), el).Pix,
				"close/open, seed %d", seed)
		}
	}
}

func TestMonotonicity(t *testing.T) {
	img := randomGray(7, 40, 30, false)
	dilated := Dilate(img, Square)
	eroded := Erode(img, Square)

	for i, v := range img.Pix {
		require.GreaterOrEqual(t, dilated.Pix[i], v, "dilate at %d", i)
		require.LessOrEqual(t, eroded.Pix[i], v, "erode at %d", i)
	}
}

func TestDilateSubErode(t *testing.T) {
	img := randomGray(9, 25, 18, false)
	dilated := Dilate(img, Square)
	eroded := Erode(img, Square)

	out := DilateSubErode(img, Square)
	require.Equal(t, img.Bounds(), out.Bounds())
	for i := range out.Pix {
		assert.Equal(t, dilated.Pix[i]-eroded.Pix[i], out.Pix[i], "pixel %d", i)
	}
}

func TestDilateSubErodeEdges(t *testing.T) {
	step := grayFrom(4, 1, 0, 0, 200, 200)
	assert.Equal(t, []uint8{0, 200, 200, 0}, DilateSubErode(step, Square).Pix)
}

func TestDilateSubErodeSaturates(t *testing.T) {
	// Only the upper-left neighbor: pixels on the top row or left column
	// have nothing to fold over, so dilation yields 0 and erosion 255.
	upLeft := Element{{true}}
	img := grayFrom(2, 2, 10, 20, 30, 40)

	out := DilateSubErode(img, upLeft)
	assert.Equal(t, []uint8{0, 0, 0, 0}, out.Pix)
	assert.Equal(t, uint8(10), Dilate(img, upLeft).GrayAt(1, 1).Y)
}

func TestDimensionsPreserved(t *testing.T) {
	img := image.NewGray(image.Rect(2, 3, 9, 7))
	for _, name := range OperatorNames() {
		op, err := LookupOperator(name)
		require.NoError(t, err)
		assert.Equal(t, img.Bounds(), op(img, Square).Bounds(), name)
	}
}

func TestComplement(t *testing.T) {
	img := grayFrom(3, 1, 0, 100, 255)
	assert.Equal(t, []uint8{255, 155, 0}, Complement(img).Pix)
}

func TestLookupOperator(t *testing.T) {
	assert.Equal(t, []string{"close", "dilate", "dilate_sub_erode", "erode", "open"}, OperatorNames())

	_, err := LookupOperator("gradient")
	assert.ErrorIs(t, err, ErrUnknownOperator)
}

func TestParseElement(t *testing.T) {
	el, err := ParseElement("cross")
	require.NoError(t, err)
	assert.Equal(t, Cross, el)
	assert.Equal(t, 5, el.Size())
	assert.True(t, el.HasCenter())

	el, err = ParseElement("")
	require.NoError(t, err)
	assert.Equal(t, Square, el)
	assert.Equal(t, "###/###/###", el.String())

	_, err = ParseElement("disk")
	assert.Error(t, err)
}
