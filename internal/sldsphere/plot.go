package sldsphere

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"
)

// SavePlotPNG16 draws I(q) on log-log axes into a 16-bit grey PNG, black on
// white. Points with q <= 0, I <= 0 or non-finite values are left out, and
// the line is broken where they occur.
func SavePlotPNG16(path string, q, iq []Real, w, h int) error {
	if len(q) != len(iq) {
		return fmt.Errorf("length mismatch: q=%d iq=%d", len(q), len(iq))
	}
	if w < 2 || h < 2 {
		return fmt.Errorf("plot size must be at least 2x2, got %dx%d", w, h)
	}

	// 1) log-space bounds over the plottable points
	ok := func(i int) bool { return q[i] > 0 && iq[i] > 0 && isFinite(q[i]) && isFinite(iq[i]) }
	xMin, xMax := math.Inf(1), math.Inf(-1)
	yMin, yMax := math.Inf(1), math.Inf(-1)
	for i := range q {
		if !ok(i) {
			continue
		}
		x, y := math.Log10(q[i]), math.Log10(iq[i])
		xMin, xMax = math.Min(xMin, x), math.Max(xMax, x)
		yMin, yMax = math.Min(yMin, y), math.Max(yMax, y)
	}
	if math.IsInf(xMin, 1) {
		return fmt.Errorf("%w: nothing to plot", ErrNonFinite)
	}
	if xMax == xMin {
		xMax = xMin + 1
	}
	if yMax == yMin {
		yMax = yMin + 1
	}

	// 2) white canvas, pixel mapping with Y flipped so up is up
	img := image.NewGray16(image.Rect(0, 0, w, h))
	for i := range img.Pix {
		img.Pix[i] = 0xFF
	}
	px := func(i int) (Real, Real) {
		x := (math.Log10(q[i]) - xMin) / (xMax - xMin) * Real(w-1)
		y := Real(h-1) - (math.Log10(iq[i])-yMin)/(yMax-yMin)*Real(h-1)
		return x, y
	}
	ink := color.Gray16{Y: 0}
	prev := -1
	for i := range q {
		if !ok(i) {
			prev = -1
			continue
		}
		x1, y1 := px(i)
		if prev < 0 {
			img.SetGray16(int(math.Round(x1)), int(math.Round(y1)), ink)
		} else {
			x0, y0 := px(prev)
			n := int(math.Ceil(math.Max(math.Abs(x1-x0), math.Abs(y1-y0))))
			for s := 0; s <= n; s++ {
				t := 1.0
				if n > 0 {
					t = Real(s) / Real(n)
				}
				img.SetGray16(int(math.Round(x0+(x1-x0)*t)), int(math.Round(y0+(y1-y0)*t)), ink)
			}
		}
		prev = i
	}

	// 3) write PNG
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	enc := png.Encoder{CompressionLevel: png.BestCompression}
	if err := enc.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
