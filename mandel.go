package mandel

// Region within the Mandelbrot set.
// (Xmin, Ymin) is the lower-left corner of the viewport, (Xmax, Ymax) the upper-right.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

// Valid reports whether the region has positive extent in both axes.
// Mapping pixels through a degenerate region divides by zero.
func (r Region) Valid() bool {
	return r.Xmax > r.Xmin && r.Ymax > r.Ymin
}

// PointAt maps pixel (x, y) of a width×height grid onto the region.
// x=0 is the left edge; y=0 is the top edge, so the imaginary part
// decreases as y grows. Keep this orientation: flipping it mirrors the
// rendered image vertically.
func (r Region) PointAt(x, y, width, height int) complex128 {
	re := r.Xmin + float64(x)*(r.Xmax-r.Xmin)/float64(width)
	im := r.Ymax - float64(y)*(r.Ymax-r.Ymin)/float64(height)
	return complex(re, im)
}

// EscapeTime returns how close c is to the Mandelbrot set, as the number
// of iterations *remaining* at escape: maxIter minus the first loop index
// at which |z|² exceeds 4 under z ← z² + c, z₀ = 0. A point that never
// escapes within maxIter iterations yields 0; a point escaping immediately
// yields maxIter. maxIter ≤ 0 yields 0 without iterating.
//
// The squared-magnitude test avoids a square root per iteration.
// Safe to call concurrently.
func EscapeTime(c complex128, maxIter int) int {
	z := complex(0, 0)
	for iter := 0; iter < maxIter; iter++ {
		if real(z)*real(z)+imag(z)*imag(z) > 4 {
			return maxIter - iter
		}
		z = z*z + c
	}
	return 0
}

// Classic regions / landmarks in the Mandelbrot set.
// Selectable on the command line via region=<name>.
var (
	// DefaultRegion – the viewport rendered when no bounds are given
	DefaultRegion = Region{
		Xmin: -1.2,
		Xmax: -1.0,
		Ymin: 0.20,
		Ymax: 0.35,
	}

	// Seahorse Valley – dense filaments and repeating “seahorse” curls
	SeahorseValley = Region{
		Xmin: -0.8,
		Xmax: -0.7,
		Ymin: 0.05,
		Ymax: 0.15,
	}

	// Elephant Valley – large bulb with trunk-like tendrils
	ElephantValley = Region{
		Xmin: -1.85,
		Xmax: -1.75,
		Ymin: -0.10,
		Ymax: -0.02,
	}

	// Spiral Minibrot – small Mandelbrot copy with tight spiral arms
	SpiralMinibrot = Region{
		Xmin: -0.7435,
		Xmax: -0.7420,
		Ymin: 0.1310,
		Ymax: 0.1325,
	}

	// Triple Spiral – threefold symmetric spiral structure
	TripleSpiral = Region{
		Xmin: -0.7480,
		Xmax: -0.7450,
		Ymin: 0.0950,
		Ymax: 0.0980,
	}

	// Valley of the Dragon – deep, highly detailed spiral filaments
	ValleyOfTheDragon = Region{
		Xmin: -0.7400,
		Xmax: -0.7350,
		Ymin: 0.1800,
		Ymax: 0.1850,
	}

	// Minibrot in a Mini-Spiral – self-similar Mandelbrot copy inside a spiral arm
	MinibrotInMiniSpiral = Region{
		Xmin: -1.7390,
		Xmax: -1.7375,
		Ymin: -0.0235,
		Ymax: -0.0220,
	}
)

// Landmarks maps the region=<name> config values to the regions above.
var Landmarks = map[string]Region{
	"default":    DefaultRegion,
	"seahorse":   SeahorseValley,
	"elephant":   ElephantValley,
	"minibrot":   SpiralMinibrot,
	"triple":     TripleSpiral,
	"dragon":     ValleyOfTheDragon,
	"minispiral": MinibrotInMiniSpiral,
}
