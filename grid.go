package mandel

// Grid holds one escape-time value per pixel of a width×height image,
// stored row-major. It is written exactly once per cell during the compute
// phase and read only afterwards; rows are disjoint across pool workers, so
// cell access needs no synchronization.
type Grid struct {
	Width, Height int
	cells         []int
}

// NewGrid allocates a zeroed width×height grid.
// Dimensions must be positive; the config layer rejects anything else.
func NewGrid(width, height int) *Grid {
	if width <= 0 || height <= 0 {
		panic("mandel: grid dimensions must be positive")
	}
	return &Grid{
		Width:  width,
		Height: height,
		cells:  make([]int, width*height),
	}
}

func (g *Grid) At(x, y int) int {
	return g.cells[y*g.Width+x]
}

func (g *Grid) Set(x, y, v int) {
	g.cells[y*g.Width+x] = v
}

// Row returns the cells of row y. The slice aliases the grid.
func (g *Grid) Row(y int) []int {
	return g.cells[y*g.Width : (y+1)*g.Width]
}
