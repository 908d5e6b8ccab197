package mandel

import (
	"log"
	"strconv"
	"strings"
)

// Params are the run parameters, fixed once resolved. The zero value is not
// useful; start from DefaultParams.
type Params struct {
	Width, Height int
	PlotData      bool // emit the numeric plot grid instead of ASCII art
	Region        Region
	MaxIter       int
}

// DefaultParams returns the documented defaults: a 100×75 ASCII rendering
// of DefaultRegion with a 255-iteration cap.
func DefaultParams() Params {
	return Params{
		Width:   100,
		Height:  75,
		Region:  DefaultRegion,
		MaxIter: 255,
	}
}

// ParseArgs resolves Params from key=value command-line arguments.
// Recognized keys: width, height, png, ll_x, ll_y, ur_x, ur_y, max_iter,
// region. Parsing is deliberately lenient: anything invalid — a malformed
// argument, an unknown key, an unparseable value, a non-positive dimension
// or iteration cap, a viewport without positive extent — is warned about on
// the log and the parameter keeps its default. The run always proceeds.
func ParseArgs(args []string) Params {
	p := DefaultParams()
	for _, arg := range args {
		p.set(arg)
	}
	if !p.Region.Valid() {
		log.Printf("Warning: viewport has no extent, using default region")
		p.Region = DefaultRegion
	}
	return p
}

func (p *Params) set(arg string) {
	key, value, found := strings.Cut(arg, "=")
	if !found {
		log.Printf("Warning: Ignoring invalid argument %q", arg)
		return
	}

	switch key {
	case "width":
		p.Width = parsePositiveInt(key, value, p.Width)
	case "height":
		p.Height = parsePositiveInt(key, value, p.Height)
	case "max_iter":
		p.MaxIter = parsePositiveInt(key, value, p.MaxIter)
	case "png":
		n, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("Warning: Ignoring invalid value %q for %q", value, key)
			return
		}
		p.PlotData = n != 0
	case "ll_x":
		p.Region.Xmin = parseFloat(key, value, p.Region.Xmin)
	case "ll_y":
		p.Region.Ymin = parseFloat(key, value, p.Region.Ymin)
	case "ur_x":
		p.Region.Xmax = parseFloat(key, value, p.Region.Xmax)
	case "ur_y":
		p.Region.Ymax = parseFloat(key, value, p.Region.Ymax)
	case "region":
		r, ok := Landmarks[value]
		if !ok {
			log.Printf("Warning: Unknown region %q", value)
			return
		}
		p.Region = r
	default:
		log.Printf("Warning: Unknown parameter %q", key)
	}
}

func parsePositiveInt(key, value string, fallback int) int {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		log.Printf("Warning: Ignoring invalid value %q for %q", value, key)
		return fallback
	}
	return n
}

func parseFloat(key, value string, fallback float64) float64 {
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		log.Printf("Warning: Ignoring invalid value %q for %q", value, key)
		return fallback
	}
	return f
}
