package chemplot

import (
	"image/color"
	"math"
	"sort"
)

//Some internal convenience functions.

//LigandCount is the number of times a ligand name was found.
type LigandCount struct {
	Name  string
	Count int
}

//CountLigands returns how many times each name appears in names, the most
//frequent first. Ties are sorted by name.
func CountLigands(names []string) []LigandCount {
	counts := make(map[string]int)
	for _, n := range names {
		counts[n]++
	}
	ret := make([]LigandCount, 0, len(counts))
	for n, c := range counts {
		ret = append(ret, LigandCount{Name: n, Count: c})
	}
	sort.Slice(ret, func(i, j int) bool {
		if ret[i].Count != ret[j].Count {
			return ret[i].Count > ret[j].Count
		}
		return ret[i].Name < ret[j].Name
	})
	return ret
}

//takes hue (0-360), v and s (0-1), returns r,g,b (0-255)
func iHVS2RGB(h, v, s float64) (uint8, uint8, uint8) {
	var i, f, p, q, t float64
	var r, g, b float64
	maxcolor := 255.0
	if s == 0.0 {
		return uint8(maxcolor * v), uint8(maxcolor * v), uint8(maxcolor * v)
	}
	h = h / 60
	i = math.Floor(h)
	f = h - i
	p = v * (1 - s)
	q = v * (1 - s*f)
	t = v * (1 - s*(1-f))
	switch int(i) {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	default: //case 5
		r, g, b = v, p, q
	}
	return uint8(r * maxcolor), uint8(g * maxcolor), uint8(b * maxcolor)
}

//barColor returns the color for the key-th of steps bars. Hues go from red to
//violet, skipping the yellows, which are hard to see on white.
func barColor(key, steps int) color.RGBA {
	if steps < 1 {
		steps = 1
	}
	norm := 260.0 / float64(steps)
	hp := (float64(key) * norm) + 20.0
	var h float64
	if hp < 55 {
		h = hp - 20.0
	} else {
		h = hp + 20.0
	}
	r, g, b := iHVS2RGB(h, 0.85, 0.8)
	return color.RGBA{R: r, G: g, B: b, A: 255}
}
