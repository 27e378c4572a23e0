package dla

import (
	"image/color"

	"github.com/crazy3lf/colorconv"
)

// Display defaults. The GUI mirrors these so its widgets start in sync.
const (
	DefaultParticleColor   = ColorSeafoam
	DefaultBackgroundColor = ColorBlack
	DefaultTheme           = ThemeSeafoam
)

// ThemeBuckets is the number of gradient steps a theme is quantized into.
const ThemeBuckets = 10

// ColorName is a named display color for particles and backgrounds.
type ColorName int

const (
	ColorSeafoam ColorName = iota
	ColorWhite
	ColorBlack
	ColorLightBlue
	ColorPurple
	ColorPink
	ColorCoral
	ColorOrange
	ColorYellow
	ColorGreen
	ColorRed
)

// ColorNames lists every named color, for UI cycling.
var ColorNames = []ColorName{
	ColorSeafoam, ColorWhite, ColorBlack, ColorLightBlue, ColorPurple,
	ColorPink, ColorCoral, ColorOrange, ColorYellow, ColorGreen, ColorRed,
}

var colorTable = map[ColorName]color.RGBA{
	ColorSeafoam:   {0x27, 0xf5, 0x9f, 0xc8},
	ColorWhite:     {0xff, 0xff, 0xff, 0xff},
	ColorBlack:     {0x00, 0x00, 0x00, 0xff},
	ColorLightBlue: {100, 221, 219, 0xff},
	ColorPurple:    {100, 106, 221, 0xff},
	ColorPink:      {219, 100, 221, 0xff},
	ColorCoral:     {221, 100, 100, 0xff},
	ColorOrange:    {240, 134, 81, 0xff},
	ColorYellow:    {240, 229, 81, 0xff},
	ColorGreen:     {124, 240, 81, 0xff},
	ColorRed:       {217, 23, 23, 0xff},
}

// RGBA returns the concrete color value for the name.
func (c ColorName) RGBA() color.RGBA {
	if v, ok := colorTable[c]; ok {
		return v
	}
	return colorTable[ColorSeafoam]
}

func (c ColorName) String() string {
	switch c {
	case ColorSeafoam:
		return "Seafoam"
	case ColorWhite:
		return "White"
	case ColorBlack:
		return "Black"
	case ColorLightBlue:
		return "Light Blue"
	case ColorPurple:
		return "Purple"
	case ColorPink:
		return "Pink"
	case ColorCoral:
		return "Coral"
	case ColorOrange:
		return "Orange"
	case ColorYellow:
		return "Yellow"
	case ColorGreen:
		return "Green"
	case ColorRed:
		return "Red"
	default:
		return "Seafoam"
	}
}

// Theme colors particles by stick order: early particles take colors from
// the start of the gradient, late ones from the end.
type Theme int

const (
	ThemeSeafoam Theme = iota
	ThemeLemon
	ThemeForest
	ThemeCandy
	ThemeChristmas
	ThemeCreamsicle
	ThemeVibrant
)

// Themes lists every theme, for UI cycling.
var Themes = []Theme{
	ThemeSeafoam, ThemeLemon, ThemeForest, ThemeCandy,
	ThemeChristmas, ThemeCreamsicle, ThemeVibrant,
}

func (t Theme) String() string {
	switch t {
	case ThemeSeafoam:
		return "Seafoam"
	case ThemeLemon:
		return "Lemon"
	case ThemeForest:
		return "Forest"
	case ThemeCandy:
		return "Candy"
	case ThemeChristmas:
		return "Christmas"
	case ThemeCreamsicle:
		return "Creamsicle"
	case ThemeVibrant:
		return "Vibrant"
	default:
		return "Seafoam"
	}
}

type hsv struct {
	h, s, v float64
}

// ramp returns the HSV endpoints the theme's gradient interpolates between.
func (t Theme) ramp() (hsv, hsv) {
	switch t {
	case ThemeLemon:
		return hsv{57, 1.0, 0.96}, hsv{204, 0.60, 0.95}
	case ThemeForest:
		return hsv{97, 1.0, 0.34}, hsv{65, 0.06, 0.85}
	case ThemeCandy:
		return hsv{187, 0.61, 0.94}, hsv{301, 0.33, 0.97}
	case ThemeChristmas:
		return hsv{0, 0.95, 0.73}, hsv{120, 1.0, 0.49}
	case ThemeCreamsicle:
		return hsv{23, 0.87, 0.96}, hsv{192, 0.34, 0.58}
	case ThemeVibrant:
		return hsv{251, 0.49, 0.55}, hsv{30, 0.69, 0.95}
	default:
		return hsv{160, 0.65, 0.76}, hsv{247, 0.75, 0.33}
	}
}

// Gradient generates the theme's bucket colors by interpolating in HSV
// space.
func (t Theme) Gradient() [ThemeBuckets]color.RGBA {
	from, to := t.ramp()
	var out [ThemeBuckets]color.RGBA
	for i := range out {
		f := float64(i) / float64(ThemeBuckets-1)
		r, g, b, err := colorconv.HSVToRGB(lerp(from.h, to.h, f), lerp(from.s, to.s, f), lerp(from.v, to.v, f))
		if err != nil {
			continue
		}
		out[i] = color.RGBA{R: r, G: g, B: b, A: 0xff}
	}
	return out
}

func lerp(a, b, f float64) float64 {
	return a + (b-a)*f
}

// Cells returns the display encoding of the grid: 0 for empty cells, and
// bucket+1 for filled ones, where bucket quantizes the cell's stick order
// into ThemeBuckets slices of the current stuck count.
func (s *Sim) Cells() []uint8 {
	cells := s.grid.Cells()
	if len(s.display) != len(cells) {
		s.display = make([]uint8, len(cells))
	}
	// Integer bucketing is imprecise: ids past the last full bucket are
	// clamped into the final one.
	bucketSize := s.stuck / ThemeBuckets
	for i := range cells {
		if !cells[i].Filled {
			s.display[i] = 0
			continue
		}
		bucket := 0
		if bucketSize > 0 {
			bucket = cells[i].ID / bucketSize
			if bucket >= ThemeBuckets {
				bucket = ThemeBuckets - 1
			}
		}
		s.display[i] = uint8(bucket + 1)
	}
	return s.display
}

// Palette returns the colors the display values index into: entry 0 is the
// background, entries 1..ThemeBuckets color the stick-order buckets. With
// no theme active every filled bucket takes the flat particle color.
func (s *Sim) Palette() []color.RGBA {
	palette := make([]color.RGBA, ThemeBuckets+1)
	palette[0] = s.backColor
	if s.themeSet {
		grad := s.theme.Gradient()
		copy(palette[1:], grad[:])
		return palette
	}
	for i := 1; i < len(palette); i++ {
		palette[i] = s.fillColor
	}
	return palette
}
