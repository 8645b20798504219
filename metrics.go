package fontdesc

// Normalizer scales font design units to a 1000 units per em grid.
type Normalizer struct {
	m Metrics
	k float64
}

// NewNormalizer returns a normalizer for the given metrics. UnitsPerEm must be nonzero.
func NewNormalizer(m Metrics) Normalizer {
	return Normalizer{
		m: m,
		k: 1000.0 / float64(m.UnitsPerEm),
	}
}

// Scale converts a value in font design units, rounding to the nearest integer.
func (n Normalizer) Scale(x float64) int {
	return round(n.k * x)
}

func (n Normalizer) Ascent() int {
	return n.Scale(float64(n.m.Ascender))
}

func (n Normalizer) Descent() int {
	return n.Scale(float64(n.m.Descender))
}

// CapHeight returns the scaled cap height, or the ascent if the font does not specify one.
func (n Normalizer) CapHeight() int {
	if !n.m.HasCapHeight {
		return n.Ascent()
	}
	return n.Scale(float64(n.m.CapHeight))
}

// BBox returns the scaled font bounding box (xmin,ymin,xmax,ymax).
func (n Normalizer) BBox() (int, int, int, int) {
	return n.Scale(float64(n.m.XMin)), n.Scale(float64(n.m.YMin)), n.Scale(float64(n.m.XMax)), n.Scale(float64(n.m.YMax))
}

// MissingWidth returns the scaled average character width, used for codepoints without a glyph.
func (n Normalizer) MissingWidth() int {
	return n.Scale(float64(n.m.XAvgCharWidth))
}

func (n Normalizer) UnderlinePosition() int {
	return n.Scale(float64(n.m.UnderlinePosition))
}

func (n Normalizer) UnderlineThickness() int {
	return n.Scale(float64(n.m.UnderlineThickness))
}

// Metrics returns the unscaled metrics.
func (n Normalizer) Metrics() Metrics {
	return n.m
}
