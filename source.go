package fontdesc

import (
	"os"

	"github.com/tdewolff/font"
	xfont "golang.org/x/image/font"
	xsfnt "golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// Metrics are the raw font-wide metrics in font design units.
type Metrics struct {
	UnitsPerEm uint16

	Ascender, Descender int16
	CapHeight           int16
	HasCapHeight        bool // false if the font has no explicit cap height

	XMin, YMin, XMax, YMax int16

	ItalicAngle        float64 // in degrees
	UnderlinePosition  int16
	UnderlineThickness int16
	IsFixedPitch       bool

	XAvgCharWidth int16
	WeightClass   uint16
}

// Source is a parsed font as needed to build a descriptor.
type Source interface {
	FamilyName() string
	Metrics() Metrics

	// GlyphIndex returns the glyph for a rune, or false if the font has no glyph for it.
	GlyphIndex(r rune) (uint16, bool)
	GlyphAdvance(glyphID uint16) uint16
	Kerning(left, right uint16) int16
}

// SFNTSource is a Source for TTF, OTF, TTC, WOFF, WOFF2, and EOT fonts.
type SFNTSource struct {
	MediaType string // of the font file before unwrapping, eg. font/woff2

	sfnt *font.SFNT
	gpos *xsfnt.Font // kerning fallback when there is no kern table
}

// LoadFont reads and parses a font file. The index selects a font inside a collection.
func LoadFont(filename string, index int) (*SFNTSource, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{filename, err}
	}
	src, err := ParseFont(b, index)
	if err != nil {
		if loadErr, ok := err.(*LoadError); ok {
			loadErr.Filename = filename
		}
		return nil, err
	}
	return src, nil
}

// ParseFont parses font data. The index selects a font inside a collection.
func ParseFont(b []byte, index int) (*SFNTSource, error) {
	mediatype, _ := font.MediaType(b)
	b, err := font.ToSFNT(b)
	if err != nil {
		return nil, &LoadError{"", err}
	}
	fnt, err := font.ParseSFNT(b, index)
	if err != nil {
		return nil, &LoadError{"", err}
	} else if fnt.Head == nil || fnt.Head.UnitsPerEm == 0 {
		return nil, &LoadError{"", ErrInvalidUnitsPerEm}
	}

	src := &SFNTSource{
		MediaType: mediatype,
		sfnt:      fnt,
	}
	if fnt.Kern == nil {
		// a single font parses as a collection of one
		if coll, err := xsfnt.ParseCollection(b); err == nil {
			src.gpos, _ = coll.Font(index)
		}
	}
	return src, nil
}

// IsCFF returns true if the font has CFF outlines, false for TrueType outlines.
func (src *SFNTSource) IsCFF() bool {
	return src.sfnt.IsCFF
}

// FamilyName returns the font family name, preferring the English Windows name record.
func (src *SFNTSource) FamilyName() string {
	if src.sfnt.Name == nil {
		return ""
	}
	records := src.sfnt.Name.Get(font.NameFontFamily)
	for _, record := range records {
		if record.Platform == font.PlatformWindows && record.Language == 0x0409 {
			return record.String()
		}
	}
	if 0 < len(records) {
		return records[0].String()
	}
	return ""
}

// Metrics returns the font-wide metrics. The OS/2 fields are zero when the font has no OS/2 table.
func (src *SFNTSource) Metrics() Metrics {
	m := Metrics{
		UnitsPerEm: src.sfnt.Head.UnitsPerEm,
		XMin:       src.sfnt.Head.XMin,
		YMin:       src.sfnt.Head.YMin,
		XMax:       src.sfnt.Head.XMax,
		YMax:       src.sfnt.Head.YMax,
	}
	if hhea := src.sfnt.Hhea; hhea != nil {
		m.Ascender = hhea.Ascender
		m.Descender = hhea.Descender
	}
	if post := src.sfnt.Post; post != nil {
		m.ItalicAngle = post.ItalicAngle
		m.UnderlinePosition = post.UnderlinePosition
		m.UnderlineThickness = post.UnderlineThickness
		m.IsFixedPitch = post.IsFixedPitch != 0
	}
	if os2 := src.sfnt.OS2; os2 != nil {
		m.XAvgCharWidth = os2.XAvgCharWidth
		m.WeightClass = os2.UsWeightClass
		if 2 <= os2.Version && os2.SCapHeight != 0 {
			m.CapHeight = os2.SCapHeight
			m.HasCapHeight = true
		}
	}
	return m
}

// GlyphIndex returns the glyph for a rune. Runes mapped to .notdef have no glyph.
func (src *SFNTSource) GlyphIndex(r rune) (uint16, bool) {
	glyphID := src.sfnt.GlyphIndex(r)
	return glyphID, glyphID != 0
}

// GlyphAdvance returns the advance width of the glyph in font design units.
func (src *SFNTSource) GlyphAdvance(glyphID uint16) uint16 {
	return src.sfnt.GlyphAdvance(glyphID)
}

// Kerning returns the kerning in font design units from the kern table, or from GPOS pair adjustments if there is no kern table.
func (src *SFNTSource) Kerning(left, right uint16) int16 {
	if src.sfnt.Kern != nil {
		return src.sfnt.Kerning(left, right)
	} else if src.gpos == nil {
		return 0
	}

	// with ppem equal to units per em the result is in font design units
	ppem := fixed.I(int(src.sfnt.Head.UnitsPerEm))
	kern, err := src.gpos.Kern(nil, xsfnt.GlyphIndex(left), xsfnt.GlyphIndex(right), ppem, xfont.HintingNone)
	if err != nil {
		return 0
	}
	return int16(kern.Round())
}
