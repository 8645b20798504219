package fontdesc

import (
	"encoding/json"
	"io"
	"path/filepath"
)

// DescriptorExt is the file extension of descriptor files.
const DescriptorExt = ".json"

// Flags are the font style flags of a descriptor.
type Flags uint32

// see Flags
const (
	FlagFixedPitch  Flags = 1 << 0
	FlagNonsymbolic Flags = 1 << 5 // always set
	FlagItalic      Flags = 1 << 6
)

// BBox is a bounding box in a 1000 units per em grid.
type BBox struct {
	Xmin, Ymin, Xmax, Ymax int
}

// FontDesc holds the font-wide metrics of a descriptor in a 1000 units per em grid.
type FontDesc struct {
	Ascent       int
	Descent      int
	CapHeight    int
	Flags        Flags
	FontBBox     BBox
	ItalicAngle  int // in degrees
	StemV        int
	MissingWidth int
}

// Descriptor is a font definition for a layout engine that cannot read font files. Its JSON form is compatible with gofpdf font definition files.
type Descriptor struct {
	Tp   string // TrueType or OpenType
	Name string
	Desc FontDesc
	Up   int // underline position
	Ut   int // underline thickness
	Cw   []int
	Ck   KerningTable
	Enc  string

	// not implemented, always empty
	Diff         string
	File         string
	Size1, Size2 int
	OriginalSize int
	I            int
	N            int
	DiffN        int
}

// Build builds the descriptor of a font for the given encoding. The descriptor type follows the extension of the font's filename: .ttf is TrueType and anything else OpenType.
//
// The italic flag is set for any nonzero italic angle, even when the angle rounds to zero in Desc.ItalicAngle.
func Build(fontFilename string, enc *EncodingTable, src Source) *Descriptor {
	n := NewNormalizer(src.Metrics())
	m := n.Metrics()

	tp := "OpenType"
	if filepath.Ext(fontFilename) == ".ttf" {
		tp = "TrueType"
	}

	xmin, ymin, xmax, ymax := n.BBox()
	return &Descriptor{
		Tp:   tp,
		Name: src.FamilyName(),
		Desc: FontDesc{
			Ascent:       n.Ascent(),
			Descent:      n.Descent(),
			CapHeight:    n.CapHeight(),
			Flags:        makeFlags(m),
			FontBBox:     BBox{xmin, ymin, xmax, ymax},
			ItalicAngle:  round(m.ItalicAngle),
			StemV:        stemV(m.WeightClass),
			MissingWidth: n.MissingWidth(),
		},
		Up:  n.UnderlinePosition(),
		Ut:  n.UnderlineThickness(),
		Cw:  BuildWidths(enc, src, n),
		Ck:  BuildKerning(enc, src, n),
		Enc: enc.Name,
	}
}

func makeFlags(m Metrics) Flags {
	flags := FlagNonsymbolic
	if m.IsFixedPitch {
		flags |= FlagFixedPitch
	}
	if m.ItalicAngle != 0 {
		flags |= FlagItalic
	}
	return flags
}

// stemV estimates the vertical stem width from the weight class.
func stemV(weightClass uint16) int {
	if 500 < weightClass {
		return 120
	}
	return 70
}

// MissingGlyphs returns the encoding entries for which the font has no glyph.
func MissingGlyphs(enc *EncodingTable, src Source) []Entry {
	var missing []Entry
	for _, entry := range enc.Entries() {
		if _, ok := src.GlyphIndex(entry.Codepoint); !ok {
			missing = append(missing, entry)
		}
	}
	return missing
}

// DescriptorFilename returns the descriptor filename for a font, ie. its basename with the descriptor extension.
func DescriptorFilename(fontFilename string) string {
	return basename(fontFilename) + DescriptorExt
}

// Marshal returns the compact JSON encoding of the descriptor.
func (desc *Descriptor) Marshal() ([]byte, error) {
	return json.Marshal(desc)
}

// ReadDescriptor reads a descriptor in JSON form.
func ReadDescriptor(r io.Reader) (*Descriptor, error) {
	desc := &Descriptor{}
	if err := json.NewDecoder(r).Decode(desc); err != nil {
		return nil, err
	}
	return desc, nil
}
