package fontdesc

import (
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strconv"
)

// KernPair is the kerning adjustment against the glyph in the right slot.
type KernPair struct {
	Slot  int
	Value int
}

// KerningTable maps a left slot to its kerning pairs. Slots without kerning are absent.
type KerningTable map[int][]KernPair

// MarshalJSON writes the table as {"<left slot>":[slot,kern,slot,kern,...],...} with the keys in ascending order.
func (kerns KerningTable) MarshalJSON() ([]byte, error) {
	slots := make([]int, 0, len(kerns))
	for slot := range kerns {
		slots = append(slots, slot)
	}
	sort.Ints(slots)

	b := &bytes.Buffer{}
	b.WriteByte('{')
	for i, slot := range slots {
		if i != 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strconv.Itoa(slot))
		b.WriteString(`":[`)
		for j, pair := range kerns[slot] {
			if j != 0 {
				b.WriteByte(',')
			}
			b.WriteString(strconv.Itoa(pair.Slot))
			b.WriteByte(',')
			b.WriteString(strconv.Itoa(pair.Value))
		}
		b.WriteByte(']')
	}
	b.WriteByte('}')
	return b.Bytes(), nil
}

// UnmarshalJSON reads the format written by MarshalJSON.
func (kerns *KerningTable) UnmarshalJSON(b []byte) error {
	var raw map[int][]int
	if err := json.Unmarshal(b, &raw); err != nil {
		return err
	}
	*kerns = make(KerningTable, len(raw))
	for slot, values := range raw {
		if len(values)%2 != 0 {
			return fmt.Errorf("kerning: odd number of values for slot %d", slot)
		}
		pairs := make([]KernPair, 0, len(values)/2)
		for i := 0; i+1 < len(values); i += 2 {
			pairs = append(pairs, KernPair{values[i], values[i+1]})
		}
		(*kerns)[slot] = pairs
	}
	return nil
}

// BuildKerning returns the scaled kerning between all pairs of encoding entries that have a glyph in the font. Pairs are listed in encoding order and only nonzero kerning is kept.
func BuildKerning(enc *EncodingTable, src Source, n Normalizer) KerningTable {
	type slotGlyph struct {
		slot    int
		glyphID uint16
	}

	glyphs := make([]slotGlyph, 0, enc.Len())
	for _, entry := range enc.Entries() {
		if glyphID, ok := src.GlyphIndex(entry.Codepoint); ok {
			glyphs = append(glyphs, slotGlyph{entry.Slot, glyphID})
		}
	}

	kerns := KerningTable{}
	for _, left := range glyphs {
		var pairs []KernPair
		for _, right := range glyphs {
			if kern := src.Kerning(left.glyphID, right.glyphID); kern != 0 {
				pairs = append(pairs, KernPair{right.slot, n.Scale(float64(kern))})
			}
		}
		if 0 < len(pairs) {
			kerns[left.slot] = pairs
		}
	}
	return kerns
}
