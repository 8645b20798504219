package fontdesc

// BuildWidths returns the scaled advance width for each slot of the encoding. The result has one element per encoding entry. Codepoints without a glyph, unused slots, and slots out of range get the missing width.
func BuildWidths(enc *EncodingTable, src Source, n Normalizer) []int {
	missingWidth := n.MissingWidth()
	widths := make([]int, enc.Len())
	written := make([]bool, enc.Len())
	for _, entry := range enc.Entries() {
		if entry.Slot < 0 || len(widths) <= entry.Slot {
			continue
		}

		width := missingWidth
		if glyphID, ok := src.GlyphIndex(entry.Codepoint); ok {
			width = n.Scale(float64(src.GlyphAdvance(glyphID)))
		}
		widths[entry.Slot] = width
		written[entry.Slot] = true
	}
	for i := range widths {
		if !written[i] {
			widths[i] = missingWidth
		}
	}
	return widths
}
