package fontdesc

import (
	"encoding/json"
	"testing"

	"github.com/tdewolff/test"
)

func TestBuildKerning(t *testing.T) {
	src := newTestSource()
	src.addGlyph('A', 1, 600)
	src.addGlyph('B', 2, 610)
	src.kerns[[2]uint16{1, 2}] = -50

	enc := ParseEncoding("test", []byte("!41 U+0041 A\n!42 U+0042 B\n"))
	n := NewNormalizer(src.Metrics())
	test.T(t, BuildKerning(enc, src, n), KerningTable{
		0x41: {{0x42, -50}},
	})
}

func TestBuildKerningOrder(t *testing.T) {
	src := newTestSource()
	src.metrics.UnitsPerEm = 2048
	src.addGlyph('A', 1, 1200)
	src.addGlyph('T', 2, 1200)
	src.addGlyph('V', 3, 1200)
	src.addGlyph('o', 4, 1100)
	src.kerns[[2]uint16{2, 4}] = -150
	src.kerns[[2]uint16{2, 1}] = -100
	src.kerns[[2]uint16{1, 3}] = -152
	src.kerns[[2]uint16{1, 2}] = -100
	src.kerns[[2]uint16{3, 3}] = 1 // nonzero before scaling

	enc := ParseEncoding("test", []byte("!6F U+006F o\n!54 U+0054 T\n!41 U+0041 A\n!56 U+0056 V\n"))
	n := NewNormalizer(src.Metrics())
	test.T(t, BuildKerning(enc, src, n), KerningTable{
		0x54: {{0x6F, -73}, {0x41, -49}},
		0x41: {{0x54, -49}, {0x56, -74}},
		0x56: {{0x56, 0}},
	})
}

func TestBuildKerningMissingGlyphs(t *testing.T) {
	src := newTestSource()
	src.addGlyph('A', 1, 600)
	src.addGlyph('B', 2, 610)
	src.kerns[[2]uint16{1, 2}] = -40
	src.kerns[[2]uint16{2, 1}] = -30
	src.kerns[[2]uint16{0, 1}] = -20 // .notdef
	src.kerns[[2]uint16{1, 0}] = -20

	enc := ParseEncoding("test", []byte("!41 U+0041 A\n!42 U+0042 B\n!43 U+0043 C\n"))
	n := NewNormalizer(src.Metrics())
	kerns := BuildKerning(enc, src, n)
	test.T(t, kerns, KerningTable{
		0x41: {{0x42, -40}},
		0x42: {{0x41, -30}},
	})
	for left, pairs := range kerns {
		test.That(t, left != 0x43)
		test.That(t, 0 < len(pairs), "empty kerning list for slot", left)
		for _, pair := range pairs {
			test.That(t, pair.Slot != 0x43)
		}
	}
}

func TestBuildKerningNone(t *testing.T) {
	src := newTestSource()
	src.addGlyph('A', 1, 600)
	src.addGlyph('B', 2, 610)

	enc := ParseEncoding("test", []byte("!41 U+0041 A\n!42 U+0042 B\n"))
	n := NewNormalizer(src.Metrics())
	kerns := BuildKerning(enc, src, n)
	test.T(t, len(kerns), 0)

	_, ok := kerns[0x41]
	test.That(t, !ok, "slot without kerning must be absent")
}

func TestKerningTableJSON(t *testing.T) {
	kerns := KerningTable{
		10:   {{65, -50}, {86, -80}},
		9:    {{65, 20}},
		0x41: {{0x42, -50}},
	}
	b, err := json.Marshal(kerns)
	test.Error(t, err)
	test.T(t, string(b), `{"9":[65,20],"10":[65,-50,86,-80],"65":[66,-50]}`)

	var kerns2 KerningTable
	test.Error(t, json.Unmarshal(b, &kerns2))
	test.T(t, kerns2, kerns)

	b, err = json.Marshal(KerningTable{})
	test.Error(t, err)
	test.T(t, string(b), `{}`)

	test.That(t, json.Unmarshal([]byte(`{"65":[66]}`), &kerns2) != nil, "expected error for odd number of values")
}
