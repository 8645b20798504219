package fontdesc

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Entry is a single row of an encoding map.
type Entry struct {
	Codepoint rune
	Slot      int
	GlyphName string
}

// EncodingTable maps codepoints to slots of a single-byte style code page. Entries keep the order of the encoding map.
type EncodingTable struct {
	Name string

	entries []Entry
	index   map[rune]int
}

// NewEncodingTable returns an empty table with the given name.
func NewEncodingTable(name string) *EncodingTable {
	return &EncodingTable{
		Name:  name,
		index: map[rune]int{},
	}
}

// Add adds an entry. If the codepoint was already added, the entry is replaced but keeps its original position.
func (enc *EncodingTable) Add(entry Entry) {
	if i, ok := enc.index[entry.Codepoint]; ok {
		enc.entries[i] = entry
		return
	}
	enc.index[entry.Codepoint] = len(enc.entries)
	enc.entries = append(enc.entries, entry)
}

// Len returns the number of entries.
func (enc *EncodingTable) Len() int {
	return len(enc.entries)
}

// Entries returns the entries in map order.
func (enc *EncodingTable) Entries() []Entry {
	return enc.entries
}

// Get returns the entry for a codepoint.
func (enc *EncodingTable) Get(r rune) (Entry, bool) {
	if i, ok := enc.index[r]; ok {
		return enc.entries[i], true
	}
	return Entry{}, false
}

// WriteTo writes the table in the encoding map format.
func (enc *EncodingTable) WriteTo(w io.Writer) (int64, error) {
	bw := bufio.NewWriter(w)
	var n int64
	for _, entry := range enc.entries {
		m, err := fmt.Fprintf(bw, "!%02X U+%04X %s\n", entry.Slot, entry.Codepoint, entry.GlyphName)
		n += int64(m)
		if err != nil {
			return n, err
		}
	}
	return n, bw.Flush()
}

// ParseEncoding parses an encoding map where each line reads `!<hex slot> U+<hex codepoint> <glyph name>`. Lines in any other form are skipped. A byte order mark selects UTF-8 or UTF-16, otherwise UTF-8 is assumed.
func ParseEncoding(name string, b []byte) *EncodingTable {
	if d, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), b); err == nil {
		b = d
	}

	enc := NewEncodingTable(name)
	for _, line := range strings.Split(string(b), "\n") {
		if entry, ok := parseEncodingLine(line); ok {
			enc.Add(entry)
		}
	}
	return enc
}

func parseEncodingLine(line string) (Entry, bool) {
	fields := strings.Split(line, " ")
	if len(fields) != 3 {
		return Entry{}, false
	}

	slot := strings.TrimSpace(fields[0])
	if !strings.HasPrefix(slot, "!") {
		return Entry{}, false
	}
	index, err := strconv.ParseUint(slot[1:], 16, 31)
	if err != nil {
		return Entry{}, false
	}

	codepoint := strings.TrimSpace(fields[1])
	if !strings.HasPrefix(codepoint, "U+") {
		return Entry{}, false
	}
	r, err := strconv.ParseUint(codepoint[2:], 16, 32)
	if err != nil || !utf8.ValidRune(rune(r)) {
		return Entry{}, false
	}

	return Entry{
		Codepoint: rune(r),
		Slot:      int(index),
		GlyphName: strings.TrimSpace(fields[2]),
	}, true
}

// LoadEncoding reads and parses an encoding map file. The table is named after the file without directory and extension.
func LoadEncoding(filename string) (*EncodingTable, error) {
	b, err := os.ReadFile(filename)
	if err != nil {
		return nil, &LoadError{filename, err}
	}
	return ParseEncoding(basename(filename), b), nil
}

var charmaps = map[string]*charmap.Charmap{
	"cp874":       charmap.Windows874,
	"cp1250":      charmap.Windows1250,
	"cp1251":      charmap.Windows1251,
	"cp1252":      charmap.Windows1252,
	"cp1253":      charmap.Windows1253,
	"cp1254":      charmap.Windows1254,
	"cp1255":      charmap.Windows1255,
	"cp1256":      charmap.Windows1256,
	"cp1257":      charmap.Windows1257,
	"cp1258":      charmap.Windows1258,
	"iso-8859-1":  charmap.ISO8859_1,
	"iso-8859-2":  charmap.ISO8859_2,
	"iso-8859-4":  charmap.ISO8859_4,
	"iso-8859-5":  charmap.ISO8859_5,
	"iso-8859-7":  charmap.ISO8859_7,
	"iso-8859-9":  charmap.ISO8859_9,
	"iso-8859-15": charmap.ISO8859_15,
	"iso-8859-16": charmap.ISO8859_16,
	"koi8-r":      charmap.KOI8R,
	"koi8-u":      charmap.KOI8U,
}

// CharmapNames returns the names accepted by CharmapEncoding.
func CharmapNames() []string {
	names := make([]string, 0, len(charmaps))
	for name := range charmaps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CharmapEncoding builds a table from a built-in single-byte code page, eg. cp1252 or iso-8859-1. The table has an entry for each of the 256 bytes. Bytes the code page leaves undefined map to a .notdef placeholder: U+00XX for byte XX, or the private use codepoint U+F7XX if U+00XX is taken by another byte.
func CharmapEncoding(name string) (*EncodingTable, bool) {
	cm, ok := charmaps[strings.ToLower(name)]
	if !ok {
		return nil, false
	}

	var runes [256]rune
	defined := map[rune]bool{}
	for i := range runes {
		runes[i] = cm.DecodeByte(byte(i))
		defined[runes[i]] = true
	}

	enc := NewEncodingTable(strings.ToLower(name))
	for i, r := range runes {
		glyphName := ".notdef"
		if r == utf8.RuneError {
			if r = rune(i); defined[r] {
				r = 0xF700 + rune(i)
			}
		} else if _, ok := enc.Get(r); ok {
			r = 0xF700 + rune(i) // byte decodes to a codepoint of an earlier byte
		} else if r != 0 {
			glyphName = fmt.Sprintf("uni%04X", r)
		}
		enc.Add(Entry{
			Codepoint: r,
			Slot:      i,
			GlyphName: glyphName,
		})
	}
	return enc, true
}
