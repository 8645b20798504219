package main

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/tdewolff/argp"
	"github.com/tdewolff/fontdesc"
)

var (
	Error   *log.Logger
	Warning *log.Logger
)

const usage = "usage: fontdesc --enc path/to/encoding.map path/to/font.ttf"

func main() {
	Error = log.New(os.Stderr, "ERROR: ", 0)
	Warning = log.New(os.Stderr, "WARNING: ", 0)

	var input, encoding, output, exportEnc string
	var index int
	var force, quiet bool

	cmd := argp.New("Build a JSON font descriptor from a TTF/OTF/WOFF/WOFF2/EOT/TTC/OTC font file")
	cmd.AddOpt(&encoding, "e", "enc", "Encoding map file or built-in code page, eg. cp1252.")
	cmd.AddOpt(&output, "o", "output", "Output directory.")
	cmd.AddOpt(&index, "i", "index", "Index into font collection (used with TTC or OTC).")
	cmd.AddOpt(&force, "f", "force", "Force overwriting existing files.")
	cmd.AddOpt(&quiet, "q", "quiet", "Suppress output except for errors.")
	cmd.AddOpt(&exportEnc, "", "export-enc", "Write the encoding map to a file and exit.")
	cmd.AddVal(&input, "input", "Input font file or system font name.")
	cmd.Parse()

	if quiet {
		Warning = log.New(io.Discard, "", 0)
	}

	if err := checkArgs(encoding, input, exportEnc); err != nil {
		Error.Println(err)
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(1)
	}

	enc, err := readEncoding(encoding)
	if err != nil {
		Error.Println(err)
		os.Exit(1)
	}

	if exportEnc != "" {
		if err := writeFile(exportEnc, force, enc.WriteTo); err != nil {
			Error.Println(err)
			os.Exit(1)
		}
		return
	}

	filename := resolveFont(input)
	src, err := fontdesc.LoadFont(filename, index)
	if err != nil {
		Error.Println(err)
		os.Exit(1)
	}

	desc := fontdesc.Build(filename, enc, src)
	if desc.Tp == "TrueType" && src.IsCFF() {
		Warning.Printf("%s contains CFF outlines but has a .ttf extension", filename)
	}
	for _, entry := range fontdesc.MissingGlyphs(enc, src) {
		Warning.Printf("glyph not found: %s (slot %02X)", printableRune(entry.Codepoint), entry.Slot)
	}
	for _, entry := range enc.Entries() {
		if enc.Len() <= entry.Slot {
			Warning.Printf("slot %02X out of range for %d entries: %s", entry.Slot, enc.Len(), printableRune(entry.Codepoint))
		}
	}

	b, err := desc.Marshal()
	if err != nil {
		Error.Println(err)
		os.Exit(1)
	}
	outputFilename := filepath.Join(output, fontdesc.DescriptorFilename(filename))
	if err := writeFile(outputFilename, force, bytesWriter(b)); err != nil {
		Error.Println(err)
		os.Exit(1)
	}
}
