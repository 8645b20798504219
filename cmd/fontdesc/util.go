package main

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"unicode"

	"github.com/flopp/go-findfont"
	"github.com/tdewolff/fontdesc"
	"github.com/tdewolff/prompt"
)

// checkArgs validates the command-line arguments before anything is read.
func checkArgs(encoding, input, exportEnc string) error {
	if encoding == "" {
		return fmt.Errorf("an encoding (codepage) is required")
	} else if input == "" && exportEnc == "" {
		return fmt.Errorf("an input font is required")
	}
	return nil
}

func printableRune(r rune) string {
	if unicode.IsGraphic(r) {
		return fmt.Sprintf("%c (%U)", r, r)
	}
	return fmt.Sprintf("%U", r)
}

// readEncoding loads an encoding map file, or a built-in code page when no such file exists.
func readEncoding(name string) (*fontdesc.EncodingTable, error) {
	if _, err := os.Stat(name); err != nil {
		if enc, ok := fontdesc.CharmapEncoding(name); ok {
			return enc, nil
		}
	}
	return fontdesc.LoadEncoding(name)
}

// resolveFont returns the path of a font file, looking up system fonts by name when the file does not exist.
func resolveFont(name string) string {
	if _, err := os.Stat(name); err == nil {
		return name
	}
	if filename, err := findfont.Find(name); err == nil && filename != "" {
		return filename
	}
	return name
}

func bytesWriter(b []byte) func(io.Writer) (int64, error) {
	return bytes.NewReader(b).WriteTo
}

// writeFile creates the file and writes its contents. Existing files are only overwritten when forced or confirmed. The file is removed if writing fails.
func writeFile(filename string, force bool, write func(io.Writer) (int64, error)) error {
	if _, err := os.Stat(filename); err == nil {
		if !force && !prompt.YesNo(fmt.Sprintf("%s already exists, overwrite?", filename), false) {
			return fmt.Errorf("%s: file already exists", filename)
		}
	}

	w, err := os.Create(filename)
	if err != nil {
		return err
	}
	if _, err := write(w); err != nil {
		w.Close()
		os.Remove(filename)
		return err
	} else if err := w.Close(); err != nil {
		os.Remove(filename)
		return err
	}
	return nil
}
