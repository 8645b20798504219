package fontdesc

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
)

// ErrInvalidUnitsPerEm is returned if the font's design grid is zero.
var ErrInvalidUnitsPerEm = fmt.Errorf("invalid units per em")

// LoadError is returned when a font or encoding file cannot be read or parsed. There is no partial result.
type LoadError struct {
	Filename string
	Err      error
}

func (err *LoadError) Error() string {
	if err.Filename == "" {
		return err.Err.Error()
	}
	return fmt.Sprintf("%s: %v", err.Filename, err.Err)
}

func (err *LoadError) Unwrap() error {
	return err.Err
}

// basename strips the directory and the extension from a filename.
func basename(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func round(f float64) int {
	return int(math.Round(f))
}
