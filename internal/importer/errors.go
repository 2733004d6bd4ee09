package importer

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyFile is returned when an export file contains no header row.
var ErrEmptyFile = errors.New("export file is empty")

// MissingColumnsError is returned when an export file's header lacks
// required columns. The message names the missing fields so the
// operator can fix the export rather than guess.
type MissingColumnsError struct {
	// Columns lists the required columns that could not be identified.
	Columns []string
}

// Error implements the error interface.
func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("export file is missing required columns: %s",
		strings.Join(e.Columns, ", "))
}
