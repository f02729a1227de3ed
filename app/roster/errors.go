package roster

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/cockroachdb/errors"
)

var (
	// ErrParseFailure marks structural CSV errors reported by the reader.
	ErrParseFailure = errors.New("parse failure")
	// ErrMissingColumns marks rosters whose header lacks a required column.
	ErrMissingColumns = errors.New("missing required columns")
	// ErrNoRows marks rosters with a header but no data rows.
	ErrNoRows = errors.New("roster has no rows")
)

// MissingColumnsError names the required columns absent from a header.
type MissingColumnsError struct {
	Columns []string
}

func (e *MissingColumnsError) Error() string {
	return fmt.Sprintf("missing required columns: %s", strings.Join(e.Columns, ", "))
}

// UserMessage renders err as the message shown to staff.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	var missing *MissingColumnsError
	var parseErr *csv.ParseError
	switch {
	case errors.As(err, &missing):
		return "Faltan columnas obligatorias: " + strings.Join(missing.Columns, ", ")
	case errors.Is(err, ErrNoRows):
		return "El archivo no contiene jugadores."
	case errors.As(err, &parseErr):
		return "Error al procesar el archivo: " + parseErr.Error()
	default:
		return "Error al procesar el archivo: " + err.Error()
	}
}
