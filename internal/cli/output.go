package cli

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/stueynz/openapi-to-postman/internal/domain"
)

// encodeCollection serializes the collection, indenting by indent spaces when
// pretty is set. HTML characters are left unescaped so placeholders such as
// <string> stay readable.
func encodeCollection(collection *domain.Collection, pretty bool, indent int) ([]byte, error) {
	var buf bytes.Buffer

	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(collection); err != nil {
		return nil, fmt.Errorf("failed to encode collection: %w", err)
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// writeToFile writes the collection to file.
func writeToFile(file string, collection *domain.Collection, pretty bool, indent int) error {
	data, err := encodeCollection(collection, pretty, indent)
	if err != nil {
		return err
	}

	if err := os.WriteFile(file, data, 0o644); err != nil {
		return fmt.Errorf("could not write to file: %w", err)
	}

	return nil
}

// printCollection writes the compact collection and a newline to w.
func printCollection(w io.Writer, collection *domain.Collection) error {
	data, err := encodeCollection(collection, false, 0)
	if err != nil {
		return err
	}

	_, err = fmt.Fprintf(w, "%s\n", data)

	return err
}
