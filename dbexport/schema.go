package dbexport

import (
	"bufio"
	"fmt"
	"io"
)

// schemaColumnWidth is the minimum width of the column-name column.
const schemaColumnWidth = 24

// WriteSchema writes a fixed-width table of field names and type tags to w:
// a heading line, an underline and one line per field.
func WriteSchema(w io.Writer, names, types []string) error {
	if len(names) != len(types) {
		return fmt.Errorf("schema has %d field names but %d field types", len(names), len(types))
	}
	lines := [][2]string{
		{"Column name", "Data type"},
		{"-----------", "---------"},
	}
	for i, name := range names {
		lines = append(lines, [2]string{name, types[i]})
	}
	for _, line := range lines {
		if _, err := fmt.Fprintf(w, "%-*s%s\n", schemaColumnWidth, line[0], line[1]); err != nil {
			return fmt.Errorf("error writing schema: %w", err)
		}
	}
	return nil
}

// WriteSchemaFile creates path and writes the schema table into it. The file
// is closed before WriteSchemaFile returns.
func WriteSchemaFile(path string, names, types []string) (err error) {
	file, err := createFile(path)
	if err != nil {
		return fmt.Errorf("error creating schema file: %w", err)
	}
	defer func() {
		if cerr := file.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("error closing schema file: %w", cerr)
		}
	}()
	buf := bufio.NewWriter(file)
	if err := WriteSchema(buf, names, types); err != nil {
		return err
	}
	if err := buf.Flush(); err != nil {
		return fmt.Errorf("error writing schema file: %w", err)
	}
	return nil
}
