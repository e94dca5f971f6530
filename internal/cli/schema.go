package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/NikitaCOEUR/rlshell/internal/config"
)

// Schema prints the configuration JSON Schema, or writes it to outputPath
func Schema(outputPath string, out io.Writer) error {
	out = outputOrStdout(out)
	schema := config.GetSchemaJSON()

	if outputPath == "" {
		_, err := fmt.Fprintln(out, schema)
		return err
	}

	if err := os.WriteFile(outputPath, []byte(schema), 0644); err != nil {
		return fmt.Errorf("failed to write schema to %s: %w", outputPath, err)
	}
	_, _ = fmt.Fprintf(out, "JSON Schema written to: %s\n", outputPath)
	return nil
}
