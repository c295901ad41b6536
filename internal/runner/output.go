package runner

import (
	"io"
	"os"

	"github.com/projectdiscovery/sixdegrees"
)

// getOutputWriter returns the appropriate output writer
func getOutputWriter(outputPath string) (io.Writer, error) {
	if outputPath != "" {
		fs, err := os.OpenFile(outputPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return nil, err
		}
		return fs, nil
	}
	return os.Stdout, nil
}

// closeOutput closes the output writer if it's a file
func closeOutput(output io.Writer, outputPath string) error {
	if outputPath != "" {
		if closer, ok := output.(io.Closer); ok {
			return closer.Close()
		}
	}
	return nil
}

// writeFrequencies writes the frequency vector as tsv regardless of the
// file extension
func writeFrequencies(path string, frequencies []int) (err error) {
	output, err := getOutputWriter(path)
	if err != nil {
		return err
	}
	defer func() {
		if closeErr := closeOutput(output, path); err == nil {
			err = closeErr
		}
	}()
	return sixdegrees.TSVExporter{}.Export(output, frequencies)
}
