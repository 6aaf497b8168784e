package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/ssargent/contamprj/pkg/prj"
)

func decodeOptions(s *settings) prj.DecodeOptions {
	return prj.DecodeOptions{
		Lenient: s.config.Decode.Lenient,
		OnMalformed: func(fe *prj.FieldError) {
			s.logger.Warn("malformed numeric field",
				"record", fe.Record.String(), "field", fe.Field, "text", fe.Text, "line", fe.Line)
		},
	}
}

// readInput reads a file, or stdin when path is "-"
func readInput(path string, stdin io.Reader) (string, error) {
	if path == "-" {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}
	return string(data), nil
}

// decodeRecords reads a counted section of kind k, or the single run
// control record.
func decodeRecords(k prj.Kind, text string, opts prj.DecodeOptions) ([]prj.Record, error) {
	if k == prj.KindRunControl {
		rec, err := prj.Decode(k, text, opts)
		if err != nil {
			return nil, err
		}
		return []prj.Record{rec}, nil
	}
	return prj.ReadSection(prj.NewStringReader(text), k, opts)
}

func encodeRecords(k prj.Kind, records []prj.Record) string {
	if k == prj.KindRunControl && len(records) == 1 {
		return records[0].Write()
	}
	return prj.WriteSection(records)
}
