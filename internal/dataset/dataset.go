// Package dataset loads labeled records from CSV files. Glue only: it
// produces trainer records and knows nothing about scoring.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/glottalab/glotta/internal/lang"
	"github.com/glottalab/glotta/internal/logger"
	"github.com/glottalab/glotta/internal/trainer"
)

// LoadCSV reads rows of the form `language,text`. Rows whose label does
// not parse are skipped silently, which also swallows a header row.
func LoadCSV(path string) ([]trainer.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open dataset: %w", err)
	}
	defer f.Close()

	records, err := ReadRecords(f)
	if err != nil {
		return nil, fmt.Errorf("read dataset %s: %w", path, err)
	}
	return records, nil
}

// ReadRecords parses CSV rows from r.
func ReadRecords(r io.Reader) ([]trainer.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	var records []trainer.Record
	skipped := 0
	for {
		row, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		if len(row) < 2 {
			skipped++
			continue
		}
		code, err := lang.Parse(row[0])
		if err != nil {
			skipped++
			continue
		}
		text := strings.TrimSpace(strings.Join(row[1:], ","))
		if text == "" {
			skipped++
			continue
		}
		records = append(records, trainer.Record{Language: code, Text: text})
	}
	if skipped > 0 {
		logger.Debug("skipped %d rows with unknown labels or empty text", skipped)
	}
	return records, nil
}
