package processing

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
)

// requiredColumns are the logical column names every earnings export must
// carry, matched against the normalized header.
var requiredColumns = []string{
	"id_da_pessoa_entregadora",
	"recebedor",
	"subpraca",
	"praca",
	"valor",
	"descricao",
	"periodo",
}

// dateColumns are the recognized names of the optional date-of-record column,
// checked in order.
var dateColumns = []string{
	"data_do_periodo_de_referencia",
	"data_periodo",
	"data_referencia",
	"periodo_data",
}

// decoderFallbacks is the ordered list of charsets tried after UTF-8. The
// exports come from Brazilian back offices, so Latin-family encodings cover
// what shows up in practice.
var decoderFallbacks = []struct {
	name    string
	decoder *encoding.Decoder
}{
	{"iso-8859-1", charmap.ISO8859_1.NewDecoder()},
	{"windows-1252", charmap.Windows1252.NewDecoder()},
	{"iso-8859-15", charmap.ISO8859_15.NewDecoder()},
}

// ingestFile reads one `;`-separated earnings export and returns its rows,
// normalized and classified. Returns ErrUnreadableFile when no encoding
// decodes the bytes and a *SchemaError when required columns are absent.
func ingestFile(path string) ([]entity.RawTransactionRow, error) {
	name := filepath.Base(path)
	log.Infof("[Ingest] Reading earnings file: %s", name)

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open earnings file %s: %w", name, err)
	}

	text, enc, err := decodeWithFallback(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, ErrUnreadableFile)
	}
	log.Infof("[Ingest] %s decoded as %s", name, enc)

	reader := csv.NewReader(strings.NewReader(text))
	reader.Comma = ';'
	reader.LazyQuotes = true
	reader.FieldsPerRecord = -1

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse csv from %s: %w", name, err)
	}
	if len(records) == 0 {
		return nil, &SchemaError{File: name, Missing: requiredColumns}
	}

	columns := indexColumns(records[0])
	var missing []string
	for _, col := range requiredColumns {
		if _, ok := columns[col]; !ok {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return nil, &SchemaError{File: name, Missing: missing}
	}

	dateCol := -1
	for _, col := range dateColumns {
		if idx, ok := columns[col]; ok {
			dateCol = idx
			break
		}
	}

	rows := make([]entity.RawTransactionRow, 0, len(records)-1)
	for _, record := range records[1:] {
		original := strings.TrimSpace(cell(record, columns["descricao"]))
		row := entity.RawTransactionRow{
			DriverID:            strings.TrimSpace(cell(record, columns["id_da_pessoa_entregadora"])),
			DriverName:          strings.TrimSpace(cell(record, columns["recebedor"])),
			SubLocation:         strings.TrimSpace(cell(record, columns["subpraca"])),
			Location:            strings.TrimSpace(cell(record, columns["praca"])),
			Amount:              parseAmountOrZero(cell(record, columns["valor"])),
			OriginalDescription: original,
			Description:         strings.ToLower(original),
			WorkingPeriod:       strings.TrimSpace(cell(record, columns["periodo"])),
			HasDateColumn:       dateCol >= 0,
		}
		row.Category = Classify(row.Description)
		if dateCol >= 0 {
			if d, ok := parseReferenceDate(cell(record, dateCol)); ok {
				row.ReferenceDate = &d
			}
		}
		rows = append(rows, row)
	}

	log.Infof("[Ingest] %s: %d rows", name, len(rows))
	return rows, nil
}

// decodeWithFallback tries UTF-8 first, then each Latin-family decoder in
// order; the first success wins.
func decodeWithFallback(raw []byte) (string, string, error) {
	if utf8.Valid(raw) {
		return string(raw), "utf-8", nil
	}
	for _, fallback := range decoderFallbacks {
		decoded, err := fallback.decoder.Bytes(raw)
		if err != nil {
			continue
		}
		return string(decoded), fallback.name, nil
	}
	return "", "", ErrUnreadableFile
}

// indexColumns maps normalized header names to their positions. Headers are
// trimmed, lower-cased and space-to-underscore normalized; a UTF-8 BOM on the
// first cell is dropped.
func indexColumns(header []string) map[string]int {
	columns := make(map[string]int, len(header))
	for i, h := range header {
		if i == 0 {
			h = strings.TrimPrefix(h, "\uFEFF")
		}
		name := strings.ToLower(strings.TrimSpace(h))
		name = strings.ReplaceAll(name, " ", "_")
		if name == "" {
			continue
		}
		if _, exists := columns[name]; !exists {
			columns[name] = i
		}
	}
	return columns
}

func cell(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return record[idx]
}

// parseAmountOrZero converts a monetary cell to a decimal. Never fails: any
// unparsable value becomes zero. Cells holding a comma are treated as the
// Brazilian format ("1.234,56"), everything else as dot-decimal.
func parseAmountOrZero(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	amount, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

var referenceDateLayouts = []string{
	consts.LayoutDate,
	consts.LayoutDateTime,
	"02/01/2006",
}

func parseReferenceDate(s string) (time.Time, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range referenceDateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}
