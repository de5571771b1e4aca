package processing

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abjp/driver-payroll/entity"
)

func writeCSV(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o644))
	return path
}

const header = "id_da_pessoa_entregadora;recebedor;subpraca;praca;valor;descricao;periodo\n"

func TestIngestFileBasic(t *testing.T) {
	csv := header +
		"D1;Maria Silva;Centro;Sao Paulo;10,50;Corridas concluidas;manha\n" +
		"D1;Maria Silva;Centro;Sao Paulo;2,00;Gorjeta;manha\n"
	rows, err := ingestFile(writeCSV(t, "earnings.csv", []byte(csv)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.Equal(t, "D1", rows[0].DriverID)
	require.Equal(t, "Maria Silva", rows[0].DriverName)
	require.Equal(t, "Sao Paulo", rows[0].Location)
	require.Equal(t, "Centro", rows[0].SubLocation)
	require.Equal(t, "10.5", rows[0].Amount.String())
	require.Equal(t, entity.CategoryRides, rows[0].Category)
	require.Equal(t, entity.CategoryTips, rows[1].Category)
	require.Equal(t, "Gorjeta", rows[1].OriginalDescription)
	require.Equal(t, "gorjeta", rows[1].Description)
	require.False(t, rows[0].HasDateColumn)
	require.Nil(t, rows[0].ReferenceDate)
}

func TestIngestFileMissingColumns(t *testing.T) {
	csv := "id_da_pessoa_entregadora;recebedor;valor\nD1;Maria;10\n"
	_, err := ingestFile(writeCSV(t, "broken.csv", []byte(csv)))

	var schemaErr *SchemaError
	require.ErrorAs(t, err, &schemaErr)
	require.Equal(t, "broken.csv", schemaErr.File)
	require.Contains(t, schemaErr.Missing, "praca")
	require.Contains(t, schemaErr.Missing, "descricao")
}

func TestIngestFileHeaderNormalization(t *testing.T) {
	// BOM, mixed case and spaces in the header still resolve.
	csv := "\uFEFFID da Pessoa Entregadora;Recebedor;SubPraca;Praca;Valor;Descricao;Periodo\n" +
		"D9;Joao;Norte;Recife;5;Gorjeta;tarde\n"
	rows, err := ingestFile(writeCSV(t, "bom.csv", []byte(csv)))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "D9", rows[0].DriverID)
}

func TestIngestFileLatinEncoding(t *testing.T) {
	// "São Paulo" with 0xE3 (ã) is invalid UTF-8 and must fall back to a
	// Latin-family decoder.
	csv := []byte("id_da_pessoa_entregadora;recebedor;subpraca;praca;valor;descricao;periodo\n")
	csv = append(csv, []byte("D2;Jo")...)
	csv = append(csv, 0xE3)
	csv = append(csv, []byte("o;Sul;S")...)
	csv = append(csv, 0xE3)
	csv = append(csv, []byte("o Paulo;7,25;Gorjeta;noite\n")...)

	rows, err := ingestFile(writeCSV(t, "latin.csv", csv))
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, "João", rows[0].DriverName)
	require.Equal(t, "São Paulo", rows[0].Location)
}

func TestIngestFileWithDateColumn(t *testing.T) {
	csv := "id_da_pessoa_entregadora;recebedor;subpraca;praca;valor;descricao;periodo;data_do_periodo_de_referencia\n" +
		"D1;Maria;Centro;SP;10;Gorjeta;manha;2026-08-30\n" +
		"D1;Maria;Centro;SP;10;Gorjeta;manha;nonsense\n"
	rows, err := ingestFile(writeCSV(t, "dated.csv", []byte(csv)))
	require.NoError(t, err)
	require.Len(t, rows, 2)

	require.True(t, rows[0].HasDateColumn)
	require.NotNil(t, rows[0].ReferenceDate)
	require.Equal(t, "2026-08-30", rows[0].ReferenceDate.Format("2006-01-02"))

	// Unparseable cell: the row keeps the date-column flag but no date.
	require.True(t, rows[1].HasDateColumn)
	require.Nil(t, rows[1].ReferenceDate)
}

func TestIngestFileMissing(t *testing.T) {
	_, err := ingestFile(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)
	require.False(t, errors.Is(err, ErrUnreadableFile))
}

func TestParseAmountOrZero(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"10,50", "10.5"},
		{"1.234,56", "1234.56"},
		{"10.50", "10.5"},
		{"-3,25", "-3.25"},
		{"", "0"},
		{"abc", "0"},
		{"  7,00  ", "7"},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, parseAmountOrZero(tc.in).String(), "input %q", tc.in)
	}
}
