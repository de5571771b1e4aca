package report

import (
	"fmt"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"github.com/xuri/excelize/v2"

	"github.com/abjp/driver-payroll/entity"
)

const (
	sheetConsolidated = "Consolidado"
	sheetByLocation   = "Resumo por Praca"
	sheetPayment      = "Para Pagamento"

	moneyFormat = `"R$" #,##0.00`
)

var consolidatedHeaders = []string{
	"ID", "Nome", "Corridas", "Gorjetas", "Promocoes", "Hora Online",
	"Rotas com Ocorrencia", "Tempo de Espera", "Outros", "Total",
	"Adiantamento 60%", "Adiantamento Final", "Pracas", "Subpracas",
	"Periodos", "Descricoes Outros",
}

// BuildWorkbook renders one finished batch into the three-sheet payroll
// workbook used by the finance team.
func BuildWorkbook(result entity.BatchResult) (*excelize.File, error) {
	f := excelize.NewFile()

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Color: "FFFFFF"},
		Fill: excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"4472C4"}},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to build header style: %w", err)
	}
	moneyStyle, err := f.NewStyle(&excelize.Style{CustomNumFmt: strPtr(moneyFormat)})
	if err != nil {
		return nil, fmt.Errorf("failed to build money style: %w", err)
	}

	if err := writeConsolidated(f, result, headerStyle, moneyStyle); err != nil {
		return nil, err
	}
	if err := writeByLocation(f, result, headerStyle, moneyStyle); err != nil {
		return nil, err
	}
	if err := writePayment(f, result, headerStyle, moneyStyle); err != nil {
		return nil, err
	}

	f.SetActiveSheet(0)
	return f, nil
}

func writeConsolidated(f *excelize.File, result entity.BatchResult, headerStyle, moneyStyle int) error {
	// The default sheet is renamed so the workbook never carries "Sheet1".
	if err := f.SetSheetName("Sheet1", sheetConsolidated); err != nil {
		return fmt.Errorf("failed to rename sheet: %w", err)
	}

	if err := writeHeader(f, sheetConsolidated, consolidatedHeaders, headerStyle); err != nil {
		return err
	}

	for i, c := range result.Consolidations {
		row := i + 2
		values := []interface{}{
			c.DriverID, c.DriverName,
			money(c.Rides), money(c.Tips), money(c.Promotions), money(c.OnlineTime),
			money(c.FlaggedRoutes), money(c.WaitTime), money(c.Other), money(c.Total),
			money(c.Advance60Pct), money(c.FinalAdvance),
			c.Locations, c.SubLocations,
			joinPeriods(c.WorkingPeriods), c.OtherDescriptions,
		}
		if err := writeRow(f, sheetConsolidated, row, values); err != nil {
			return err
		}
	}

	if last := len(result.Consolidations) + 1; last > 1 {
		if err := f.SetCellStyle(sheetConsolidated, "C2", fmt.Sprintf("L%d", last), moneyStyle); err != nil {
			return fmt.Errorf("failed to style amounts: %w", err)
		}
	}
	if err := f.SetColWidth(sheetConsolidated, "A", "B", 24); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	return f.SetColWidth(sheetConsolidated, "M", "P", 32)
}

func writeByLocation(f *excelize.File, result entity.BatchResult, headerStyle, moneyStyle int) error {
	if _, err := f.NewSheet(sheetByLocation); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheetByLocation, err)
	}

	type bucket struct {
		drivers int
		total   decimal.Decimal
		advance decimal.Decimal
	}
	buckets := make(map[string]*bucket)
	for _, c := range result.Consolidations {
		location := c.Locations
		if location == "" {
			location = "(sem praca)"
		}
		b, ok := buckets[location]
		if !ok {
			b = &bucket{}
			buckets[location] = b
		}
		b.drivers++
		b.total = b.total.Add(c.Total)
		b.advance = b.advance.Add(c.FinalAdvance)
	}

	locations := make([]string, 0, len(buckets))
	for location := range buckets {
		locations = append(locations, location)
	}
	sort.Strings(locations)

	headers := []string{"Praca", "Entregadores", "Total", "Adiantamento Final"}
	if err := writeHeader(f, sheetByLocation, headers, headerStyle); err != nil {
		return err
	}
	for i, location := range locations {
		b := buckets[location]
		values := []interface{}{location, b.drivers, money(b.total), money(b.advance)}
		if err := writeRow(f, sheetByLocation, i+2, values); err != nil {
			return err
		}
	}

	if last := len(locations) + 1; last > 1 {
		if err := f.SetCellStyle(sheetByLocation, "C2", fmt.Sprintf("D%d", last), moneyStyle); err != nil {
			return fmt.Errorf("failed to style amounts: %w", err)
		}
	}
	return f.SetColWidth(sheetByLocation, "A", "A", 28)
}

func writePayment(f *excelize.File, result entity.BatchResult, headerStyle, moneyStyle int) error {
	if _, err := f.NewSheet(sheetPayment); err != nil {
		return fmt.Errorf("failed to add sheet %s: %w", sheetPayment, err)
	}

	headers := []string{"Nome", "ID", "Adiantamento Final", "Subpracas"}
	if err := writeHeader(f, sheetPayment, headers, headerStyle); err != nil {
		return err
	}
	for i, c := range result.Consolidations {
		values := []interface{}{c.DriverName, c.DriverID, money(c.FinalAdvance), c.SubLocations}
		if err := writeRow(f, sheetPayment, i+2, values); err != nil {
			return err
		}
	}

	if last := len(result.Consolidations) + 1; last > 1 {
		if err := f.SetCellStyle(sheetPayment, "C2", fmt.Sprintf("C%d", last), moneyStyle); err != nil {
			return fmt.Errorf("failed to style amounts: %w", err)
		}
	}
	if err := f.SetColWidth(sheetPayment, "A", "B", 24); err != nil {
		return fmt.Errorf("failed to size columns: %w", err)
	}
	return f.SetColWidth(sheetPayment, "D", "D", 32)
}

func writeHeader(f *excelize.File, sheet string, headers []string, style int) error {
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return fmt.Errorf("failed to write header %q: %w", h, err)
		}
	}
	end, err := excelize.CoordinatesToCellName(len(headers), 1)
	if err != nil {
		return fmt.Errorf("failed to address header range: %w", err)
	}
	if err := f.SetCellStyle(sheet, "A1", end, style); err != nil {
		return fmt.Errorf("failed to style header: %w", err)
	}
	return nil
}

func writeRow(f *excelize.File, sheet string, row int, values []interface{}) error {
	for i, v := range values {
		cell, err := excelize.CoordinatesToCellName(i+1, row)
		if err != nil {
			return fmt.Errorf("failed to address cell: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return fmt.Errorf("failed to write cell %s: %w", cell, err)
		}
	}
	return nil
}

func money(d decimal.Decimal) float64 {
	v, _ := d.Float64()
	return v
}

func joinPeriods(periods []string) string {
	return strings.Join(periods, ", ")
}

func strPtr(s string) *string {
	return &s
}
