package processing

import (
	"path/filepath"
	"time"

	"github.com/abjp/driver-payroll/entity"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

// ProcessBatch ingests every file, merges the surviving row sets, applies the
// driver and date filters and consolidates once over the union. A failing
// file never aborts the batch; its error is recorded under the base filename.
func (u *processingUsecase) ProcessBatch(paths []string, opts entity.BatchOptions) (*entity.BatchResult, error) {
	log.Infof("[Batch] Processing %d file(s)", len(paths))

	result := &entity.BatchResult{
		FileErrors:     make(map[string]string),
		FilesAttempted: len(paths),
		GrandTotal:     decimal.Zero,
		ProcessedAt:    time.Now().UTC(),
	}

	var merged []entity.RawTransactionRow
	for _, path := range paths {
		name := filepath.Base(path)
		rows, err := ingestFile(path)
		if err != nil {
			log.Errorf("[Batch] %s skipped: %v", name, err)
			result.FileErrors[name] = err.Error()
			continue
		}
		result.FilesSucceeded++

		// Per-file pre-filter. The consolidator repeats the date check after
		// the merge as the authoritative pass; this one keeps partially dated
		// file sets from inflating the merged frame.
		if opts.ReferenceDate != nil {
			rows = filterByReferenceDate(rows, *opts.ReferenceDate)
		}
		merged = append(merged, rows...)
	}
	result.FilesFailed = len(result.FileErrors)

	registered, err := u.directory.ActiveDriverIDs()
	if err != nil {
		return nil, err
	}
	result.RegisteredDrivers = len(registered)

	switch {
	case len(opts.DriverIDs) > 0:
		merged = filterByDriverSet(merged, opts.DriverIDs)
		log.Infof("[Batch] %d row(s) after allowlist filter", len(merged))
	case opts.OnlyRegistered:
		if len(registered) == 0 {
			return nil, ErrNoRegisteredDrivers
		}
		merged = filterByDriverSet(merged, registered)
		log.Infof("[Batch] %d row(s) after registered-driver filter", len(merged))
	}

	result.Rows = merged
	result.Consolidations = consolidate(merged, opts.ReferenceDate, u.advancePercent, u.flatFee)
	result.TotalDrivers = len(result.Consolidations)
	result.DriversWithData = len(result.Consolidations)
	for _, c := range result.Consolidations {
		result.GrandTotal = result.GrandTotal.Add(c.Total)
	}
	result.GrandTotal = result.GrandTotal.Round(2)

	log.Infof("[Batch] Done: %d driver(s), grand total %s, %d file error(s)",
		result.TotalDrivers, result.GrandTotal.StringFixed(2), result.FilesFailed)
	return result, nil
}

func filterByDriverSet(rows []entity.RawTransactionRow, ids []string) []entity.RawTransactionRow {
	allowed := make(map[string]bool, len(ids))
	for _, id := range ids {
		allowed[id] = true
	}

	kept := make([]entity.RawTransactionRow, 0, len(rows))
	for _, row := range rows {
		if allowed[row.DriverID] {
			kept = append(kept, row)
		}
	}
	return kept
}
