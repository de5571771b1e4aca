package processing

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/google/uuid"
	"github.com/labstack/gommon/log"
)

// RunBatch wraps ProcessBatch with the bookkeeping the back office needs:
// one run at a time per file set, and a persisted summary for redisplay.
func (u *processingUsecase) RunBatch(title string, paths []string, opts entity.BatchOptions, operator string) (*model.ProcessingResult, *entity.BatchResult, error) {
	key := batchLockKey(paths)
	if !u.locker.TryAcquire(key) {
		return nil, nil, ErrBatchInFlight
	}
	defer u.locker.Release(key)

	result, err := u.ProcessBatch(paths, opts)
	if err != nil {
		return nil, nil, err
	}

	summary, err := json.Marshal(result)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to marshal batch result: %w", err)
	}

	entry := &model.ProcessingResult{
		BatchID:      uuid.NewString(),
		Title:        title,
		TotalFiles:   result.FilesAttempted,
		FilesOK:      result.FilesSucceeded,
		FilesFailed:  result.FilesFailed,
		TotalDrivers: result.TotalDrivers,
		GrandTotal:   result.GrandTotal.StringFixed(2),
		Result:       string(summary),
		CreateTime:   time.Now().Unix(),
		CreateBy:     operator,
	}
	if err := u.dao.CreateProcessingResult(entry); err != nil {
		return nil, nil, err
	}

	log.Infof("[Batch] Stored result %s (%s)", entry.BatchID, title)
	return entry, result, nil
}

func (u *processingUsecase) GetResult(batchID string) (model.ProcessingResult, error) {
	return u.dao.GetProcessingResultByBatchID(batchID)
}

func (u *processingUsecase) ListResults(limit int) ([]model.ProcessingResult, error) {
	return u.dao.ListProcessingResults(limit)
}

func (u *processingUsecase) DeleteResult(batchID string) error {
	return u.dao.DeleteProcessingResult(batchID)
}

// batchLockKey builds a stable signature for a file set so that two requests
// over the same files cannot run concurrently.
func batchLockKey(paths []string) string {
	names := make([]string, 0, len(paths))
	for _, p := range paths {
		names = append(names, filepath.Clean(p))
	}
	sort.Strings(names)
	return "batch:" + strings.Join(names, "|")
}
