package processing

import (
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
	"github.com/abjp/driver-payroll/infra/locker"

	"github.com/shopspring/decimal"
)

// DriverDirectory is the external system of record for registered drivers.
// The orchestrator consults it only when OnlyRegistered is requested (and for
// the informational registered-driver count).
type DriverDirectory interface {
	ActiveDriverIDs() ([]string, error)
}

type ProcessingUsecase interface {
	// ProcessBatch runs the full pipeline over a file set: ingest every file,
	// merge, filter, consolidate. Pure compute, nothing persisted.
	ProcessBatch(paths []string, opts entity.BatchOptions) (*entity.BatchResult, error)

	// RunBatch is ProcessBatch plus bookkeeping: guards against a concurrent
	// run over the same file set and persists the summary for redisplay.
	RunBatch(title string, paths []string, opts entity.BatchOptions, operator string) (*model.ProcessingResult, *entity.BatchResult, error)

	GetResult(batchID string) (model.ProcessingResult, error)
	ListResults(limit int) ([]model.ProcessingResult, error)
	DeleteResult(batchID string) error
}

type processingUsecase struct {
	dao       dao.DaoMethod
	directory DriverDirectory
	locker    *locker.Locker

	advancePercent decimal.Decimal
	flatFee        decimal.Decimal
}

// Params carries the business constants of the advance formula.
type Params struct {
	AdvancePercent decimal.Decimal
	FlatFee        decimal.Decimal
}

// DefaultParams returns the reference business rule: 60% of the net total
// minus a 0.35 flat fee.
func DefaultParams() Params {
	return Params{
		AdvancePercent: decimal.NewFromFloat(0.60),
		FlatFee:        decimal.NewFromFloat(0.35),
	}
}

func NewProcessingUsecase(d dao.DaoMethod, directory DriverDirectory, lk *locker.Locker, params Params) ProcessingUsecase {
	return &processingUsecase{
		dao:            d,
		directory:      directory,
		locker:         lk,
		advancePercent: params.AdvancePercent,
		flatFee:        params.FlatFee,
	}
}
