package advance

import (
	"errors"
	"time"

	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
)

var (
	ErrFormClosed    = errors.New("advance form is closed")
	ErrMissingFields = errors.New("name, cpf and amount are required")
	ErrInvalidAmount = errors.New("declared amount is not a valid value")
)

type AdvanceUsecase interface {
	// Public form
	FormOpen() (bool, error)
	Submit(sub entity.AdvanceSubmission) (*model.AdvanceRequest, error)

	// Admin
	ListRequests(date string) ([]model.AdvanceRequest, error)
	OpenForm(operator string) error
	CloseForm(operator string) error
	Schedule(req entity.FormScheduleRequest) error
	ConfigureAuto(req entity.FormAutoRequest) error
	GetConfig() (model.FormConfig, error)
	ListLogs(limit int) ([]model.FormLog, error)

	// EvaluateWindow is the scheduler tick: one-shot schedules take priority
	// over the recurring window and are cleared once executed.
	EvaluateWindow(now time.Time) error
}

type advanceUsecase struct {
	dao dao.DaoMethod
}

func NewAdvanceUsecase(d dao.DaoMethod) AdvanceUsecase {
	return &advanceUsecase{dao: d}
}
