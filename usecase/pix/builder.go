package pix

import (
	"errors"

	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
)

var (
	ErrMissingFields = errors.New("name, cpf and pix key are required")
	ErrKeyClaimed    = errors.New("pix key already registered by another person")
)

type PixUsecase interface {
	Submit(sub entity.PixSubmission) (*model.PixKeyRecord, error)
	ListPending() ([]model.PixKeyRecord, error)
	Approve(id int64) (*model.PixKeyRecord, error)
	Reject(id int64) (*model.PixKeyRecord, error)
}

type pixUsecase struct {
	dao dao.DaoMethod
}

func NewPixUsecase(d dao.DaoMethod) PixUsecase {
	return &pixUsecase{dao: d}
}
