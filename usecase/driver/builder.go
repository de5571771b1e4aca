package driver

import (
	"errors"

	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
)

var (
	ErrMissingFields = errors.New("id, name and pix key are required")
	ErrAlreadyExists = errors.New("driver already registered")
)

// Details is one driver plus the newest payment key on file.
type Details struct {
	model.Driver
	PixKey     string `json:"chave_pix"`
	PixKeyType string `json:"tipo_de_chave_pix"`
}

type DriverUsecase interface {
	ListDrivers() ([]model.Driver, error)
	GetDriverDetails(driverID string) (*Details, error)
	CreateDriver(req entity.DriverRequest) (*model.Driver, error)
	UpdateDriver(driverID string, req entity.DriverRequest) (*model.Driver, error)
	DeleteDriver(driverID string) error
}

type driverUsecase struct {
	dao dao.DaoMethod
}

func NewDriverUsecase(d dao.DaoMethod) DriverUsecase {
	return &driverUsecase{dao: d}
}
