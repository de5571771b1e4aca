package driver

import (
	"strings"
	"time"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/labstack/gommon/log"
)

func (u *driverUsecase) ListDrivers() ([]model.Driver, error) {
	drivers, err := u.dao.ListDrivers()
	if err != nil {
		return nil, err
	}
	for i := range drivers {
		drivers[i].Name = FormatName(drivers[i].Name)
	}
	return drivers, nil
}

func (u *driverUsecase) GetDriverDetails(driverID string) (*Details, error) {
	driver, err := u.dao.GetDriverByID(driverID)
	if err != nil {
		return nil, err
	}

	details := &Details{Driver: driver}
	details.Name = FormatName(details.Name)

	if record, found, err := u.dao.GetLatestPixForDriver(driverID); err != nil {
		return nil, err
	} else if found {
		details.PixKey = record.Key
		details.PixKeyType = record.KeyType
	}
	return details, nil
}

func (u *driverUsecase) CreateDriver(req entity.DriverRequest) (*model.Driver, error) {
	if req.DriverID == "" || req.Name == "" || req.PixKey == "" {
		return nil, ErrMissingFields
	}
	if _, err := u.dao.GetDriverByID(req.DriverID); err == nil {
		return nil, ErrAlreadyExists
	}

	driver := driverFromRequest(req)
	driver.DriverID = req.DriverID
	if driver.Issuer == "" {
		driver.Issuer = consts.DefaultIssuer
	}
	if driver.Status == "" {
		driver.Status = consts.DriverStatusActive
	}

	if err := u.dao.CreateDriver(&driver); err != nil {
		return nil, err
	}

	u.recordPixKey(driver, req)
	return &driver, nil
}

func (u *driverUsecase) UpdateDriver(driverID string, req entity.DriverRequest) (*model.Driver, error) {
	if req.Name == "" || req.PixKey == "" {
		return nil, ErrMissingFields
	}

	current, err := u.dao.GetDriverByID(driverID)
	if err != nil {
		return nil, err
	}

	driver := driverFromRequest(req)
	driver.DriverID = current.DriverID
	if driver.Issuer == "" {
		driver.Issuer = current.Issuer
	}
	if driver.Status == "" {
		driver.Status = current.Status
	}

	if err := u.dao.UpdateDriver(driver); err != nil {
		return nil, err
	}

	u.recordPixKey(driver, req)
	return &driver, nil
}

func (u *driverUsecase) DeleteDriver(driverID string) error {
	if _, err := u.dao.GetDriverByID(driverID); err != nil {
		return err
	}
	return u.dao.DeleteDriver(driverID)
}

// recordPixKey stores the key given on the registration form as an approved
// submission and links any pending public submissions that match by cpf or
// key. Failures here never fail the driver write.
func (u *driverUsecase) recordPixKey(driver model.Driver, req entity.DriverRequest) {
	keyType := req.PixKeyType
	if keyType == "" {
		keyType = consts.DefaultKeyType
	}

	record := model.PixKeyRecord{
		DriverID:     driver.DriverID,
		CPF:          driver.CPF,
		Key:          req.PixKey,
		KeyType:      keyType,
		RegisteredAt: time.Now().Unix(),
		Status:       consts.PixStatusApproved,
		Name:         driver.Name,
		Location:     driver.Location,
		CNPJ:         driver.CNPJ,
		Email:        driver.Email,
	}
	if err := u.dao.CreatePixKeyRecord(&record); err != nil {
		log.Errorf("[Driver] Failed to record pix key for %s: %v", driver.DriverID, err)
	}

	if updated, err := u.dao.ApprovePendingPixRecords(driver.DriverID, driver.CPF, req.PixKey); err != nil {
		log.Errorf("[Driver] Failed to approve pending pix records for %s: %v", driver.DriverID, err)
	} else if updated > 0 {
		log.Infof("[Driver] Approved %d pending pix record(s) for %s", updated, driver.DriverID)
	}
}

func driverFromRequest(req entity.DriverRequest) model.Driver {
	return model.Driver{
		Name:        strings.TrimSpace(req.Name),
		Email:       strings.TrimSpace(req.Email),
		CPF:         DigitsOnly(req.CPF),
		CNPJ:        DigitsOnly(req.CNPJ),
		Location:    strings.TrimSpace(req.Location),
		SubLocation: strings.TrimSpace(req.SubLocation),
		Issuer:      strings.TrimSpace(req.Issuer),
		Status:      strings.TrimSpace(req.Status),
	}
}

// FormatName title-cases a stored name for display.
func FormatName(name string) string {
	fields := strings.Fields(strings.ToLower(name))
	for i, f := range fields {
		r := []rune(f)
		if len(r) > 0 {
			fields[i] = strings.ToUpper(string(r[0])) + string(r[1:])
		}
	}
	return strings.Join(fields, " ")
}

// DigitsOnly strips formatting from document numbers.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
