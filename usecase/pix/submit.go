package pix

import (
	"strings"
	"time"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/model"
	"github.com/abjp/driver-payroll/usecase/driver"

	"github.com/labstack/gommon/log"
)

// Submit records one public payment-key submission. A key already held by a
// different person is rejected; a submission whose cpf matches a registered
// driver is linked and approved on the spot, everything else stays pending
// for manual review.
func (u *pixUsecase) Submit(sub entity.PixSubmission) (*model.PixKeyRecord, error) {
	key := strings.TrimSpace(sub.Key)
	cpf := driver.DigitsOnly(sub.CPF)
	if sub.Name == "" || cpf == "" || key == "" {
		return nil, ErrMissingFields
	}

	if owner, found, err := u.dao.FindPixKeyOwner(key); err != nil {
		return nil, err
	} else if found && owner.CPF != "" && owner.CPF != cpf {
		return nil, ErrKeyClaimed
	}

	record := model.PixKeyRecord{
		CPF:          cpf,
		Key:          key,
		KeyType:      resolveKeyType(sub.KeyType, key),
		RegisteredAt: time.Now().Unix(),
		Status:       consts.PixStatusPending,
		Name:         strings.TrimSpace(sub.Name),
		Rating:       sub.Rating,
		Location:     strings.TrimSpace(sub.Praca),
		CNPJ:         driver.DigitsOnly(sub.CNPJ),
		Email:        strings.TrimSpace(sub.Email),
	}

	if match, found, err := u.dao.FindDriverByCPF(cpf); err != nil {
		return nil, err
	} else if found {
		record.DriverID = match.DriverID
		record.Status = consts.PixStatusApproved
		log.Infof("[Pix] Submission matched to registered driver %s", match.DriverID)
	}

	if err := u.dao.CreatePixKeyRecord(&record); err != nil {
		return nil, err
	}
	return &record, nil
}

func (u *pixUsecase) ListPending() ([]model.PixKeyRecord, error) {
	return u.dao.ListPixKeyRecordsByStatus(consts.PixStatusPending)
}

func (u *pixUsecase) Approve(id int64) (*model.PixKeyRecord, error) {
	return u.setStatus(id, consts.PixStatusApproved)
}

func (u *pixUsecase) Reject(id int64) (*model.PixKeyRecord, error) {
	return u.setStatus(id, consts.PixStatusRejected)
}

func (u *pixUsecase) setStatus(id int64, status string) (*model.PixKeyRecord, error) {
	record, err := u.dao.GetPixKeyRecordByID(id)
	if err != nil {
		return nil, err
	}
	record.Status = status
	if err := u.dao.UpdatePixKeyRecord(record); err != nil {
		return nil, err
	}
	return &record, nil
}

// resolveKeyType keeps an explicit type and otherwise infers one from the
// key's shape, mirroring the auto-detect behavior of the public form.
func resolveKeyType(declared, key string) string {
	if declared != "" && declared != consts.PixKeyTypeAuto {
		return declared
	}
	digits := driver.DigitsOnly(key)
	switch {
	case strings.Contains(key, "@"):
		return consts.PixKeyTypeEmail
	case len(digits) == 11 && digits == key:
		return consts.PixKeyTypeCPF
	case strings.HasPrefix(key, "+") || (len(digits) >= 10 && len(digits) <= 13 && digits == strings.TrimPrefix(key, "+")):
		return consts.PixKeyTypePhone
	case len(key) >= 32:
		return consts.PixKeyTypeRandom
	default:
		return consts.PixKeyTypeAuto
	}
}
