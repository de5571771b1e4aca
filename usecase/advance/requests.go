package advance

import (
	"strings"
	"time"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/model"
	"github.com/abjp/driver-payroll/usecase/driver"

	"github.com/labstack/gommon/log"
	"github.com/shopspring/decimal"
)

func (u *advanceUsecase) FormOpen() (bool, error) {
	cfg, err := u.dao.GetFormConfig()
	if err != nil {
		return false, err
	}
	return cfg.IsOpen == 1, nil
}

// Submit stores one public advance request. Rejected while the form is
// closed; the cpf is checked against the driver registry so the admin list
// can flag unknown requesters.
func (u *advanceUsecase) Submit(sub entity.AdvanceSubmission) (*model.AdvanceRequest, error) {
	open, err := u.FormOpen()
	if err != nil {
		return nil, err
	}
	if !open {
		return nil, ErrFormClosed
	}

	cpf := driver.DigitsOnly(sub.CPF)
	if sub.Name == "" || cpf == "" || sub.DeclaredAmount == "" {
		return nil, ErrMissingFields
	}

	amount, err := decimal.NewFromString(normalizeAmount(sub.DeclaredAmount))
	if err != nil || amount.IsNegative() {
		return nil, ErrInvalidAmount
	}

	request := model.AdvanceRequest{
		Email:          strings.TrimSpace(sub.Email),
		Name:           strings.TrimSpace(sub.Name),
		CPF:            cpf,
		Location:       strings.TrimSpace(sub.Praca),
		DeclaredAmount: amount.StringFixed(2),
		Agrees:         boolToAnswer(sub.Agrees),
		SentAt:         time.Now().Unix(),
	}

	if _, found, err := u.dao.FindDriverByCPF(cpf); err != nil {
		return nil, err
	} else if found {
		request.CPFMatches = 1
	}

	if err := u.dao.CreateAdvanceRequest(&request); err != nil {
		return nil, err
	}
	log.Infof("[Advance] Request stored for cpf ***%s", lastDigits(cpf, 3))
	return &request, nil
}

// ListRequests returns submissions, optionally only those sent on the given
// day (YYYY-MM-DD).
func (u *advanceUsecase) ListRequests(date string) ([]model.AdvanceRequest, error) {
	requests, err := u.dao.ListAdvanceRequests()
	if err != nil {
		return nil, err
	}
	if date == "" {
		return requests, nil
	}

	filtered := make([]model.AdvanceRequest, 0, len(requests))
	for _, req := range requests {
		if time.Unix(req.SentAt, 0).UTC().Format(consts.LayoutDate) == date {
			filtered = append(filtered, req)
		}
	}
	return filtered, nil
}

// normalizeAmount accepts both "120,50" and "120.50".
func normalizeAmount(s string) string {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}
	return s
}

func boolToAnswer(b bool) string {
	if b {
		return "sim"
	}
	return "nao"
}

func lastDigits(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[len(s)-n:]
}
