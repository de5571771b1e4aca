package advance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
)

func openTestUsecase(t *testing.T) (AdvanceUsecase, dao.DaoMethod) {
	d := openTestDB(t)
	return NewAdvanceUsecase(d), d
}

func openForm(t *testing.T, u AdvanceUsecase) {
	t.Helper()
	require.NoError(t, u.OpenForm("tester"))
}

func TestSubmitRejectedWhileClosed(t *testing.T) {
	u, _ := openTestUsecase(t)

	_, err := u.Submit(entity.AdvanceSubmission{
		Name: "Maria", CPF: "12345678901", DeclaredAmount: "100",
	})
	require.ErrorIs(t, err, ErrFormClosed)
}

func TestSubmitStoresRequest(t *testing.T) {
	u, _ := openTestUsecase(t)
	openForm(t, u)

	stored, err := u.Submit(entity.AdvanceSubmission{
		Name:           "Maria Silva",
		CPF:            "123.456.789-01",
		Praca:          "Sao Paulo",
		DeclaredAmount: "1.234,56",
		Agrees:         true,
	})
	require.NoError(t, err)
	require.Equal(t, "12345678901", stored.CPF)
	require.Equal(t, "1234.56", stored.DeclaredAmount)
	require.Equal(t, "sim", stored.Agrees)
	require.Equal(t, 0, stored.CPFMatches)
}

func TestSubmitFlagsRegisteredCPF(t *testing.T) {
	u, d := openTestUsecase(t)
	openForm(t, u)

	require.NoError(t, d.CreateDriver(&model.Driver{
		DriverID: "D1", Name: "Maria", CPF: "12345678901", Status: consts.DriverStatusActive,
	}))

	stored, err := u.Submit(entity.AdvanceSubmission{
		Name: "Maria", CPF: "12345678901", DeclaredAmount: "50,00",
	})
	require.NoError(t, err)
	require.Equal(t, 1, stored.CPFMatches)
}

func TestSubmitValidation(t *testing.T) {
	u, _ := openTestUsecase(t)
	openForm(t, u)

	_, err := u.Submit(entity.AdvanceSubmission{CPF: "123", DeclaredAmount: "10"})
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = u.Submit(entity.AdvanceSubmission{Name: "Maria", CPF: "123", DeclaredAmount: "abc"})
	require.ErrorIs(t, err, ErrInvalidAmount)

	_, err = u.Submit(entity.AdvanceSubmission{Name: "Maria", CPF: "123", DeclaredAmount: "-5"})
	require.ErrorIs(t, err, ErrInvalidAmount)
}

func TestListRequestsDateFilter(t *testing.T) {
	u, _ := openTestUsecase(t)
	openForm(t, u)

	_, err := u.Submit(entity.AdvanceSubmission{
		Name: "Maria", CPF: "11111111111", DeclaredAmount: "10",
	})
	require.NoError(t, err)

	today := time.Now().UTC().Format(consts.LayoutDate)
	requests, err := u.ListRequests(today)
	require.NoError(t, err)
	require.Len(t, requests, 1)

	requests, err = u.ListRequests("1999-01-01")
	require.NoError(t, err)
	require.Empty(t, requests)

	requests, err = u.ListRequests("")
	require.NoError(t, err)
	require.Len(t, requests, 1)
}

func TestOpenCloseFormLogsActions(t *testing.T) {
	u, _ := openTestUsecase(t)

	require.NoError(t, u.OpenForm("ana"))
	open, err := u.FormOpen()
	require.NoError(t, err)
	require.True(t, open)

	require.NoError(t, u.CloseForm("ana"))
	open, err = u.FormOpen()
	require.NoError(t, err)
	require.False(t, open)

	logs, err := u.ListLogs(10)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, consts.FormActionCloseManual, logs[0].Action)
	require.Equal(t, consts.FormActionOpenManual, logs[1].Action)
}

func TestScheduleValidation(t *testing.T) {
	u, _ := openTestUsecase(t)

	err := u.Schedule(entity.FormScheduleRequest{ScheduledOpen: "not-a-date", Operator: "ana"})
	require.Error(t, err)

	require.NoError(t, u.Schedule(entity.FormScheduleRequest{
		ScheduledOpen: "2026-09-02 08:00:00", Operator: "ana",
	}))

	cfg, err := u.GetConfig()
	require.NoError(t, err)
	require.Equal(t, "2026-09-02 08:00:00", cfg.ScheduledOpen)
}

func TestConfigureAutoValidation(t *testing.T) {
	u, _ := openTestUsecase(t)

	err := u.ConfigureAuto(entity.FormAutoRequest{
		Enabled: true, OpenTime: "25:99", CloseTime: "18:00", DaysEnabled: "1", Operator: "ana",
	})
	require.Error(t, err)

	err = u.ConfigureAuto(entity.FormAutoRequest{
		Enabled: true, OpenTime: "09:00", CloseTime: "18:00", DaysEnabled: "", Operator: "ana",
	})
	require.Error(t, err)

	require.NoError(t, u.ConfigureAuto(entity.FormAutoRequest{
		Enabled: true, OpenTime: "09:00", CloseTime: "18:00", DaysEnabled: "1,2,3,4,5", Operator: "ana",
	}))

	cfg, err := u.GetConfig()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.AutoMode)
	require.Equal(t, "1,2,3,4,5", cfg.DaysEnabled)

	require.NoError(t, u.ConfigureAuto(entity.FormAutoRequest{Enabled: false, Operator: "ana"}))
	cfg, err = u.GetConfig()
	require.NoError(t, err)
	require.Equal(t, 0, cfg.AutoMode)
}
