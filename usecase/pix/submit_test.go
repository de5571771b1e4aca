package pix

import (
	"path/filepath"
	"testing"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
	"github.com/stretchr/testify/require"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
)

func newTestUsecase(t *testing.T) (PixUsecase, dao.DaoMethod) {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.AutoMigrate(&model.Driver{}, &model.PixKeyRecord{})

	d := dao.NewDaoMethod(db)
	return NewPixUsecase(d), d
}

func TestSubmitStaysPendingForUnknownCPF(t *testing.T) {
	u, _ := newTestUsecase(t)

	record, err := u.Submit(entity.PixSubmission{
		Name: "Maria", CPF: "123.456.789-01", Key: "maria@mail.com",
	})
	require.NoError(t, err)
	require.Equal(t, consts.PixStatusPending, record.Status)
	require.Empty(t, record.DriverID)
	require.Equal(t, "12345678901", record.CPF)
}

func TestSubmitAutoApprovesRegisteredDriver(t *testing.T) {
	u, d := newTestUsecase(t)

	require.NoError(t, d.CreateDriver(&model.Driver{
		DriverID: "D1", Name: "Maria", CPF: "12345678901", Status: consts.DriverStatusActive,
	}))

	record, err := u.Submit(entity.PixSubmission{
		Name: "Maria", CPF: "12345678901", Key: "maria@mail.com",
	})
	require.NoError(t, err)
	require.Equal(t, consts.PixStatusApproved, record.Status)
	require.Equal(t, "D1", record.DriverID)
}

func TestSubmitRejectsClaimedKey(t *testing.T) {
	u, _ := newTestUsecase(t)

	_, err := u.Submit(entity.PixSubmission{Name: "Maria", CPF: "11111111111", Key: "shared@mail.com"})
	require.NoError(t, err)

	_, err = u.Submit(entity.PixSubmission{Name: "Bruno", CPF: "22222222222", Key: "shared@mail.com"})
	require.ErrorIs(t, err, ErrKeyClaimed)

	// The same person can resubmit their own key.
	_, err = u.Submit(entity.PixSubmission{Name: "Maria", CPF: "11111111111", Key: "shared@mail.com"})
	require.NoError(t, err)
}

func TestSubmitValidation(t *testing.T) {
	u, _ := newTestUsecase(t)

	_, err := u.Submit(entity.PixSubmission{Name: "Maria", Key: "k"})
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = u.Submit(entity.PixSubmission{CPF: "123", Key: "k"})
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestApproveAndReject(t *testing.T) {
	u, _ := newTestUsecase(t)

	record, err := u.Submit(entity.PixSubmission{Name: "Maria", CPF: "11111111111", Key: "k@x.com"})
	require.NoError(t, err)

	approved, err := u.Approve(record.ID)
	require.NoError(t, err)
	require.Equal(t, consts.PixStatusApproved, approved.Status)

	rejected, err := u.Reject(record.ID)
	require.NoError(t, err)
	require.Equal(t, consts.PixStatusRejected, rejected.Status)

	pending, err := u.ListPending()
	require.NoError(t, err)
	require.Empty(t, pending)
}

func TestResolveKeyType(t *testing.T) {
	cases := []struct {
		declared string
		key      string
		want     string
	}{
		{"", "maria@mail.com", consts.PixKeyTypeEmail},
		{"", "12345678901", consts.PixKeyTypeCPF},
		{"", "+5511987654321", consts.PixKeyTypePhone},
		{"", "0123456789abcdef0123456789abcdef", consts.PixKeyTypeRandom},
		{consts.PixKeyTypeCPF, "whatever", consts.PixKeyTypeCPF},
		{consts.PixKeyTypeAuto, "maria@mail.com", consts.PixKeyTypeEmail},
		{"", "short", consts.PixKeyTypeAuto},
	}
	for _, tc := range cases {
		require.Equal(t, tc.want, resolveKeyType(tc.declared, tc.key), "key %q", tc.key)
	}
}
