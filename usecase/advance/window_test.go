package advance

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/jinzhu/gorm"
	_ "github.com/jinzhu/gorm/dialects/sqlite" //sqlite
	"github.com/stretchr/testify/require"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/infra/db/dao"
	"github.com/abjp/driver-payroll/infra/db/model"
)

// 2026-08-31 is a Monday (weekday 1 in the Sunday=0 encoding).
var monday = time.Date(2026, 8, 31, 10, 0, 0, 0, time.UTC)

func TestDecideWindowScheduledOpenWins(t *testing.T) {
	cfg := model.FormConfig{
		ScheduledOpen: "2026-08-31 09:00:00",
		AutoMode:      1,
		AutoOpenTime:  "14:00",
		AutoCloseTime: "18:00",
		DaysEnabled:   "1",
	}
	d := decideWindow(cfg, monday)
	require.NotNil(t, d.setOpen)
	require.True(t, *d.setOpen)
	require.True(t, d.clearScheduledOpen)
	require.Equal(t, consts.FormActionOpenAuto, d.action)
}

func TestDecideWindowScheduledClose(t *testing.T) {
	cfg := model.FormConfig{
		IsOpen:         1,
		ScheduledClose: "2026-08-31 09:30:00",
	}
	d := decideWindow(cfg, monday)
	require.NotNil(t, d.setOpen)
	require.False(t, *d.setOpen)
	require.True(t, d.clearScheduledClose)
}

func TestDecideWindowFutureScheduleSuspendsAuto(t *testing.T) {
	// A pending one-shot keeps the recurring window from acting.
	cfg := model.FormConfig{
		ScheduledOpen: "2026-08-31 20:00:00",
		AutoMode:      1,
		AutoOpenTime:  "09:00",
		AutoCloseTime: "18:00",
		DaysEnabled:   "1",
	}
	d := decideWindow(cfg, monday)
	require.Nil(t, d.setOpen)
	require.False(t, d.clearScheduledOpen)
}

func TestDecideWindowAutoInsideRange(t *testing.T) {
	cfg := model.FormConfig{
		AutoMode:      1,
		AutoOpenTime:  "09:00",
		AutoCloseTime: "18:00",
		DaysEnabled:   "1,2,3",
	}
	d := decideWindow(cfg, monday)
	require.NotNil(t, d.setOpen)
	require.True(t, *d.setOpen)
}

func TestDecideWindowAutoOutsideRange(t *testing.T) {
	cfg := model.FormConfig{
		IsOpen:        1,
		AutoMode:      1,
		AutoOpenTime:  "14:00",
		AutoCloseTime: "18:00",
		DaysEnabled:   "1",
	}
	d := decideWindow(cfg, monday)
	require.NotNil(t, d.setOpen)
	require.False(t, *d.setOpen)
}

func TestDecideWindowDayNotEnabled(t *testing.T) {
	// Sunday=0 encoding: Monday is 1, so a Sunday-only window stays closed.
	cfg := model.FormConfig{
		IsOpen:        1,
		AutoMode:      1,
		AutoOpenTime:  "09:00",
		AutoCloseTime: "18:00",
		DaysEnabled:   "0",
	}
	d := decideWindow(cfg, monday)
	require.NotNil(t, d.setOpen)
	require.False(t, *d.setOpen)

	sunday := time.Date(2026, 8, 30, 10, 0, 0, 0, time.UTC)
	d = decideWindow(cfg, sunday)
	require.NotNil(t, d.setOpen)
	require.True(t, *d.setOpen)
}

func TestDecideWindowAutoDisabled(t *testing.T) {
	d := decideWindow(model.FormConfig{IsOpen: 1}, monday)
	require.Nil(t, d.setOpen)
}

func TestDecideWindowBoundariesInclusive(t *testing.T) {
	cfg := model.FormConfig{
		AutoMode:      1,
		AutoOpenTime:  "10:00",
		AutoCloseTime: "10:00",
		DaysEnabled:   "1",
	}
	d := decideWindow(cfg, monday) // exactly 10:00
	require.NotNil(t, d.setOpen)
	require.True(t, *d.setOpen)
}

func openTestDB(t *testing.T) dao.DaoMethod {
	t.Helper()
	db, err := gorm.Open("sqlite3", filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	db.AutoMigrate(&model.Driver{}, &model.AdvanceRequest{}, &model.FormConfig{}, &model.FormLog{})
	return dao.NewDaoMethod(db)
}

func TestEvaluateWindowOneShotFiresOnce(t *testing.T) {
	d := openTestDB(t)
	u := NewAdvanceUsecase(d)

	cfg, err := d.GetFormConfig()
	require.NoError(t, err)
	cfg.ScheduledOpen = "2026-08-31 09:00:00"
	require.NoError(t, d.SaveFormConfig(cfg))

	require.NoError(t, u.EvaluateWindow(monday))

	cfg, err = d.GetFormConfig()
	require.NoError(t, err)
	require.Equal(t, 1, cfg.IsOpen)
	require.Empty(t, cfg.ScheduledOpen)

	logs, err := d.ListFormLogs(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
	require.Equal(t, consts.FormActionOpenAuto, logs[0].Action)

	// The cleared schedule must not fire again.
	require.NoError(t, u.EvaluateWindow(monday.Add(time.Minute)))
	logs, err = d.ListFormLogs(10)
	require.NoError(t, err)
	require.Len(t, logs, 1)
}

func TestEvaluateWindowNoChangeNoLog(t *testing.T) {
	d := openTestDB(t)
	u := NewAdvanceUsecase(d)

	cfg, err := d.GetFormConfig()
	require.NoError(t, err)
	cfg.AutoMode = 1
	cfg.AutoOpenTime = "09:00"
	cfg.AutoCloseTime = "18:00"
	cfg.DaysEnabled = "1"
	cfg.IsOpen = 1
	require.NoError(t, d.SaveFormConfig(cfg))

	require.NoError(t, u.EvaluateWindow(monday))

	logs, err := d.ListFormLogs(10)
	require.NoError(t, err)
	require.Empty(t, logs)
}
