package backup

import (
	"time"

	"github.com/abjp/driver-payroll/infra/db/dao"
)

type BackupUsecase interface {
	// RunDailyBackup snapshots drivers, advance requests and pix history
	// once per day, after the configured hour. It reports whether a
	// snapshot was taken.
	RunDailyBackup(now time.Time) (bool, error)
}

type backupUsecase struct {
	dao  dao.DaoMethod
	hour int
}

func NewBackupUsecase(d dao.DaoMethod, hour int) BackupUsecase {
	return &backupUsecase{dao: d, hour: hour}
}
