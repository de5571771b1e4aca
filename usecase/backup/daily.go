package backup

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/labstack/gommon/log"
)

func (u *backupUsecase) RunDailyBackup(now time.Time) (bool, error) {
	if now.Hour() < u.hour {
		return false, nil
	}

	today := now.Format(consts.LayoutDate)
	last, err := u.dao.LastBackupDate()
	if err != nil {
		return false, err
	}
	if last == today {
		return false, nil
	}

	drivers, err := u.dao.ListDrivers()
	if err != nil {
		return false, err
	}
	advances, err := u.dao.ListAdvanceRequests()
	if err != nil {
		return false, err
	}
	pixRecords, err := u.dao.ListPixKeyRecords()
	if err != nil {
		return false, err
	}

	for i := range drivers {
		payload, err := json.Marshal(drivers[i])
		if err != nil {
			return false, fmt.Errorf("failed to encode driver %s: %w", drivers[i].DriverID, err)
		}
		entry := model.DriverBackup{BackupDate: today, Payload: string(payload)}
		if err := u.dao.CreateDriverBackup(&entry); err != nil {
			return false, err
		}
	}
	for i := range advances {
		payload, err := json.Marshal(advances[i])
		if err != nil {
			return false, fmt.Errorf("failed to encode advance request %d: %w", advances[i].ID, err)
		}
		entry := model.AdvanceRequestBackup{BackupDate: today, Payload: string(payload)}
		if err := u.dao.CreateAdvanceRequestBackup(&entry); err != nil {
			return false, err
		}
	}
	for i := range pixRecords {
		payload, err := json.Marshal(pixRecords[i])
		if err != nil {
			return false, fmt.Errorf("failed to encode pix record %d: %w", pixRecords[i].ID, err)
		}
		entry := model.PixKeyRecordBackup{BackupDate: today, Payload: string(payload)}
		if err := u.dao.CreatePixKeyRecordBackup(&entry); err != nil {
			return false, err
		}
	}

	entry := model.BackupLog{
		BackupDate: today,
		Drivers:    len(drivers),
		Advances:   len(advances),
		PixRecords: len(pixRecords),
		CreateTime: now.Unix(),
	}
	if err := u.dao.CreateBackupLog(&entry); err != nil {
		return false, err
	}

	log.Infof("[Backup] Snapshot %s stored: %d drivers, %d advances, %d pix records",
		today, len(drivers), len(advances), len(pixRecords))
	return true, nil
}
