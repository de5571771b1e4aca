package handler

import (
	"context"
	"time"
)

// FormWindowExecution is the scheduler tick that applies the advance-form
// window rules.
func (h *PayrollHandler) FormWindowExecution(ctx context.Context) error {
	return h.Advance.EvaluateWindow(time.Now())
}

// DailyBackupExecution takes the daily snapshot when due. The bool tells the
// worker loop whether a snapshot was actually taken.
func (h *PayrollHandler) DailyBackupExecution(ctx context.Context) (bool, error) {
	return h.Backup.RunDailyBackup(time.Now())
}
