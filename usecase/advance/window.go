package advance

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/abjp/driver-payroll/consts"
	"github.com/abjp/driver-payroll/entity"
	"github.com/abjp/driver-payroll/infra/db/model"

	"github.com/labstack/gommon/log"
)

func (u *advanceUsecase) transition(open bool, action, detail string) error {
	cfg, err := u.dao.GetFormConfig()
	if err != nil {
		return err
	}
	cfg.IsOpen = 0
	if open {
		cfg.IsOpen = 1
	}
	if err := u.dao.SaveFormConfig(cfg); err != nil {
		return err
	}
	return u.dao.CreateFormLog(action, detail, time.Now().Unix())
}

func (u *advanceUsecase) OpenForm(operator string) error {
	return u.transition(true, consts.FormActionOpenManual, "aberto por "+operator)
}

func (u *advanceUsecase) CloseForm(operator string) error {
	return u.transition(false, consts.FormActionCloseManual, "fechado por "+operator)
}

func (u *advanceUsecase) Schedule(req entity.FormScheduleRequest) error {
	cfg, err := u.dao.GetFormConfig()
	if err != nil {
		return err
	}

	for _, ts := range []string{req.ScheduledOpen, req.ScheduledClose} {
		if ts == "" {
			continue
		}
		if _, err := time.Parse(consts.LayoutDateTime, ts); err != nil {
			return fmt.Errorf("invalid schedule timestamp %q: %w", ts, err)
		}
	}

	cfg.ScheduledOpen = req.ScheduledOpen
	cfg.ScheduledClose = req.ScheduledClose
	if err := u.dao.SaveFormConfig(cfg); err != nil {
		return err
	}

	detail := fmt.Sprintf("abre=%s fecha=%s por %s", orDash(req.ScheduledOpen), orDash(req.ScheduledClose), req.Operator)
	return u.dao.CreateFormLog(consts.FormActionScheduleSaved, detail, time.Now().Unix())
}

func (u *advanceUsecase) ConfigureAuto(req entity.FormAutoRequest) error {
	cfg, err := u.dao.GetFormConfig()
	if err != nil {
		return err
	}

	if req.Enabled {
		for _, clock := range []string{req.OpenTime, req.CloseTime} {
			if _, err := time.Parse(consts.LayoutClock, clock); err != nil {
				return fmt.Errorf("invalid window time %q: %w", clock, err)
			}
		}
		if len(parseDays(req.DaysEnabled)) == 0 {
			return fmt.Errorf("days_enabled %q selects no weekday", req.DaysEnabled)
		}
		cfg.AutoMode = 1
		cfg.AutoOpenTime = req.OpenTime
		cfg.AutoCloseTime = req.CloseTime
		cfg.DaysEnabled = req.DaysEnabled
	} else {
		cfg.AutoMode = 0
	}

	if err := u.dao.SaveFormConfig(cfg); err != nil {
		return err
	}

	detail := fmt.Sprintf("auto=%v janela=%s-%s dias=%s por %s",
		req.Enabled, req.OpenTime, req.CloseTime, req.DaysEnabled, req.Operator)
	return u.dao.CreateFormLog(consts.FormActionScheduleSaved, detail, time.Now().Unix())
}

func (u *advanceUsecase) GetConfig() (model.FormConfig, error) {
	return u.dao.GetFormConfig()
}

func (u *advanceUsecase) ListLogs(limit int) ([]model.FormLog, error) {
	return u.dao.ListFormLogs(limit)
}

// EvaluateWindow runs one scheduler tick against the stored config.
func (u *advanceUsecase) EvaluateWindow(now time.Time) error {
	cfg, err := u.dao.GetFormConfig()
	if err != nil {
		return err
	}

	decision := decideWindow(cfg, now)

	if decision.clearScheduledOpen {
		cfg.ScheduledOpen = ""
	}
	if decision.clearScheduledClose {
		cfg.ScheduledClose = ""
	}
	if decision.clearScheduledOpen || decision.clearScheduledClose {
		if err := u.dao.SaveFormConfig(cfg); err != nil {
			return err
		}
	}

	if decision.setOpen == nil {
		return nil
	}
	wantOpen := *decision.setOpen
	if (cfg.IsOpen == 1) == wantOpen {
		return nil
	}

	cfg.IsOpen = 0
	if wantOpen {
		cfg.IsOpen = 1
	}
	if err := u.dao.SaveFormConfig(cfg); err != nil {
		return err
	}
	log.Infof("[FormWindow] %s: %s", decision.action, decision.detail)
	return u.dao.CreateFormLog(decision.action, decision.detail, now.Unix())
}

type windowDecision struct {
	setOpen             *bool
	action              string
	detail              string
	clearScheduledOpen  bool
	clearScheduledClose bool
}

// decideWindow applies the window rules: a due one-shot open wins, then a
// due one-shot close, and only when neither fires does the recurring daily
// window apply. One-shots are cleared once due so they fire exactly once.
func decideWindow(cfg model.FormConfig, now time.Time) windowDecision {
	if due, ok := scheduleDue(cfg.ScheduledOpen, now); ok && due {
		open := true
		return windowDecision{
			setOpen:            &open,
			action:             consts.FormActionOpenAuto,
			detail:             "abertura programada executada",
			clearScheduledOpen: true,
		}
	}
	if due, ok := scheduleDue(cfg.ScheduledClose, now); ok && due {
		open := false
		return windowDecision{
			setOpen:             &open,
			action:              consts.FormActionCloseAuto,
			detail:              "fechamento programado executado",
			clearScheduledClose: true,
		}
	}

	// A pending one-shot suspends the recurring window so it cannot undo the
	// scheduled transition right after it fires.
	if cfg.ScheduledOpen != "" || cfg.ScheduledClose != "" {
		return windowDecision{}
	}

	if cfg.AutoMode == 0 {
		return windowDecision{}
	}

	days := parseDays(cfg.DaysEnabled)
	if len(days) == 0 {
		open := false
		return windowDecision{setOpen: &open, action: consts.FormActionCloseAuto, detail: "nenhum dia habilitado"}
	}

	// Weekday encoding matches the stored config: Sunday=0 .. Saturday=6.
	if !days[int(now.Weekday())] {
		open := false
		return windowDecision{
			setOpen: &open,
			action:  consts.FormActionCloseAuto,
			detail:  fmt.Sprintf("dia nao habilitado (%d)", int(now.Weekday())),
		}
	}

	if cfg.AutoOpenTime == "" || cfg.AutoCloseTime == "" {
		return windowDecision{}
	}

	// HH:MM strings compare correctly as text.
	clock := now.Format(consts.LayoutClock)
	if cfg.AutoOpenTime <= clock && clock <= cfg.AutoCloseTime {
		open := true
		return windowDecision{setOpen: &open, action: consts.FormActionOpenAuto, detail: "dentro do horario automatico"}
	}
	open := false
	return windowDecision{setOpen: &open, action: consts.FormActionCloseAuto, detail: "fora do horario automatico"}
}

// scheduleDue reports whether a one-shot timestamp exists and has passed.
func scheduleDue(ts string, now time.Time) (due bool, ok bool) {
	if ts == "" {
		return false, false
	}
	at, err := time.ParseInLocation(consts.LayoutDateTime, ts, now.Location())
	if err != nil {
		return false, false
	}
	return !now.Before(at), true
}

func parseDays(s string) map[int]bool {
	days := make(map[int]bool)
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		if d, err := strconv.Atoi(part); err == nil && d >= 0 && d <= 6 {
			days[d] = true
		}
	}
	return days
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
