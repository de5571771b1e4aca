package model

// FormConfig is the singleton row (id = 1) controlling availability of the
// public advance form. Scheduled timestamps are one-shot overrides; the auto
// fields describe the recurring daily window.
type FormConfig struct {
	ID             int64  `gorm:"primary_key" json:"id"`
	IsOpen         int    `gorm:"column:is_open;default:0" json:"is_open"`
	ScheduledOpen  string `gorm:"column:scheduled_open" json:"scheduled_open"`
	ScheduledClose string `gorm:"column:scheduled_close" json:"scheduled_close"`
	AutoMode       int    `gorm:"column:auto_mode;default:0" json:"auto_mode"`
	AutoOpenTime   string `gorm:"column:auto_open_time;size:5" json:"auto_open_time"`
	AutoCloseTime  string `gorm:"column:auto_close_time;size:5" json:"auto_close_time"`

	// DaysEnabled is a comma-separated weekday list, Sunday=0 .. Saturday=6.
	DaysEnabled string `gorm:"column:days_enabled;size:50" json:"days_enabled"`
}

func (FormConfig) TableName() string {
	return "form_config"
}

// FormLog records every open/close/schedule transition.
type FormLog struct {
	ID     int64  `gorm:"primary_key;auto_increment" json:"id"`
	Action string `gorm:"column:acao;not null" json:"acao"`
	Detail string `gorm:"column:detalhe;type:text" json:"detalhe"`
	At     int64  `gorm:"column:data_hora;not null" json:"data_hora"`
}

func (FormLog) TableName() string {
	return "form_logs"
}
