package model

// BackupLog records one daily snapshot run.
type BackupLog struct {
	ID         int64  `gorm:"primary_key;auto_increment" json:"id"`
	BackupDate string `gorm:"column:backup_date;size:10;not null;index" json:"backup_date"`
	Drivers    int    `gorm:"column:drivers;not null" json:"drivers"`
	Advances   int    `gorm:"column:advances;not null" json:"advances"`
	PixRecords int    `gorm:"column:pix_records;not null" json:"pix_records"`
	CreateTime int64  `gorm:"column:create_time;not null" json:"create_time"`
}

func (BackupLog) TableName() string {
	return "backup_logs"
}

// DriverBackup is a dated copy of one drivers row.
type DriverBackup struct {
	ID         int64  `gorm:"primary_key;auto_increment" json:"id"`
	BackupDate string `gorm:"column:backup_date;size:10;not null;index" json:"backup_date"`
	Payload    string `gorm:"column:payload;type:text;not null" json:"payload"`
}

func (DriverBackup) TableName() string {
	return "backup_entregadores"
}

// AdvanceRequestBackup is a dated copy of one advance-request row.
type AdvanceRequestBackup struct {
	ID         int64  `gorm:"primary_key;auto_increment" json:"id"`
	BackupDate string `gorm:"column:backup_date;size:10;not null;index" json:"backup_date"`
	Payload    string `gorm:"column:payload;type:text;not null" json:"payload"`
}

func (AdvanceRequestBackup) TableName() string {
	return "backup_solicitacoes_adiantamento"
}

// PixKeyRecordBackup is a dated copy of one pix-history row.
type PixKeyRecordBackup struct {
	ID         int64  `gorm:"primary_key;auto_increment" json:"id"`
	BackupDate string `gorm:"column:backup_date;size:10;not null;index" json:"backup_date"`
	Payload    string `gorm:"column:payload;type:text;not null" json:"payload"`
}

func (PixKeyRecordBackup) TableName() string {
	return "backup_historico_pix"
}
