package model

// ProcessingResult is one persisted orchestrator run. Result holds the
// serialized BatchResult summary; the pipeline never reads it back for
// computation, it exists for redisplay.
type ProcessingResult struct {
	ID           int64  `gorm:"primary_key;auto_increment" json:"id"`
	BatchID      string `gorm:"column:batch_id;size:36;unique_index" json:"batch_id"`
	Title        string `gorm:"column:title" json:"title"`
	TotalFiles   int    `gorm:"column:total_files;not null" json:"total_files"`
	FilesOK      int    `gorm:"column:files_ok;not null" json:"files_ok"`
	FilesFailed  int    `gorm:"column:files_failed;not null" json:"files_failed"`
	TotalDrivers int    `gorm:"column:total_drivers;not null" json:"total_drivers"`
	GrandTotal   string `gorm:"column:grand_total;type:decimal(12,2)" json:"grand_total"`
	Result       string `gorm:"column:result;type:text;not null" json:"result"`
	CreateTime   int64  `gorm:"column:create_time;not null" json:"create_time"`
	CreateBy     string `gorm:"column:create_by;size:100;not null" json:"create_by"`
}

func (ProcessingResult) TableName() string {
	return "processamento_resultados"
}
