package model

// PixKeyRecord is one submission of the public payment-key form. DriverID
// stays empty until the submission is matched to a registered driver.
type PixKeyRecord struct {
	ID           int64  `gorm:"primary_key;auto_increment" json:"id"`
	DriverID     string `gorm:"column:id_da_pessoa_entregadora;index" json:"id_da_pessoa_entregadora"`
	CPF          string `gorm:"column:cpf;size:14" json:"cpf"`
	Key          string `gorm:"column:chave_pix" json:"chave_pix"`
	KeyType      string `gorm:"column:tipo_de_chave_pix;size:50" json:"tipo_de_chave_pix"`
	RegisteredAt int64  `gorm:"column:data_registro;not null" json:"data_registro"`
	Status       string `gorm:"column:status;size:50" json:"status"`
	Name         string `gorm:"column:nome" json:"nome"`
	Rating       int    `gorm:"column:avaliacao" json:"avaliacao"`
	Location     string `gorm:"column:praca" json:"praca"`
	CNPJ         string `gorm:"column:cnpj;size:18" json:"cnpj"`
	Email        string `gorm:"column:email" json:"email"`
}

func (PixKeyRecord) TableName() string {
	return "historico_pix"
}
