package model

// AdvanceRequest is one submission of the public advance-payment form.
type AdvanceRequest struct {
	ID             int64  `gorm:"primary_key;auto_increment" json:"id"`
	Email          string `gorm:"column:email" json:"email"`
	Name           string `gorm:"column:nome" json:"nome"`
	CPF            string `gorm:"column:cpf;size:14" json:"cpf"`
	Location       string `gorm:"column:praca" json:"praca"`
	DeclaredAmount string `gorm:"column:valor_informado;type:decimal(10,2)" json:"valor_informado"`
	Agrees         string `gorm:"column:concorda" json:"concorda"`
	SentAt         int64  `gorm:"column:data_envio;not null" json:"data_envio"`

	// CPFMatches is 1 when the submitted CPF belongs to a registered driver.
	CPFMatches int `gorm:"column:cpf_bate;default:0" json:"cpf_bate"`
}

func (AdvanceRequest) TableName() string {
	return "solicitacoes_adiantamento"
}
