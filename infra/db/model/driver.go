package model

// Driver is one registered delivery worker. The primary key is the external
// platform identifier, not a surrogate.
type Driver struct {
	DriverID    string `gorm:"column:id_da_pessoa_entregadora;primary_key" json:"id_da_pessoa_entregadora"`
	Name        string `gorm:"column:recebedor;not null" json:"recebedor"`
	Email       string `gorm:"column:email" json:"email"`
	CPF         string `gorm:"column:cpf;size:14" json:"cpf"`
	CNPJ        string `gorm:"column:cnpj;size:18" json:"cnpj"`
	Location    string `gorm:"column:praca" json:"praca"`
	SubLocation string `gorm:"column:subpraca" json:"subpraca"`
	Issuer      string `gorm:"column:emissor" json:"emissor"`
	Status      string `gorm:"column:status;size:50" json:"status"`
}

func (Driver) TableName() string {
	return "entregadores"
}
