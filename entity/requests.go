package entity

// ProcessBatchRequest is the body of POST /process_batch.
type ProcessBatchRequest struct {
	Title          string   `json:"title"`
	FilePaths      []string `json:"file_paths"`
	ReferenceDate  string   `json:"reference_date,omitempty"`
	DriverIDs      []string `json:"driver_ids,omitempty"`
	OnlyRegistered bool     `json:"only_registered"`
	Operator       string   `json:"operator"`
}

// DriverRequest is the body of POST /drivers and PUT /drivers/{id}.
type DriverRequest struct {
	DriverID    string `json:"id_da_pessoa_entregadora"`
	Name        string `json:"recebedor"`
	Email       string `json:"email"`
	CPF         string `json:"cpf"`
	CNPJ        string `json:"cnpj"`
	Location    string `json:"praca"`
	SubLocation string `json:"subpraca"`
	Issuer      string `json:"emissor"`
	Status      string `json:"status"`
	PixKey      string `json:"chave_pix"`
	PixKeyType  string `json:"tipo_de_chave_pix"`
}

// PixSubmission is the body of the public POST /pix form.
type PixSubmission struct {
	Name    string `json:"nome"`
	CPF     string `json:"cpf"`
	Key     string `json:"chave_pix"`
	KeyType string `json:"tipo_de_chave_pix"`
	Email   string `json:"email"`
	CNPJ    string `json:"cnpj"`
	Rating  int    `json:"avaliacao"`
	Praca   string `json:"praca"`
}

// AdvanceSubmission is the body of the public POST /advance form.
type AdvanceSubmission struct {
	Email          string `json:"email"`
	Name           string `json:"nome"`
	CPF            string `json:"cpf"`
	Praca          string `json:"praca"`
	DeclaredAmount string `json:"valor_informado"`
	Agrees         bool   `json:"concorda"`
}

// FormScheduleRequest sets the one-shot open/close timestamps.
type FormScheduleRequest struct {
	ScheduledOpen  string `json:"scheduled_open,omitempty"`
	ScheduledClose string `json:"scheduled_close,omitempty"`
	Operator       string `json:"operator"`
}

// FormAutoRequest configures the recurring daily window.
type FormAutoRequest struct {
	Enabled     bool   `json:"enabled"`
	OpenTime    string `json:"auto_open_time"`
	CloseTime   string `json:"auto_close_time"`
	DaysEnabled string `json:"days_enabled"`
	Operator    string `json:"operator"`
}
