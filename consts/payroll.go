package consts

const (
	// Driver status values
	DriverStatusActive   = "Ativo"
	DriverStatusInactive = "Inativo"

	// PIX record status values
	PixStatusPending  = "pendente"
	PixStatusApproved = "aprovado"
	PixStatusRejected = "rejeitado"

	// PIX key types
	PixKeyTypeAuto   = "AUTO"
	PixKeyTypeCPF    = "CPF"
	PixKeyTypeEmail  = "EMAIL"
	PixKeyTypePhone  = "TELEFONE"
	PixKeyTypeRandom = "ALEATORIA"

	// Form log actions
	FormActionOpenManual    = "ABRIR_MANUAL"
	FormActionCloseManual   = "FECHAR_MANUAL"
	FormActionOpenAuto      = "ABRIR_AUTOMATICO"
	FormActionCloseAuto     = "FECHAR_AUTOMATICO"
	FormActionScheduleSaved = "AGENDAMENTO_ALTERADO"

	// Default values for new drivers
	DefaultIssuer  = "Proprio"
	DefaultKeyType = "AUTO"

	// Date layouts shared across handlers and the scheduler
	LayoutDate     = "2006-01-02"
	LayoutDateTime = "2006-01-02 15:04:05"
	LayoutClock    = "15:04"

	// Default config
	DefaultFormCheckIntervalSec = 30
	DefaultBackupHour           = 22
	DefaultWorkerNumber         = 1
)
