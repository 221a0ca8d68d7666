package models

// Property types
const (
	PropertyTypeHouse              = "Casa"
	PropertyTypeApartment          = "Apartamento"
	PropertyTypeCommercialRoom     = "Sala Comercial"
	PropertyTypeCommercialBuilding = "Prédio Comercial"
	PropertyTypeLot                = "Terreno"
	PropertyTypeWarehouse          = "Galpão"
)

// Property statuses
const (
	PropertyStatusAvailable        = "Disponível"
	PropertyStatusRented           = "Alugado"
	PropertyStatusSold             = "Vendido"
	PropertyStatusUnderMaintenance = "Em Manutenção"
	PropertyStatusInactive         = "Inativo"
)

// Person and document types shared by every party kind
const (
	PersonTypeIndividual  = "Física"
	PersonTypeLegalEntity = "Jurídica"

	DocumentTypeCPF  = "CPF"
	DocumentTypeCNPJ = "CNPJ"
)

// Contract statuses
const (
	ContractStatusActive     = "Ativo"
	ContractStatusEnded      = "Encerrado"
	ContractStatusTerminated = "Rescindido"
	ContractStatusRenewed    = "Renovado"
)

// Payment methods and statuses
const (
	PaymentMethodInvoice      = "Boleto"
	PaymentMethodBankTransfer = "Transferência Bancária"
	PaymentMethodCreditCard   = "Cartão de Crédito"
	PaymentMethodPIX          = "PIX"

	PaymentStatusPaid    = "Pago"
	PaymentStatusPending = "Pendente"
	PaymentStatusLate    = "Em Atraso"
)

// Maintenance statuses
const (
	MaintenanceStatusPending    = "Pendente"
	MaintenanceStatusInProgress = "Em Andamento"
	MaintenanceStatusDone       = "Concluído"
	MaintenanceStatusCancelled  = "Cancelado"
)

// Choices maps a choice set name, as used by the "choice" validation tag, to
// the values it accepts.
var Choices = map[string][]string{
	"property_type": {
		PropertyTypeHouse,
		PropertyTypeApartment,
		PropertyTypeCommercialRoom,
		PropertyTypeCommercialBuilding,
		PropertyTypeLot,
		PropertyTypeWarehouse,
	},
	"property_status": {
		PropertyStatusAvailable,
		PropertyStatusRented,
		PropertyStatusSold,
		PropertyStatusUnderMaintenance,
		PropertyStatusInactive,
	},
	"person_type":   {PersonTypeIndividual, PersonTypeLegalEntity},
	"document_type": {DocumentTypeCPF, DocumentTypeCNPJ},
	"contract_status": {
		ContractStatusActive,
		ContractStatusEnded,
		ContractStatusTerminated,
		ContractStatusRenewed,
	},
	"payment_method": {
		PaymentMethodInvoice,
		PaymentMethodBankTransfer,
		PaymentMethodCreditCard,
		PaymentMethodPIX,
	},
	"payment_status": {PaymentStatusPaid, PaymentStatusPending, PaymentStatusLate},
	"maintenance_status": {
		MaintenanceStatusPending,
		MaintenanceStatusInProgress,
		MaintenanceStatusDone,
		MaintenanceStatusCancelled,
	},
}

// IsChoice reports whether value belongs to the named choice set.
func IsChoice(set, value string) bool {
	for _, c := range Choices[set] {
		if c == value {
			return true
		}
	}
	return false
}
