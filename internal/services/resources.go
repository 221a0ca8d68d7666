package services

import (
	"github.com/localnerve/imoveis/internal/dtos"
	"github.com/localnerve/imoveis/internal/models"
	"gorm.io/gorm"
)

// Messages of protected deletes
const (
	PropertyProtectedMessage = "Este imóvel não pode ser excluído pois está vinculado a um ou mais contratos."
	LessorProtectedMessage   = "Este locador não pode ser excluído pois está vinculado a um ou mais contratos."
	LesseeProtectedMessage   = "Este locatário não pode ser excluído pois está vinculado a um ou mais contratos."
)

type (
	PropertyService     = Service[models.Property, dtos.PropertyInput, dtos.PropertyOutput]
	LessorService       = Service[models.Lessor, dtos.PartyInput, dtos.PartyOutput]
	LesseeService       = Service[models.Lessee, dtos.PartyInput, dtos.PartyOutput]
	GuarantorService    = Service[models.Guarantor, dtos.PartyInput, dtos.PartyOutput]
	IntermediaryService = Service[models.Intermediary, dtos.PartyInput, dtos.PartyOutput]
	ContractService     = Service[models.Contract, dtos.ContractInput, dtos.ContractOutput]
	PaymentService      = Service[models.Payment, dtos.PaymentInput, dtos.PaymentOutput]
	MaintenanceService  = Service[models.Maintenance, dtos.MaintenanceInput, dtos.MaintenanceOutput]
	DocumentService     = Service[models.Document, dtos.DocumentInput, dtos.DocumentOutput]
)

// NewPropertyService serves imoveis, newest first
func NewPropertyService(db *gorm.DB) *PropertyService {
	return &PropertyService{
		DB:         db,
		Resource:   "imoveis",
		Singular:   "imóvel",
		Order:      "created_at desc, id desc",
		OrderIndex: "idx_imoveis_created_at",
		Output:     dtos.NewPropertyOutput,
		Relations: []Relation{
			Protect(&models.Contract{}, "property_id", PropertyProtectedMessage),
			Cascade(&models.Maintenance{}, "property_id"),
			Nullify(&models.Document{}, "property_id"),
		},
	}
}

// NewLessorService serves locadores
func NewLessorService(db *gorm.DB) *LessorService {
	return &LessorService{
		DB:       db,
		Resource: "locadores",
		Singular: "locador",
		Order:    "id",
		Unique:   partyUniques[models.Lessor](),
		Output:   dtos.NewPartyOutput[models.Lessor],
		Relations: []Relation{
			Protect(&models.Contract{}, "lessor_id", LessorProtectedMessage),
			Nullify(&models.Document{}, "lessor_id"),
		},
	}
}

// NewLesseeService serves locatarios
func NewLesseeService(db *gorm.DB) *LesseeService {
	return &LesseeService{
		DB:       db,
		Resource: "locatarios",
		Singular: "locatário",
		Order:    "id",
		Unique:   partyUniques[models.Lessee](),
		Output:   dtos.NewPartyOutput[models.Lessee],
		Relations: []Relation{
			Protect(&models.Contract{}, "lessee_id", LesseeProtectedMessage),
			Nullify(&models.Document{}, "lessee_id"),
		},
	}
}

// NewGuarantorService serves fiadores
func NewGuarantorService(db *gorm.DB) *GuarantorService {
	return &GuarantorService{
		DB:       db,
		Resource: "fiadores",
		Singular: "fiador",
		Order:    "id",
		Unique:   partyUniques[models.Guarantor](),
		Output:   dtos.NewPartyOutput[models.Guarantor],
	}
}

// NewIntermediaryService serves intermediarios
func NewIntermediaryService(db *gorm.DB) *IntermediaryService {
	return &IntermediaryService{
		DB:       db,
		Resource: "intermediarios",
		Singular: "intermediário",
		Order:    "id",
		Unique:   partyUniques[models.Intermediary](),
		Output:   dtos.NewPartyOutput[models.Intermediary],
	}
}

// NewContractService serves contratos; payments go with their contract
func NewContractService(db *gorm.DB) *ContractService {
	return &ContractService{
		DB:       db,
		Resource: "contratos",
		Singular: "contrato de locação",
		Preload:  []string{"Property", "Lessor", "Lessee"},
		Order:    "id",
		Output:   dtos.NewContractOutput,
		Relations: []Relation{
			Cascade(&models.Payment{}, "contract_id"),
			Nullify(&models.Document{}, "contract_id"),
		},
	}
}

// NewPaymentService serves pagamentos
func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{
		DB:       db,
		Resource: "pagamentos",
		Singular: "pagamento de aluguel",
		Preload:  []string{"Contract.Property", "Contract.Lessee"},
		Order:    "id",
		Output:   dtos.NewPaymentOutput,
	}
}

// NewMaintenanceService serves manutencoes
func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{
		DB:       db,
		Resource: "manutencoes",
		Singular: "manutenção",
		Preload:  []string{"Property"},
		Order:    "id",
		Output:   dtos.NewMaintenanceOutput,
	}
}

// NewDocumentService serves documentos
func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{
		DB:       db,
		Resource: "documentos",
		Singular: "documento",
		Preload:  []string{"Property", "Lessor", "Lessee", "Contract.Property"},
		Order:    "id",
		Output:   dtos.NewDocumentOutput,
	}
}

type party interface {
	Party() *models.Person
}

// partyUniques makes e-mail and document number unique within a party table
func partyUniques[M any]() []Unique[M] {
	person := func(m *M) *models.Person {
		return any(m).(party).Party()
	}
	return []Unique[M]{
		{Field: "email", Label: "E-mail", Column: "email", Value: func(m *M) interface{} { return person(m).Email }},
		{Field: "cpf_cnpj", Label: "CPF/CNPJ", Column: "document_number", Value: func(m *M) interface{} { return person(m).DocumentNumber }},
	}
}
