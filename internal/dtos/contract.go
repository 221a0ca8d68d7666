package dtos

import (
	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/types"
)

// ContractFields is the wire field set of a Contract, version 1.0.0
type ContractFields struct {
	StartDate          *types.Date    `json:"data_inicio" validate:"required" swaggertype:"string" format:"date" example:"2026-01-31"`
	EndDate            *types.Date    `json:"data_fim" validate:"required" swaggertype:"string" format:"date" example:"2026-01-31"`
	RentValue          *types.Decimal `json:"valor_aluguel" validate:"required,money=10" swaggertype:"string" example:"1500.00"`
	Deposit            *types.Decimal `json:"valor_deposito" validate:"omitempty,money=10" swaggertype:"string" example:"1500.00"`
	Status             *string        `json:"status_contrato" validate:"omitempty,choice=contract_status"`
	SignedDate         *types.Date    `json:"data_assinatura" validate:"required" swaggertype:"string" format:"date" example:"2026-01-31"`
	PaymentDueDay      *int           `json:"data_vencimento_pagamento" validate:"required,gte=1,lte=31"`
	TerminationPenalty *types.Decimal `json:"multa_rescisoria" validate:"required,money=10" swaggertype:"string" example:"1500.00"`
	Clauses            *string        `json:"clausulas_especificas" null:"true"`
}

// ContractInput is the body of a Contract create or update
type ContractInput struct {
	Payload
	PropertyID *types.ID `json:"imovel_id" validate:"required" swaggertype:"integer"`
	LessorID   *types.ID `json:"locador_id" validate:"required" swaggertype:"integer"`
	LesseeID   *types.ID `json:"locatario_id" validate:"required" swaggertype:"integer"`
	ContractFields
}

// References lists the rows the input points at
func (in *ContractInput) References() []Reference {
	return []Reference{
		{Field: "imovel_id", ID: in.PropertyID, Model: &models.Property{}},
		{Field: "locador_id", ID: in.LessorID, Model: &models.Lessor{}},
		{Field: "locatario_id", ID: in.LesseeID, Model: &models.Lessee{}},
	}
}

// ContractOutput is the read representation of a Contract
type ContractOutput struct {
	ID            uint64 `json:"id"`
	PropertyLabel string `json:"imovel"`
	LessorLabel   string `json:"locador"`
	LesseeLabel   string `json:"locatario"`
	ContractFields
}

// NewContractOutput builds the read representation of m; its Property,
// Lessor and Lessee must be loaded.
func NewContractOutput(m *models.Contract) ContractOutput {
	out := ContractOutput{
		PropertyLabel: m.Property.Label(),
		LessorLabel:   m.Lessor.Label(),
		LesseeLabel:   m.Lessee.Label(),
	}
	Fill(&out, m)
	return out
}
