package dtos

import (
	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/types"
)

// PaymentFields is the wire field set of a Payment, version 1.0.0
type PaymentFields struct {
	PaymentDate *types.Date    `json:"data_pagamento" validate:"required" swaggertype:"string" format:"date" example:"2026-01-31"`
	AmountPaid  *types.Decimal `json:"valor_pago" validate:"required,money=10" swaggertype:"string" example:"1500.00"`
	Method      *string        `json:"forma_pagamento" validate:"required,choice=payment_method"`
	Status      *string        `json:"status_pagamento" validate:"omitempty,choice=payment_status"`
	LateFee     *types.Decimal `json:"multa_juros" validate:"omitempty,money=10" swaggertype:"string" example:"1500.00"`
	Receipt     *string        `json:"comprovante_pagamento" validate:"omitempty,max=255" null:"true"`
}

// PaymentInput is the body of a Payment create or update
type PaymentInput struct {
	Payload
	ContractID *types.ID `json:"contrato_id" validate:"required" swaggertype:"integer"`
	PaymentFields
}

// References lists the rows the input points at
func (in *PaymentInput) References() []Reference {
	return []Reference{
		{Field: "contrato_id", ID: in.ContractID, Model: &models.Contract{}},
	}
}

// PaymentOutput is the read representation of a Payment
type PaymentOutput struct {
	ID            uint64 `json:"id"`
	ContractLabel string `json:"contrato"`
	PaymentFields
}

// NewPaymentOutput builds the read representation of m; its Contract with
// the contract's Property and Lessee must be loaded.
func NewPaymentOutput(m *models.Payment) PaymentOutput {
	out := PaymentOutput{ContractLabel: m.Contract.Label()}
	Fill(&out, m)
	return out
}
