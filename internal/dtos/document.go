package dtos

import (
	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/types"
)

// DocumentFields is the wire field set of a Document, version 1.0.0
type DocumentFields struct {
	Type        *string     `json:"tipo_documento" validate:"required,max=100"`
	Description *string     `json:"descricao_documento" validate:"required"`
	Date        *types.Date `json:"data_documento" validate:"required" swaggertype:"string" format:"date" example:"2026-01-31"`
	File        *string     `json:"arquivo_documento" validate:"required,max=255"`
}

// DocumentInput is the body of a Document create or update. Every reference
// is optional and an explicit null clears it.
type DocumentInput struct {
	Payload
	PropertyID *types.ID `json:"imovel_id" null:"true" swaggertype:"integer"`
	LessorID   *types.ID `json:"locador_id" null:"true" swaggertype:"integer"`
	LesseeID   *types.ID `json:"locatario_id" null:"true" swaggertype:"integer"`
	ContractID *types.ID `json:"contrato_id" null:"true" swaggertype:"integer"`
	DocumentFields
}

// References lists the rows the input points at
func (in *DocumentInput) References() []Reference {
	return []Reference{
		{Field: "imovel_id", ID: in.PropertyID, Model: &models.Property{}},
		{Field: "locador_id", ID: in.LessorID, Model: &models.Lessor{}},
		{Field: "locatario_id", ID: in.LesseeID, Model: &models.Lessee{}},
		{Field: "contrato_id", ID: in.ContractID, Model: &models.Contract{}},
	}
}

// DocumentOutput is the read representation of a Document. A label is null
// when its reference is empty.
type DocumentOutput struct {
	ID            uint64  `json:"id"`
	PropertyLabel *string `json:"imovel"`
	LessorLabel   *string `json:"locador"`
	LesseeLabel   *string `json:"locatario"`
	ContractLabel *string `json:"contrato"`
	DocumentFields
}

// NewDocumentOutput builds the read representation of m with whichever
// references are loaded.
func NewDocumentOutput(m *models.Document) DocumentOutput {
	var out DocumentOutput
	Fill(&out, m)
	if m.Property != nil {
		out.PropertyLabel = label(m.Property)
	}
	if m.Lessor != nil {
		out.LessorLabel = label(m.Lessor)
	}
	if m.Lessee != nil {
		out.LesseeLabel = label(m.Lessee)
	}
	if m.Contract != nil {
		out.ContractLabel = label(m.Contract)
	}
	return out
}

func label(l models.Labeled) *string {
	s := l.Label()
	return &s
}
