package dtos

import (
	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/types"
)

// MaintenanceFields is the wire field set of a Maintenance, version 1.0.0
type MaintenanceFields struct {
	RequestDate    *types.Date    `json:"data_solicitacao" validate:"required" swaggertype:"string" format:"date" example:"2026-01-31"`
	Description    *string        `json:"descricao" validate:"required"`
	Status         *string        `json:"status_manutencao" validate:"omitempty,choice=maintenance_status"`
	CompletionDate *types.Date    `json:"data_conclusao" null:"true" swaggertype:"string" format:"date" example:"2026-01-31"`
	Cost           *types.Decimal `json:"custo_manutencao" validate:"omitempty,money=10" swaggertype:"string" example:"1500.00"`
	Responsible    *string        `json:"responsavel_manutencao" validate:"omitempty,max=255" null:"true"`
}

// MaintenanceInput is the body of a Maintenance create or update
type MaintenanceInput struct {
	Payload
	PropertyID *types.ID `json:"imovel_id" validate:"required" swaggertype:"integer"`
	MaintenanceFields
}

// References lists the rows the input points at
func (in *MaintenanceInput) References() []Reference {
	return []Reference{
		{Field: "imovel_id", ID: in.PropertyID, Model: &models.Property{}},
	}
}

// MaintenanceOutput is the read representation of a Maintenance
type MaintenanceOutput struct {
	ID            uint64 `json:"id"`
	PropertyLabel string `json:"imovel"`
	MaintenanceFields
}

// NewMaintenanceOutput builds the read representation of m; its Property must be loaded.
func NewMaintenanceOutput(m *models.Maintenance) MaintenanceOutput {
	out := MaintenanceOutput{PropertyLabel: m.Property.Label()}
	Fill(&out, m)
	return out
}
