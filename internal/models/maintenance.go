package models

import (
	"fmt"

	"github.com/localnerve/imoveis/internal/types"
)

// Maintenance is a repair request for a Property
type Maintenance struct {
	ID         uint64   `gorm:"primaryKey;autoIncrement"`
	PropertyID uint64   `gorm:"not null;index"`
	Property   Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	RequestDate    types.Date    `gorm:"not null"`
	Description    Text          `gorm:"not null"`
	Status         string        `gorm:"size:20;not null"`
	CompletionDate *types.Date
	Cost           types.Decimal `gorm:"type:decimal(10,2);not null"`
	Responsible    *string       `gorm:"size:255"`
}

// TableName overrides the table name for Maintenance
func (Maintenance) TableName() string {
	return "manutencoes"
}

// Label is "Manutenção em {endereco} ({data_solicitacao})"; Property must be loaded.
func (m *Maintenance) Label() string {
	return fmt.Sprintf("Manutenção em %s (%s)", m.Property.Address, m.RequestDate)
}

func (m *Maintenance) Identity() uint64 {
	return m.ID
}

// SetDefaults applies the column defaults of a new record
func (m *Maintenance) SetDefaults() {
	m.Status = MaintenanceStatusPending
}
