package models

import (
	"fmt"
	"time"

	"github.com/localnerve/imoveis/internal/types"
)

// Property is a real-estate unit under management
type Property struct {
	ID          uint64    `gorm:"primaryKey;autoIncrement"`
	Type        string    `gorm:"size:50;not null"`
	Address     string    `gorm:"size:255;not null"`
	Description *Text
	Status      string    `gorm:"size:50;not null"`
	CreatedAt   time.Time `gorm:"<-:create;autoCreateTime;index"`

	// Physical characteristics
	UsableArea    uint  `gorm:"not null"`
	TotalArea     *uint
	Floor         *int
	Bedrooms      uint `gorm:"not null"`
	Bathrooms     uint `gorm:"not null"`
	ParkingSpaces uint `gorm:"not null"`

	// Utility codes and condominium
	PowerAccountCode   *string       `gorm:"size:100"`
	WaterAccountCode   *string       `gorm:"size:100"`
	CondoAdministrator *string       `gorm:"size:255"`
	CondoFee           types.Decimal `gorm:"type:decimal(10,2);not null"`

	// Acquisition and sale
	AcquisitionDate  *types.Date
	SaleDate         *types.Date
	AcquisitionValue *types.Decimal `gorm:"type:decimal(12,2)"`
	SaleTax          *types.Decimal `gorm:"type:decimal(12,2)"`
	NetSaleValue     *types.Decimal `gorm:"type:decimal(12,2)"`

	// Rent
	RentValue        types.Decimal  `gorm:"type:decimal(10,2);not null"`
	NetRentValue     *types.Decimal `gorm:"type:decimal(10,2)"`
	PropertyTaxValue types.Decimal  `gorm:"type:decimal(10,2);not null"`

	// Insurance
	InsuranceExpiry *types.Date
	InsuranceBroker *string        `gorm:"size:255"`
	Insurer         *string        `gorm:"size:255"`
	InsuranceValue  *types.Decimal `gorm:"type:decimal(10,2)"`

	// Commercial certificates
	FireCertificateCode        *string `gorm:"size:100"`
	FireCertificateIssued      *types.Date
	FireCertificateExpiry      *types.Date
	ExtinguisherExpiry         *types.Date
	PestControlExpiry          *types.Date
	WaterTankCertificateExpiry *types.Date

	Images *string `gorm:"size:255"`
}

// TableName overrides the table name for Property
func (Property) TableName() string {
	return "imoveis"
}

// Label is the canonical display string: "{tipo} - {endereco}".
func (p *Property) Label() string {
	return fmt.Sprintf("%s - %s", p.Type, p.Address)
}

// Identity returns the primary key
func (p *Property) Identity() uint64 {
	return p.ID
}

// SetDefaults applies the column defaults of a new record
func (p *Property) SetDefaults() {
	p.Status = PropertyStatusAvailable
	p.Bathrooms = 1
}
