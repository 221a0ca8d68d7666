package models

import (
	"fmt"

	"github.com/localnerve/imoveis/internal/types"
)

// Contract is the lease binding a Property, its Lessor and a Lessee.
// The referenced rows cannot be deleted while the contract exists.
type Contract struct {
	ID         uint64   `gorm:"primaryKey;autoIncrement"`
	PropertyID uint64   `gorm:"not null;index"`
	Property   Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	LessorID   uint64   `gorm:"not null;index"`
	Lessor     Lessor   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`
	LesseeID   uint64   `gorm:"not null;index"`
	Lessee     Lessee   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT"`

	StartDate          types.Date    `gorm:"not null"`
	EndDate            types.Date    `gorm:"not null"`
	RentValue          types.Decimal `gorm:"type:decimal(10,2);not null"`
	Deposit            types.Decimal `gorm:"type:decimal(10,2);not null"`
	Status             string        `gorm:"size:20;not null"`
	SignedDate         types.Date    `gorm:"not null"`
	PaymentDueDay      uint          `gorm:"not null"`
	TerminationPenalty types.Decimal `gorm:"type:decimal(10,2);not null"`
	Clauses            *Text
}

// TableName overrides the table name for Contract
func (Contract) TableName() string {
	return "contratos"
}

// Label is "Contrato #{id} - {endereco do imovel}"; Property must be loaded.
func (c *Contract) Label() string {
	return fmt.Sprintf("Contrato #%d - %s", c.ID, c.Property.Address)
}

func (c *Contract) Identity() uint64 {
	return c.ID
}

// SetDefaults applies the column defaults of a new record
func (c *Contract) SetDefaults() {
	c.Status = ContractStatusActive
}

// Payment is a rent payment made under a Contract. Payments are deleted
// together with their contract.
type Payment struct {
	ID         uint64   `gorm:"primaryKey;autoIncrement"`
	ContractID uint64   `gorm:"not null;index"`
	Contract   Contract `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`

	PaymentDate types.Date    `gorm:"not null"`
	AmountPaid  types.Decimal `gorm:"type:decimal(10,2);not null"`
	Method      string        `gorm:"size:50;not null"`
	Status      string        `gorm:"size:20;not null"`
	LateFee     types.Decimal `gorm:"type:decimal(10,2);not null"`
	Receipt     *string       `gorm:"size:255"`
}

// TableName overrides the table name for Payment
func (Payment) TableName() string {
	return "pagamentos"
}

// Label is "Pagamento de {nome do locatario} - Venc: {data_pagamento}";
// Contract.Lessee must be loaded.
func (p *Payment) Label() string {
	return fmt.Sprintf("Pagamento de %s - Venc: %s", p.Contract.Lessee.Name, p.PaymentDate)
}

func (p *Payment) Identity() uint64 {
	return p.ID
}

// SetDefaults applies the column defaults of a new record
func (p *Payment) SetDefaults() {
	p.Status = PaymentStatusPending
}
