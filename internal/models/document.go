package models

import "github.com/localnerve/imoveis/internal/types"

// Document is file metadata optionally tied to a Property, Lessor, Lessee
// and Contract. Each reference is cleared when its target is deleted.
type Document struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`

	PropertyID *uint64   `gorm:"index"`
	Property   *Property `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	LessorID   *uint64   `gorm:"index"`
	Lessor     *Lessor   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	LesseeID   *uint64   `gorm:"index"`
	Lessee     *Lessee   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`
	ContractID *uint64   `gorm:"index"`
	Contract   *Contract `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL"`

	Type        string     `gorm:"size:100;not null"`
	Description Text       `gorm:"not null"`
	Date        types.Date `gorm:"not null"`
	File        string     `gorm:"size:255;not null"`
}

// TableName overrides the table name for Document
func (Document) TableName() string {
	return "documentos"
}

// Label is the document type
func (d *Document) Label() string {
	return d.Type
}

func (d *Document) Identity() uint64 {
	return d.ID
}
