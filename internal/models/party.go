package models

import "time"

// Person holds the columns shared by every party kind. Email and document
// number are unique within each party table.
type Person struct {
	Name           string    `gorm:"size:255;not null"`
	Email          string    `gorm:"size:255;not null;uniqueIndex"`
	Phone          string    `gorm:"size:20;not null"`
	Profession     *string   `gorm:"size:100"`
	PersonType     string    `gorm:"size:10;not null"`
	DocumentType   string    `gorm:"size:10;not null"`
	DocumentNumber string    `gorm:"size:18;not null;uniqueIndex"`
	Address        string    `gorm:"size:255;not null"`
	BankDetails    *Text
	CreatedAt      time.Time `gorm:"<-:create;autoCreateTime"`
}

// Label is the canonical display string of a party: its name.
func (p *Person) Label() string {
	return p.Name
}

// Party returns the shared party columns
func (p *Person) Party() *Person {
	return p
}

// SetDefaults applies the column defaults of a new party
func (p *Person) SetDefaults() {
	p.PersonType = PersonTypeIndividual
	p.DocumentType = DocumentTypeCPF
}

// Lessor owns one or more properties
type Lessor struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`
	Person
}

// Lessee rents a property
type Lessee struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`
	Person
}

// Guarantor backs a lease
type Guarantor struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`
	Person
}

// Intermediary brokers a negotiation
type Intermediary struct {
	ID uint64 `gorm:"primaryKey;autoIncrement"`
	Person
}

// TableName overrides the table name for Lessor
func (Lessor) TableName() string {
	return "locadores"
}

// TableName overrides the table name for Lessee
func (Lessee) TableName() string {
	return "locatarios"
}

// TableName overrides the table name for Guarantor
func (Guarantor) TableName() string {
	return "fiadores"
}

// TableName overrides the table name for Intermediary
func (Intermediary) TableName() string {
	return "intermediarios"
}

func (l *Lessor) Identity() uint64       { return l.ID }
func (l *Lessee) Identity() uint64       { return l.ID }
func (g *Guarantor) Identity() uint64    { return g.ID }
func (i *Intermediary) Identity() uint64 { return i.ID }
