package models

import (
	"testing"

	"github.com/localnerve/imoveis/internal/types"
	"github.com/stretchr/testify/assert"
)

func TestLabels(t *testing.T) {
	property := Property{ID: 3, Type: PropertyTypeApartment, Address: "Rua A, 10"}
	lessee := Lessee{ID: 2, Person: Person{Name: "Maria Souza"}}
	contract := Contract{ID: 7, Property: property, Lessee: lessee}

	tests := []struct {
		name  string
		model Labeled
		want  string
	}{
		{name: "property", model: &property, want: "Apartamento - Rua A, 10"},
		{name: "lessor", model: &Lessor{Person: Person{Name: "João Silva"}}, want: "João Silva"},
		{name: "lessee", model: &lessee, want: "Maria Souza"},
		{name: "guarantor", model: &Guarantor{Person: Person{Name: "Ana"}}, want: "Ana"},
		{name: "intermediary", model: &Intermediary{Person: Person{Name: "Imobiliária X"}}, want: "Imobiliária X"},
		{name: "contract", model: &contract, want: "Contrato #7 - Rua A, 10"},
		{
			name:  "payment",
			model: &Payment{Contract: contract, PaymentDate: types.MustDate("2026-05-10")},
			want:  "Pagamento de Maria Souza - Venc: 2026-05-10",
		},
		{
			name:  "maintenance",
			model: &Maintenance{Property: property, RequestDate: types.MustDate("2026-06-01")},
			want:  "Manutenção em Rua A, 10 (2026-06-01)",
		},
		{name: "document", model: &Document{Type: "Escritura"}, want: "Escritura"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.model.Label())
		})
	}
}

func TestDefaults(t *testing.T) {
	var p Property
	p.SetDefaults()
	assert.Equal(t, PropertyStatusAvailable, p.Status)
	assert.Equal(t, uint(1), p.Bathrooms)

	var l Lessor
	l.SetDefaults()
	assert.Equal(t, PersonTypeIndividual, l.PersonType)
	assert.Equal(t, DocumentTypeCPF, l.DocumentType)

	var c Contract
	c.SetDefaults()
	assert.Equal(t, ContractStatusActive, c.Status)

	var pay Payment
	pay.SetDefaults()
	assert.Equal(t, PaymentStatusPending, pay.Status)

	var m Maintenance
	m.SetDefaults()
	assert.Equal(t, MaintenanceStatusPending, m.Status)
}

func TestIsChoice(t *testing.T) {
	assert.True(t, IsChoice("property_type", "Galpão"))
	assert.True(t, IsChoice("payment_method", "PIX"))
	assert.True(t, IsChoice("maintenance_status", "Em Andamento"))
	assert.False(t, IsChoice("property_type", "Castelo"))
	assert.False(t, IsChoice("payment_method", "pix"))
	assert.False(t, IsChoice("no_such_set", "PIX"))
}

func TestTableNames(t *testing.T) {
	names := map[string]string{
		Property{}.TableName():     "imoveis",
		Lessor{}.TableName():       "locadores",
		Lessee{}.TableName():       "locatarios",
		Guarantor{}.TableName():    "fiadores",
		Intermediary{}.TableName(): "intermediarios",
		Contract{}.TableName():     "contratos",
		Payment{}.TableName():      "pagamentos",
		Maintenance{}.TableName():  "manutencoes",
		Document{}.TableName():     "documentos",
	}
	for got, want := range names {
		assert.Equal(t, want, got)
	}
	assert.Len(t, All(), 9)
}
