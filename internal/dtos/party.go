package dtos

import "time"

// PartyFields is the wire field set shared by Lessor, Lessee, Guarantor and
// Intermediary, version 1.0.0
type PartyFields struct {
	Name           *string `json:"nome" validate:"required,max=255"`
	Email          *string `json:"email" validate:"required,max=255,email"`
	Phone          *string `json:"telefone" validate:"required,max=20"`
	Profession     *string `json:"profissao" validate:"omitempty,max=100" null:"true"`
	PersonType     *string `json:"tipo_pessoa" validate:"omitempty,choice=person_type"`
	DocumentType   *string `json:"tipo_documento" validate:"omitempty,choice=document_type"`
	DocumentNumber *string `json:"cpf_cnpj" validate:"required,max=18"`
	Address        *string `json:"endereco" validate:"required,max=255"`
	BankDetails    *string `json:"dados_bancarios" null:"true"`
}

// PartyInput is the body of a party create or update
type PartyInput struct {
	Payload
	PartyFields
}

// PartyOutput is the read representation of any party kind
type PartyOutput struct {
	ID uint64 `json:"id"`
	PartyFields
	CreatedAt time.Time `json:"data_cadastro"`
}

// NewPartyOutput builds the read representation of a Lessor, Lessee,
// Guarantor or Intermediary.
func NewPartyOutput[M any](m *M) PartyOutput {
	var out PartyOutput
	Fill(&out, m)
	return out
}
