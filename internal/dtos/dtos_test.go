package dtos

import (
	"errors"
	"testing"
	"time"

	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validationErrors(t *testing.T, err error) map[string][]string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected a ValidationError, got %v", err)
	return verr.Errors
}

func TestDecodeRejectsNonObjects(t *testing.T) {
	tests := map[string]string{
		`[1, 2]`: "list",
		`"x"`:    "str",
		`42`:     "number",
		`null`:   "null",
		``:       "nothing",
	}
	for body, kind := range tests {
		var in PartyInput
		errs := validationErrors(t, Decode([]byte(body), &in))
		assert.Equal(t, []string{"Invalid data. Expected a dictionary, but got " + kind + "."}, errs[NonFieldErrors], "body %q", body)
	}
}

func TestDecodeTracksPresence(t *testing.T) {
	var in PartyInput
	err := Decode([]byte(`{"nome": "  Ana Lima  ", "profissao": null, "desconhecido": 1}`), &in)
	require.NoError(t, err)

	require.NotNil(t, in.Name)
	assert.Equal(t, "Ana Lima", *in.Name)
	assert.True(t, in.Has("nome"))
	assert.True(t, in.Has("profissao"))
	assert.Nil(t, in.Profession)
	assert.False(t, in.Has("email"))
	assert.False(t, in.Has("desconhecido"))
}

func TestDecodeTypeErrors(t *testing.T) {
	var in PropertyInput
	errs := validationErrors(t, Decode([]byte(`{
		"endereco": 5,
		"area_util": "grande",
		"valor_aluguel": "muito",
		"data_aquisicao": "01/02/2026"
	}`), &in))

	assert.Equal(t, []string{"Not a valid string."}, errs["endereco"])
	assert.Equal(t, []string{"A valid integer is required."}, errs["area_util"])
	assert.Equal(t, []string{"A valid number is required."}, errs["valor_aluguel"])
	assert.Contains(t, errs["data_aquisicao"][0], "Date has wrong format")
}

func TestDecodeReferences(t *testing.T) {
	var in ContractInput
	require.NoError(t, Decode([]byte(`{"imovel_id": 3, "locador_id": "4"}`), &in))
	require.NotNil(t, in.PropertyID)
	require.NotNil(t, in.LessorID)
	assert.Equal(t, types.ID(3), *in.PropertyID)
	assert.Equal(t, types.ID(4), *in.LessorID)
	assert.Nil(t, in.LesseeID)

	refs := in.References()
	require.Len(t, refs, 3)
	assert.Equal(t, "imovel_id", refs[0].Field)

	var bad ContractInput
	errs := validationErrors(t, Decode([]byte(`{"imovel_id": 0}`), &bad))
	assert.Equal(t, []string{"Incorrect type. Expected pk value."}, errs["imovel_id"])
}

func TestValidateRequired(t *testing.T) {
	var in PartyInput
	require.NoError(t, Decode([]byte(`{}`), &in))

	errs := validationErrors(t, Validate(&in, false))
	for _, key := range []string{"nome", "email", "telefone", "cpf_cnpj", "endereco"} {
		assert.Equal(t, []string{"This field is required."}, errs[key], key)
	}
	assert.NotContains(t, errs, "profissao")
	assert.NotContains(t, errs, "tipo_pessoa")

	assert.NoError(t, Validate(&in, true))
}

func TestValidateFieldRules(t *testing.T) {
	tests := []struct {
		name string
		body string
		key  string
		want string
	}{
		{name: "null", body: `{"nome": null}`, key: "nome", want: "This field may not be null."},
		{name: "blank", body: `{"nome": "   "}`, key: "nome", want: "This field may not be blank."},
		{name: "email", body: `{"email": "not-an-email"}`, key: "email", want: "Enter a valid email address."},
		{name: "choice", body: `{"tipo_pessoa": "Outra"}`, key: "tipo_pessoa", want: `"Outra" is not a valid choice.`},
		{name: "blank choice", body: `{"tipo_documento": ""}`, key: "tipo_documento", want: `"" is not a valid choice.`},
		{name: "max length", body: `{"telefone": "123456789012345678901"}`, key: "telefone", want: "Ensure this field has no more than 20 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var in PartyInput
			require.NoError(t, Decode([]byte(tt.body), &in))
			errs := validationErrors(t, Validate(&in, true))
			assert.Equal(t, []string{tt.want}, errs[tt.key])
		})
	}
}

func TestValidateNullableAndOptional(t *testing.T) {
	var in PartyInput
	require.NoError(t, Decode([]byte(`{"profissao": null, "dados_bancarios": null}`), &in))
	assert.NoError(t, Validate(&in, true))

	var blank PartyInput
	require.NoError(t, Decode([]byte(`{"profissao": ""}`), &blank))
	assert.NoError(t, Validate(&blank, true))
}

func TestValidateMoney(t *testing.T) {
	tests := []struct {
		value string
		want  string
	}{
		{value: `"123456789.00"`, want: "Ensure that there are no more than 8 digits before the decimal point."},
		{value: `"12345678901"`, want: "Ensure that there are no more than 10 digits in total."},
		{value: `"1.234"`, want: "Ensure that there are no more than 2 decimal places."},
	}

	for _, tt := range tests {
		var in PropertyInput
		require.NoError(t, Decode([]byte(`{"valor_aluguel": `+tt.value+`}`), &in))
		errs := validationErrors(t, Validate(&in, true))
		assert.Equal(t, []string{tt.want}, errs["valor_aluguel"], tt.value)
	}

	var ok PropertyInput
	require.NoError(t, Decode([]byte(`{"valor_aluguel": 99999999.99, "valor_aquisicao": "9999999999.99"}`), &ok))
	assert.NoError(t, Validate(&ok, true))
}

func TestValidateRanges(t *testing.T) {
	var in ContractInput
	require.NoError(t, Decode([]byte(`{"data_vencimento_pagamento": 32}`), &in))
	errs := validationErrors(t, Validate(&in, true))
	assert.Equal(t, []string{"Ensure this value is less than or equal to 31."}, errs["data_vencimento_pagamento"])

	var prop PropertyInput
	require.NoError(t, Decode([]byte(`{"area_util": -1}`), &prop))
	errs = validationErrors(t, Validate(&prop, true))
	assert.Equal(t, []string{"Ensure this value is greater than or equal to 0."}, errs["area_util"])
}

func TestValidatePropertyIntegersFitColumns(t *testing.T) {
	var prop PropertyInput
	require.NoError(t, Decode([]byte(`{
		"area_util": 2147483648,
		"area_total": 9223372036854775807,
		"andar": -2147483649,
		"numero_quartos": 2147483648,
		"numero_banheiros": 2147483648,
		"vagas_garagem": 2147483648
	}`), &prop))
	errs := validationErrors(t, Validate(&prop, true))

	tooBig := []string{"Ensure this value is less than or equal to 2147483647."}
	for _, key := range []string{"area_util", "area_total", "numero_quartos", "numero_banheiros", "vagas_garagem"} {
		assert.Equal(t, tooBig, errs[key], key)
	}
	assert.Equal(t, []string{"Ensure this value is greater than or equal to -2147483648."}, errs["andar"])

	prop = PropertyInput{}
	require.NoError(t, Decode([]byte(`{"area_util": 2147483647, "andar": -2}`), &prop))
	assert.NoError(t, Validate(&prop, true))
}

func TestDocumentReferencesMayBeNull(t *testing.T) {
	var in DocumentInput
	require.NoError(t, Decode([]byte(`{"imovel_id": null, "locador_id": 2}`), &in))
	assert.NoError(t, Validate(&in, true))
	assert.Nil(t, in.PropertyID)
	assert.True(t, in.Has("imovel_id"))
}

func TestApply(t *testing.T) {
	profession := "Advogada"
	lessor := models.Lessor{ID: 9, Person: models.Person{
		Name:       "Antiga",
		Email:      "antiga@example.com",
		Profession: &profession,
	}}

	var in PartyInput
	require.NoError(t, Decode([]byte(`{"nome": "Nova", "profissao": null}`), &in))
	require.NoError(t, Apply(&lessor, &in))

	assert.Equal(t, "Nova", lessor.Name)
	assert.Nil(t, lessor.Profession)
	assert.Equal(t, "antiga@example.com", lessor.Email, "absent fields are kept")
	assert.Equal(t, uint64(9), lessor.ID)
}

func TestApplyConvertsReferencesAndNumbers(t *testing.T) {
	var contract models.Contract
	var in ContractInput
	require.NoError(t, Decode([]byte(`{
		"imovel_id": 1, "locador_id": 2, "locatario_id": 3,
		"data_vencimento_pagamento": 10,
		"valor_aluguel": "1800",
		"clausulas_especificas": "Sem animais"
	}`), &in))
	require.NoError(t, Apply(&contract, &in))

	assert.Equal(t, uint64(1), contract.PropertyID)
	assert.Equal(t, uint64(2), contract.LessorID)
	assert.Equal(t, uint64(3), contract.LesseeID)
	assert.Equal(t, uint(10), contract.PaymentDueDay)
	assert.Equal(t, "1800.00", contract.RentValue.String())
	require.NotNil(t, contract.Clauses)
	assert.Equal(t, models.Text("Sem animais"), *contract.Clauses)
}

func TestPropertyOutput(t *testing.T) {
	created := time.Date(2026, time.January, 2, 3, 4, 5, 0, time.UTC)
	description := models.Text("Vista para o mar")
	p := models.Property{
		ID:          4,
		Type:        models.PropertyTypeHouse,
		Address:     "Rua B, 20",
		Description: &description,
		Status:      models.PropertyStatusRented,
		CreatedAt:   created,
		UsableArea:  120,
		Bathrooms:   2,
		RentValue:   types.MustDecimal("3200"),
	}

	out := NewPropertyOutput(&p)
	assert.Equal(t, uint64(4), out.ID)
	assert.Equal(t, created, out.CreatedAt)
	require.NotNil(t, out.Type)
	assert.Equal(t, "Casa", *out.Type)
	require.NotNil(t, out.Description)
	assert.Equal(t, "Vista para o mar", *out.Description)
	require.NotNil(t, out.UsableArea)
	assert.Equal(t, 120, *out.UsableArea)
	require.NotNil(t, out.RentValue)
	assert.Equal(t, "3200.00", out.RentValue.String())
	assert.Nil(t, out.TotalArea)
	assert.Nil(t, out.AcquisitionDate)
}

func TestContractOutputLabels(t *testing.T) {
	c := models.Contract{
		ID:       5,
		Property: models.Property{Type: "Casa", Address: "Rua C, 30"},
		Lessor:   models.Lessor{Person: models.Person{Name: "Carlos"}},
		Lessee:   models.Lessee{Person: models.Person{Name: "Beatriz"}},
	}

	out := NewContractOutput(&c)
	assert.Equal(t, "Casa - Rua C, 30", out.PropertyLabel)
	assert.Equal(t, "Carlos", out.LessorLabel)
	assert.Equal(t, "Beatriz", out.LesseeLabel)
}

func TestDocumentOutputLabels(t *testing.T) {
	d := models.Document{
		Type:   "Laudo",
		Lessor: &models.Lessor{Person: models.Person{Name: "Carlos"}},
	}

	out := NewDocumentOutput(&d)
	assert.Nil(t, out.PropertyLabel)
	require.NotNil(t, out.LessorLabel)
	assert.Equal(t, "Carlos", *out.LessorLabel)
	assert.Nil(t, out.ContractLabel)
}

func TestValidationErrorMessage(t *testing.T) {
	err := NewValidationError("nome", "This field is required.")
	err.Add("email", "Enter a valid email address.")
	assert.Equal(t, "validation failed: email: Enter a valid email address.; nome: This field is required.", err.Error())
}
