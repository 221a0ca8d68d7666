package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/localnerve/imoveis/internal/dtos"
	"github.com/localnerve/imoveis/internal/models"
	"github.com/localnerve/imoveis/internal/services"
	"github.com/localnerve/imoveis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// input decodes a request body the way the handlers do
func input[T any](t *testing.T, body testutil.Payload) *T {
	t.Helper()
	data, err := json.Marshal(body)
	require.NoError(t, err)
	in := new(T)
	require.NoError(t, dtos.Decode(data, in))
	return in
}

type fixture struct {
	db         *gorm.DB
	properties *services.PropertyService
	lessors    *services.LessorService
	lessees    *services.LesseeService
	contracts  *services.ContractService
	payments   *services.PaymentService
	repairs    *services.MaintenanceService
	documents  *services.DocumentService
}

func newFixture(t *testing.T) *fixture {
	db := testutil.NewTestDB(t)
	return &fixture{
		db:         db,
		properties: services.NewPropertyService(db),
		lessors:    services.NewLessorService(db),
		lessees:    services.NewLesseeService(db),
		contracts:  services.NewContractService(db),
		payments:   services.NewPaymentService(db),
		repairs:    services.NewMaintenanceService(db),
		documents:  services.NewDocumentService(db),
	}
}

func (f *fixture) property(t *testing.T) dtos.PropertyOutput {
	out, err := f.properties.Create(context.Background(), input[dtos.PropertyInput](t, testutil.PropertyPayload()))
	require.NoError(t, err)
	return out
}

func (f *fixture) lessor(t *testing.T, name string, n int) dtos.PartyOutput {
	out, err := f.lessors.Create(context.Background(), input[dtos.PartyInput](t, testutil.PartyPayload(name, n)))
	require.NoError(t, err)
	return out
}

func (f *fixture) lessee(t *testing.T, name string, n int) dtos.PartyOutput {
	out, err := f.lessees.Create(context.Background(), input[dtos.PartyInput](t, testutil.PartyPayload(name, n)))
	require.NoError(t, err)
	return out
}

func (f *fixture) contract(t *testing.T) (dtos.ContractOutput, dtos.PropertyOutput, dtos.PartyOutput, dtos.PartyOutput) {
	p := f.property(t)
	l := f.lessor(t, "João Silva", 1)
	r := f.lessee(t, "Maria Souza", 2)
	out, err := f.contracts.Create(context.Background(),
		input[dtos.ContractInput](t, testutil.ContractPayload(p.ID, l.ID, r.ID)))
	require.NoError(t, err)
	return out, p, l, r
}

func TestCreatePropertyAppliesDefaults(t *testing.T) {
	f := newFixture(t)
	out := f.property(t)

	assert.NotZero(t, out.ID)
	assert.False(t, out.CreatedAt.IsZero())
	assert.Equal(t, models.PropertyStatusAvailable, *out.Status)
	assert.Equal(t, 1, *out.Bathrooms)
	assert.Equal(t, 0, *out.Bedrooms)
	assert.Equal(t, "2500.00", out.RentValue.String())
	assert.Equal(t, "0.00", out.CondoFee.String())
	assert.Nil(t, out.Description)
	assert.Nil(t, out.AcquisitionValue)

	got, err := f.properties.Get(context.Background(), out.ID)
	require.NoError(t, err)
	assert.Equal(t, out.ID, got.ID)
	assert.Equal(t, "Rua das Flores, 123", *got.Address)
}

func TestCreateKeepsExplicitZero(t *testing.T) {
	f := newFixture(t)
	out, err := f.properties.Create(context.Background(), input[dtos.PropertyInput](t,
		testutil.PropertyPayload().With("numero_banheiros", 0).With("status_imovel", models.PropertyStatusRented)))
	require.NoError(t, err)
	assert.Equal(t, 0, *out.Bathrooms)
	assert.Equal(t, models.PropertyStatusRented, *out.Status)
}

func TestCreateRejectsInvalidInput(t *testing.T) {
	f := newFixture(t)
	_, err := f.properties.Create(context.Background(), input[dtos.PropertyInput](t,
		testutil.PropertyPayload().Without("endereco").With("tipo_imovel", "Castelo")))

	var verr *dtos.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"This field is required."}, verr.Errors["endereco"])
	assert.Equal(t, []string{`"Castelo" is not a valid choice.`}, verr.Errors["tipo_imovel"])

	list, err := f.properties.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestListPropertiesNewestFirst(t *testing.T) {
	f := newFixture(t)
	first := f.property(t)
	second := f.property(t)

	list, err := f.properties.List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestListEmptyIsNotNil(t *testing.T) {
	f := newFixture(t)
	list, err := f.lessors.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestPartyUniqueFields(t *testing.T) {
	f := newFixture(t)
	first := f.lessor(t, "João Silva", 1)

	dup := testutil.PartyPayload("Outro", 2).With("email", "pessoa1@example.com")
	_, err := f.lessors.Create(context.Background(), input[dtos.PartyInput](t, dup))
	var verr *dtos.ValidationError
	require.True(t, errors.As(err, &verr), "got %v", err)
	assert.Equal(t, []string{"locador with this E-mail already exists."}, verr.Errors["email"])
	assert.NotContains(t, verr.Errors, "cpf_cnpj")

	dup = testutil.PartyPayload("Outro", 3).With("cpf_cnpj", "123.456.789-01")
	_, err = f.lessors.Create(context.Background(), input[dtos.PartyInput](t, dup))
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, []string{"locador with this CPF/CNPJ already exists."}, verr.Errors["cpf_cnpj"])

	got, err := f.lessors.Get(context.Background(), first.ID)
	require.NoError(t, err)
	assert.Equal(t, *first.Name, *got.Name)
	assert.Equal(t, *first.Email, *got.Email)

	// The same person may also be a lessee
	f.lessee(t, "João Silva", 1)
}

func TestUpdateKeepsOwnUniqueValues(t *testing.T) {
	f := newFixture(t)
	l := f.lessor(t, "João Silva", 1)

	out, err := f.lessors.Update(context.Background(), l.ID,
		input[dtos.PartyInput](t, testutil.PartyPayload("João P. Silva", 1)), false)
	require.NoError(t, err)
	assert.Equal(t, "João P. Silva", *out.Name)
	assert.Equal(t, "pessoa1@example.com", *out.Email)
	assert.Equal(t, l.CreatedAt.Unix(), out.CreatedAt.Unix())
}

func TestFullUpdateRequiresEveryField(t *testing.T) {
	f := newFixture(t)
	l := f.lessor(t, "João Silva", 1)

	_, err := f.lessors.Update(context.Background(), l.ID,
		input[dtos.PartyInput](t, testutil.Payload{"nome": "Só o nome"}), false)
	var verr *dtos.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Contains(t, verr.Errors, "email")

	got, err := f.lessors.Get(context.Background(), l.ID)
	require.NoError(t, err)
	assert.Equal(t, "João Silva", *got.Name)
}

func TestPartialUpdateIsIdempotent(t *testing.T) {
	f := newFixture(t)
	p := f.property(t)
	body := testutil.Payload{"descricao": "Reformado", "valor_aluguel": "2750.5"}

	first, err := f.properties.Update(context.Background(), p.ID, input[dtos.PropertyInput](t, body), true)
	require.NoError(t, err)
	second, err := f.properties.Update(context.Background(), p.ID, input[dtos.PropertyInput](t, body), true)
	require.NoError(t, err)

	assert.Equal(t, "Reformado", *second.Description)
	assert.Equal(t, "2750.50", second.RentValue.String())
	assert.Equal(t, first.RentValue.String(), second.RentValue.String())
	assert.Equal(t, *first.Description, *second.Description)
	assert.Equal(t, *p.Address, *second.Address)
}

func TestPartialUpdateClearsNullableField(t *testing.T) {
	f := newFixture(t)
	p := f.property(t)

	_, err := f.properties.Update(context.Background(), p.ID,
		input[dtos.PropertyInput](t, testutil.Payload{"andar": 4}), true)
	require.NoError(t, err)

	out, err := f.properties.Update(context.Background(), p.ID,
		input[dtos.PropertyInput](t, testutil.Payload{"andar": nil}), true)
	require.NoError(t, err)
	assert.Nil(t, out.Floor)
}

func TestMissingRows(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.properties.Get(ctx, 99)
	assert.ErrorIs(t, err, services.ErrNotFound)

	_, err = f.properties.Update(ctx, 99, input[dtos.PropertyInput](t, testutil.PropertyPayload()), false)
	assert.ErrorIs(t, err, services.ErrNotFound)

	assert.ErrorIs(t, f.properties.Delete(ctx, 99), services.ErrNotFound)
}

func TestIDsBeyondSignedRangeAreNotFound(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	f.property(t)

	for _, id := range []uint64{services.MaxID + 1, math.MaxUint64} {
		_, err := f.properties.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrNotFound)

		_, err = f.properties.Update(ctx, id, input[dtos.PropertyInput](t, testutil.PropertyPayload()), false)
		assert.ErrorIs(t, err, services.ErrNotFound)

		assert.ErrorIs(t, f.properties.Delete(ctx, id), services.ErrNotFound)
	}
}

func TestContractReferencesMustExist(t *testing.T) {
	f := newFixture(t)
	p := f.property(t)
	l := f.lessor(t, "João Silva", 1)

	_, err := f.contracts.Create(context.Background(),
		input[dtos.ContractInput](t, testutil.ContractPayload(p.ID, l.ID, 999)))
	var rerr *services.ReferenceError
	require.True(t, errors.As(err, &rerr), "got %v", err)
	assert.Equal(t, "locatario_id", rerr.Field)
	assert.Equal(t, `Invalid pk "999" - object does not exist.`, rerr.Error())

	r := f.lessee(t, "Maria Souza", 2)
	_, err = f.contracts.Create(context.Background(),
		input[dtos.ContractInput](t, testutil.ContractPayload(math.MaxUint64, l.ID, r.ID)))
	require.True(t, errors.As(err, &rerr), "got %v", err)
	assert.Equal(t, "imovel_id", rerr.Field)
	assert.Equal(t, `Invalid pk "18446744073709551615" - object does not exist.`, rerr.Error())
}

func TestContractLabels(t *testing.T) {
	f := newFixture(t)
	c, p, _, _ := f.contract(t)

	assert.Equal(t, "Apartamento - Rua das Flores, 123", c.PropertyLabel)
	assert.Equal(t, "João Silva", c.LessorLabel)
	assert.Equal(t, "Maria Souza", c.LesseeLabel)
	assert.Equal(t, models.ContractStatusActive, *c.Status)
	assert.Equal(t, "2026-01-01", c.StartDate.String())
	assert.Equal(t, "0.00", c.Deposit.String())
	assert.Equal(t, 10, *c.PaymentDueDay)

	// Labels follow the referenced rows
	_, err := f.properties.Update(context.Background(), p.ID,
		input[dtos.PropertyInput](t, testutil.Payload{"endereco": "Rua Nova, 1"}), true)
	require.NoError(t, err)

	got, err := f.contracts.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "Apartamento - Rua Nova, 1", got.PropertyLabel)
}

func TestLessorRenameReachesContractLabel(t *testing.T) {
	f := newFixture(t)
	c, _, l, _ := f.contract(t)

	_, err := f.lessors.Update(context.Background(), l.ID,
		input[dtos.PartyInput](t, testutil.Payload{"nome": "João Renomeado"}), true)
	require.NoError(t, err)

	got, err := f.contracts.Get(context.Background(), c.ID)
	require.NoError(t, err)
	assert.Equal(t, "João Renomeado", got.LessorLabel)
}

func TestDeleteProtectedByContract(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, p, l, r := f.contract(t)

	tests := []struct {
		name    string
		delete  func() error
		message string
	}{
		{name: "property", delete: func() error { return f.properties.Delete(ctx, p.ID) }, message: services.PropertyProtectedMessage},
		{name: "lessor", delete: func() error { return f.lessors.Delete(ctx, l.ID) }, message: services.LessorProtectedMessage},
		{name: "lessee", delete: func() error { return f.lessees.Delete(ctx, r.ID) }, message: services.LesseeProtectedMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.delete()
			var perr *services.ProtectedError
			require.True(t, errors.As(err, &perr), "got %v", err)
			assert.Equal(t, tt.message, perr.Message)
		})
	}

	_, err := f.properties.Get(ctx, p.ID)
	assert.NoError(t, err)
	_, err = f.lessors.Get(ctx, l.ID)
	assert.NoError(t, err)
	got, err := f.contracts.Get(ctx, c.ID)
	require.NoError(t, err)
	assert.Equal(t, c.PropertyLabel, got.PropertyLabel)
}

func TestProtectedDeleteLeavesDependentsUntouched(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	_, p, _, _ := f.contract(t)

	repair, err := f.repairs.Create(ctx, input[dtos.MaintenanceInput](t, testutil.MaintenancePayload(p.ID)))
	require.NoError(t, err)
	doc, err := f.documents.Create(ctx, input[dtos.DocumentInput](t, testutil.DocumentPayload().With("imovel_id", p.ID)))
	require.NoError(t, err)
	require.NotNil(t, doc.PropertyLabel)

	var perr *services.ProtectedError
	require.True(t, errors.As(f.properties.Delete(ctx, p.ID), &perr))
	assert.Equal(t, services.PropertyProtectedMessage, perr.Message)

	gotRepair, err := f.repairs.Get(ctx, repair.ID)
	require.NoError(t, err)
	assert.Equal(t, repair.PropertyLabel, gotRepair.PropertyLabel)
	assert.Equal(t, *repair.Description, *gotRepair.Description)
	assert.Equal(t, *repair.Status, *gotRepair.Status)

	gotDoc, err := f.documents.Get(ctx, doc.ID)
	require.NoError(t, err)
	require.NotNil(t, gotDoc.PropertyLabel)
	assert.Equal(t, *doc.PropertyLabel, *gotDoc.PropertyLabel)

	var stored models.Document
	require.NoError(t, f.db.First(&stored, doc.ID).Error)
	require.NotNil(t, stored.PropertyID)
	assert.Equal(t, p.ID, *stored.PropertyID)
}

func TestDeleteContractCascadesPayments(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	c, p, l, r := f.contract(t)

	pay, err := f.payments.Create(ctx, input[dtos.PaymentInput](t, testutil.PaymentPayload(c.ID)))
	require.NoError(t, err)
	assert.Equal(t, "Pagamento de Maria Souza - Venc: 2026-02-10", pay.ContractLabel)
	assert.Equal(t, models.PaymentStatusPending, *pay.Status)

	late, err := f.payments.Create(ctx, input[dtos.PaymentInput](t,
		testutil.PaymentPayload(c.ID).With("data_pagamento", "2026-03-10").With("status_pagamento", models.PaymentStatusLate)))
	require.NoError(t, err)

	require.NoError(t, f.contracts.Delete(ctx, c.ID))

	for _, id := range []uint64{pay.ID, late.ID} {
		_, err = f.payments.Get(ctx, id)
		assert.ErrorIs(t, err, services.ErrNotFound)
	}

	// With the contract gone the parties can be deleted
	require.NoError(t, f.lessors.Delete(ctx, l.ID))
	require.NoError(t, f.lessees.Delete(ctx, r.ID))
	require.NoError(t, f.properties.Delete(ctx, p.ID))
}

func TestDeletePropertyCascadesMaintenance(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.property(t)

	m, err := f.repairs.Create(ctx, input[dtos.MaintenanceInput](t, testutil.MaintenancePayload(p.ID)))
	require.NoError(t, err)
	assert.Equal(t, "Apartamento - Rua das Flores, 123", m.PropertyLabel)
	assert.Equal(t, models.MaintenanceStatusPending, *m.Status)

	require.NoError(t, f.properties.Delete(ctx, p.ID))

	_, err = f.repairs.Get(ctx, m.ID)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestDeleteNullifiesDocumentReferences(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.property(t)
	l := f.lessor(t, "João Silva", 1)

	doc, err := f.documents.Create(ctx, input[dtos.DocumentInput](t,
		testutil.DocumentPayload().With("locador_id", l.ID).With("imovel_id", p.ID)))
	require.NoError(t, err)
	require.NotNil(t, doc.LessorLabel)
	assert.Equal(t, "João Silva", *doc.LessorLabel)
	assert.Nil(t, doc.ContractLabel)

	require.NoError(t, f.lessors.Delete(ctx, l.ID))

	got, err := f.documents.Get(ctx, doc.ID)
	require.NoError(t, err)
	assert.Nil(t, got.LessorLabel)
	require.NotNil(t, got.PropertyLabel)

	var stored models.Document
	require.NoError(t, f.db.First(&stored, doc.ID).Error)
	assert.Nil(t, stored.LessorID)
	require.NotNil(t, stored.PropertyID)
	assert.Equal(t, p.ID, *stored.PropertyID)
}

func TestDocumentReferenceCanBeCleared(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()
	p := f.property(t)

	doc, err := f.documents.Create(ctx, input[dtos.DocumentInput](t, testutil.DocumentPayload().With("imovel_id", p.ID)))
	require.NoError(t, err)
	require.NotNil(t, doc.PropertyLabel)

	out, err := f.documents.Update(ctx, doc.ID, input[dtos.DocumentInput](t, testutil.Payload{"imovel_id": nil}), true)
	require.NoError(t, err)
	assert.Nil(t, out.PropertyLabel)
}
