// resource_test.go
//
// Property-management back office data service
// Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC
//
// This file is part of imoveis.
// imoveis is free software: you can redistribute it and/or modify it
// under the terms of the GNU Affero General Public License as published by the Free Software
// Foundation, either version 3 of the License, or (at your option) any later version.
// imoveis is distributed in the hope that it will be useful, but WITHOUT ANY WARRANTY;
// without even the implied warranty of MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.
// See the GNU Affero General Public License for more details.
// You should have received a copy of the GNU Affero General Public License along with imoveis.
// If not, see <https://www.gnu.org/licenses/>.
// Additional terms under GNU AGPL version 3 section 7:
// a) The reasonable legal notice of original copyright and author attribution must be preserved
//    by including the string: "Copyright (c) 2026 Alex Grant <info@localnerve.com> (https://www.localnerve.com), LocalNerve LLC"
//    in this material, copies, or source code of derived works.
package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/dtos"
	"github.com/localnerve/imoveis/internal/services"
	"github.com/localnerve/imoveis/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeParties is an in-memory CRUD for handler tests
type fakeParties struct {
	rows      map[uint64]dtos.PartyOutput
	nextID    uint64
	err       error
	lastPatch bool
}

func newFakeParties() *fakeParties {
	return &fakeParties{rows: map[uint64]dtos.PartyOutput{}, nextID: 1}
}

func (f *fakeParties) List(ctx context.Context) ([]dtos.PartyOutput, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []dtos.PartyOutput
	for _, r := range f.rows {
		out = append(out, r)
	}
	return out, nil
}

func (f *fakeParties) Get(ctx context.Context, id uint64) (dtos.PartyOutput, error) {
	r, ok := f.rows[id]
	if !ok {
		return dtos.PartyOutput{}, fmt.Errorf("locadores %d: %w", id, services.ErrNotFound)
	}
	return r, nil
}

func (f *fakeParties) Create(ctx context.Context, in *dtos.PartyInput) (dtos.PartyOutput, error) {
	if f.err != nil {
		return dtos.PartyOutput{}, f.err
	}
	if err := dtos.Validate(in, false); err != nil {
		return dtos.PartyOutput{}, err
	}
	out := dtos.PartyOutput{ID: f.nextID, PartyFields: in.PartyFields}
	f.rows[out.ID] = out
	f.nextID++
	return out, nil
}

func (f *fakeParties) Update(ctx context.Context, id uint64, in *dtos.PartyInput, partial bool) (dtos.PartyOutput, error) {
	r, err := f.Get(ctx, id)
	if err != nil {
		return r, err
	}
	f.lastPatch = partial
	if in.Has("nome") {
		r.Name = in.Name
	}
	f.rows[id] = r
	return r, nil
}

func (f *fakeParties) Delete(ctx context.Context, id uint64) error {
	if f.err != nil {
		return f.err
	}
	if _, err := f.Get(ctx, id); err != nil {
		return err
	}
	delete(f.rows, id)
	return nil
}

func setupApp(store CRUD[dtos.PartyInput, dtos.PartyOutput]) *fiber.App {
	app := fiber.New()
	h := NewResourceHandler[dtos.PartyInput, dtos.PartyOutput]("locadores", store)
	app.Get("/locadores", h.List)
	app.Post("/locadores", h.Create)
	app.Get("/locadores/:id", h.Retrieve)
	app.Put("/locadores/:id", h.Update)
	app.Patch("/locadores/:id", h.PartialUpdate)
	app.Delete("/locadores/:id", h.Delete)
	return app
}

func partyBody() testutil.Payload {
	return testutil.PartyPayload("João Silva", 1)
}

func TestListEmpty(t *testing.T) {
	app := setupApp(newFakeParties())

	resp := testutil.Do(t, app, http.MethodGet, "/locadores", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)

	var list []map[string]interface{}
	testutil.ParseJSON(t, resp, &list)
	assert.NotNil(t, list)
	assert.Len(t, list, 0)
}

func TestCreateAndRetrieve(t *testing.T) {
	app := setupApp(newFakeParties())

	resp := testutil.Do(t, app, http.MethodPost, "/locadores", partyBody())
	testutil.AssertStatus(t, resp, http.StatusCreated)
	var created map[string]interface{}
	testutil.ParseJSON(t, resp, &created)
	assert.Equal(t, float64(1), created["id"])
	assert.Equal(t, "João Silva", created["nome"])

	resp = testutil.Do(t, app, http.MethodGet, "/locadores/1", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
}

func TestCreateValidationErrors(t *testing.T) {
	app := setupApp(newFakeParties())

	resp := testutil.Do(t, app, http.MethodPost, "/locadores", partyBody().Without("email"))
	testutil.AssertStatus(t, resp, http.StatusBadRequest)
	var body map[string]interface{}
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "validation", body["type"])
	errs := body["errors"].(map[string]interface{})
	assert.Equal(t, []interface{}{"This field is required."}, errs["email"])

	resp = testutil.Do(t, app, http.MethodPost, "/locadores", "[1, 2]")
	testutil.AssertStatus(t, resp, http.StatusBadRequest)
	testutil.ParseJSON(t, resp, &body)
	errs = body["errors"].(map[string]interface{})
	assert.Equal(t, []interface{}{"Invalid data. Expected a dictionary, but got list."}, errs[dtos.NonFieldErrors])
}

func TestRetrieveNotFound(t *testing.T) {
	app := setupApp(newFakeParties())

	for _, target := range []string{
		"/locadores/42", "/locadores/abc", "/locadores/0", "/locadores/-1",
		"/locadores/9223372036854775808", "/locadores/18446744073709551615",
	} {
		resp := testutil.Do(t, app, http.MethodGet, target, nil)
		testutil.AssertStatus(t, resp, http.StatusNotFound)
		var body map[string]interface{}
		testutil.ParseJSON(t, resp, &body)
		assert.Equal(t, notFoundMessage, body["message"], target)
	}
}

func TestOutOfRangeIDNeverReachesStore(t *testing.T) {
	store := newFakeParties()
	app := setupApp(store)
	testutil.Do(t, app, http.MethodPost, "/locadores", partyBody())

	target := "/locadores/18446744073709551615"
	for _, method := range []string{http.MethodPut, http.MethodPatch, http.MethodDelete} {
		resp := testutil.Do(t, app, method, target, partyBody())
		testutil.AssertStatus(t, resp, http.StatusNotFound)
	}

	resp := testutil.Do(t, app, http.MethodGet, "/locadores/1", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
}

func TestUpdateAndPartialUpdate(t *testing.T) {
	store := newFakeParties()
	app := setupApp(store)
	testutil.Do(t, app, http.MethodPost, "/locadores", partyBody())

	resp := testutil.Do(t, app, http.MethodPatch, "/locadores/1", testutil.Payload{"nome": "Novo Nome"})
	testutil.AssertStatus(t, resp, http.StatusOK)
	assert.True(t, store.lastPatch)
	var body map[string]interface{}
	testutil.ParseJSON(t, resp, &body)
	assert.Equal(t, "Novo Nome", body["nome"])

	resp = testutil.Do(t, app, http.MethodPut, "/locadores/1", partyBody())
	testutil.AssertStatus(t, resp, http.StatusOK)
	assert.False(t, store.lastPatch)
}

func TestUpdateMissingRowWithBadBody(t *testing.T) {
	app := setupApp(newFakeParties())

	resp := testutil.Do(t, app, http.MethodPut, "/locadores/7", "not json")
	testutil.AssertStatus(t, resp, http.StatusNotFound)
}

func TestUpdateBadBody(t *testing.T) {
	app := setupApp(newFakeParties())
	testutil.Do(t, app, http.MethodPost, "/locadores", partyBody())

	resp := testutil.Do(t, app, http.MethodPatch, "/locadores/1", `{"nome": 12}`)
	testutil.AssertStatus(t, resp, http.StatusBadRequest)
}

func TestDelete(t *testing.T) {
	app := setupApp(newFakeParties())
	testutil.Do(t, app, http.MethodPost, "/locadores", partyBody())

	resp := testutil.Do(t, app, http.MethodDelete, "/locadores/1", nil)
	testutil.AssertStatus(t, resp, http.StatusNoContent)
	testutil.AssertNoContent(t, resp)

	resp = testutil.Do(t, app, http.MethodDelete, "/locadores/1", nil)
	testutil.AssertStatus(t, resp, http.StatusNotFound)
}

func TestServiceErrors(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		method  string
		status  int
		message string
	}{
		{
			name:    "protected",
			err:     &services.ProtectedError{Resource: "locadores", Message: services.LessorProtectedMessage},
			method:  http.MethodDelete,
			status:  http.StatusConflict,
			message: services.LessorProtectedMessage,
		},
		{
			name:    "missing reference",
			err:     &services.ReferenceError{Field: "imovel_id", ID: 9},
			method:  http.MethodPost,
			status:  http.StatusNotFound,
			message: `Invalid pk "9" - object does not exist.`,
		},
		{
			name:    "unexpected",
			err:     errors.New("disk on fire"),
			method:  http.MethodGet,
			status:  http.StatusInternalServerError,
			message: "Internal server error",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			store := newFakeParties()
			store.rows[1] = dtos.PartyOutput{ID: 1}
			store.err = tt.err
			app := setupApp(store)

			var resp *http.Response
			switch tt.method {
			case http.MethodDelete:
				resp = testutil.Do(t, app, tt.method, "/locadores/1", nil)
			case http.MethodPost:
				resp = testutil.Do(t, app, tt.method, "/locadores", partyBody())
			default:
				resp = testutil.Do(t, app, tt.method, "/locadores", nil)
			}

			testutil.AssertStatus(t, resp, tt.status)
			var body map[string]interface{}
			testutil.ParseJSON(t, resp, &body)
			require.Equal(t, tt.message, body["message"])
		})
	}
}

func TestIndexServesEmbeddedPage(t *testing.T) {
	app := fiber.New()
	app.Get("/", (&IndexHandler{}).Index)

	resp := testutil.Do(t, app, http.MethodGet, "/", nil)
	testutil.AssertStatus(t, resp, http.StatusOK)
	assert.Contains(t, resp.Header.Get(fiber.HeaderContentType), "text/html")
}
