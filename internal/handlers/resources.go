// resource.go
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
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/dtos"
)

// PropertyHandler serves /api/imoveis
type PropertyHandler struct {
	*ResourceHandler[dtos.PropertyInput, dtos.PropertyOutput]
}

// NewPropertyHandler creates the property handler over service
func NewPropertyHandler(service CRUD[dtos.PropertyInput, dtos.PropertyOutput]) *PropertyHandler {
	return &PropertyHandler{NewResourceHandler[dtos.PropertyInput, dtos.PropertyOutput]("imoveis", service)}
}

// List handles GET /api/imoveis
// @Summary List properties
// @Description Lists every property, in the resource order
// @Tags Imoveis
// @Produce json
// @Success 200 {array} dtos.PropertyOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/imoveis [get]
func (h *PropertyHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/imoveis
// @Summary Create a property
// @Description Validates the fields and creates a property
// @Tags Imoveis
// @Accept json
// @Produce json
// @Param body body dtos.PropertyInput true "Fields"
// @Success 201 {object} dtos.PropertyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/imoveis [post]
func (h *PropertyHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/imoveis/:id
// @Summary Get a property
// @Description Gets one property by identity
// @Tags Imoveis
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.PropertyOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/imoveis/{id} [get]
func (h *PropertyHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/imoveis/:id
// @Summary Replace a property
// @Description Full update, every required field must be present
// @Tags Imoveis
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PropertyInput true "Fields"
// @Success 200 {object} dtos.PropertyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/imoveis/{id} [put]
func (h *PropertyHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/imoveis/:id
// @Summary Update a property
// @Description Partial update, absent fields keep their values
// @Tags Imoveis
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PropertyInput true "Fields"
// @Success 200 {object} dtos.PropertyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/imoveis/{id} [patch]
func (h *PropertyHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/imoveis/:id
// @Summary Delete a property
// @Description Deletes a property and applies its delete rules
// @Tags Imoveis
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/imoveis/{id} [delete]
func (h *PropertyHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// LessorHandler serves /api/locadores
type LessorHandler struct {
	*ResourceHandler[dtos.PartyInput, dtos.PartyOutput]
}

// NewLessorHandler creates the lessor handler over service
func NewLessorHandler(service CRUD[dtos.PartyInput, dtos.PartyOutput]) *LessorHandler {
	return &LessorHandler{NewResourceHandler[dtos.PartyInput, dtos.PartyOutput]("locadores", service)}
}

// List handles GET /api/locadores
// @Summary List lessors
// @Description Lists every lessor, in the resource order
// @Tags Locadores
// @Produce json
// @Success 200 {array} dtos.PartyOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locadores [get]
func (h *LessorHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/locadores
// @Summary Create a lessor
// @Description Validates the fields and creates a lessor
// @Tags Locadores
// @Accept json
// @Produce json
// @Param body body dtos.PartyInput true "Fields"
// @Success 201 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locadores [post]
func (h *LessorHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/locadores/:id
// @Summary Get a lessor
// @Description Gets one lessor by identity
// @Tags Locadores
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.PartyOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locadores/{id} [get]
func (h *LessorHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/locadores/:id
// @Summary Replace a lessor
// @Description Full update, every required field must be present
// @Tags Locadores
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locadores/{id} [put]
func (h *LessorHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/locadores/:id
// @Summary Update a lessor
// @Description Partial update, absent fields keep their values
// @Tags Locadores
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locadores/{id} [patch]
func (h *LessorHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/locadores/:id
// @Summary Delete a lessor
// @Description Deletes a lessor and applies its delete rules
// @Tags Locadores
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locadores/{id} [delete]
func (h *LessorHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// LesseeHandler serves /api/locatarios
type LesseeHandler struct {
	*ResourceHandler[dtos.PartyInput, dtos.PartyOutput]
}

// NewLesseeHandler creates the lessee handler over service
func NewLesseeHandler(service CRUD[dtos.PartyInput, dtos.PartyOutput]) *LesseeHandler {
	return &LesseeHandler{NewResourceHandler[dtos.PartyInput, dtos.PartyOutput]("locatarios", service)}
}

// List handles GET /api/locatarios
// @Summary List lessees
// @Description Lists every lessee, in the resource order
// @Tags Locatarios
// @Produce json
// @Success 200 {array} dtos.PartyOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locatarios [get]
func (h *LesseeHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/locatarios
// @Summary Create a lessee
// @Description Validates the fields and creates a lessee
// @Tags Locatarios
// @Accept json
// @Produce json
// @Param body body dtos.PartyInput true "Fields"
// @Success 201 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locatarios [post]
func (h *LesseeHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/locatarios/:id
// @Summary Get a lessee
// @Description Gets one lessee by identity
// @Tags Locatarios
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.PartyOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locatarios/{id} [get]
func (h *LesseeHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/locatarios/:id
// @Summary Replace a lessee
// @Description Full update, every required field must be present
// @Tags Locatarios
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locatarios/{id} [put]
func (h *LesseeHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/locatarios/:id
// @Summary Update a lessee
// @Description Partial update, absent fields keep their values
// @Tags Locatarios
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locatarios/{id} [patch]
func (h *LesseeHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/locatarios/:id
// @Summary Delete a lessee
// @Description Deletes a lessee and applies its delete rules
// @Tags Locatarios
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/locatarios/{id} [delete]
func (h *LesseeHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// GuarantorHandler serves /api/fiadores
type GuarantorHandler struct {
	*ResourceHandler[dtos.PartyInput, dtos.PartyOutput]
}

// NewGuarantorHandler creates the guarantor handler over service
func NewGuarantorHandler(service CRUD[dtos.PartyInput, dtos.PartyOutput]) *GuarantorHandler {
	return &GuarantorHandler{NewResourceHandler[dtos.PartyInput, dtos.PartyOutput]("fiadores", service)}
}

// List handles GET /api/fiadores
// @Summary List guarantors
// @Description Lists every guarantor, in the resource order
// @Tags Fiadores
// @Produce json
// @Success 200 {array} dtos.PartyOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/fiadores [get]
func (h *GuarantorHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/fiadores
// @Summary Create a guarantor
// @Description Validates the fields and creates a guarantor
// @Tags Fiadores
// @Accept json
// @Produce json
// @Param body body dtos.PartyInput true "Fields"
// @Success 201 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/fiadores [post]
func (h *GuarantorHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/fiadores/:id
// @Summary Get a guarantor
// @Description Gets one guarantor by identity
// @Tags Fiadores
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.PartyOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/fiadores/{id} [get]
func (h *GuarantorHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/fiadores/:id
// @Summary Replace a guarantor
// @Description Full update, every required field must be present
// @Tags Fiadores
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/fiadores/{id} [put]
func (h *GuarantorHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/fiadores/:id
// @Summary Update a guarantor
// @Description Partial update, absent fields keep their values
// @Tags Fiadores
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/fiadores/{id} [patch]
func (h *GuarantorHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/fiadores/:id
// @Summary Delete a guarantor
// @Description Deletes a guarantor and applies its delete rules
// @Tags Fiadores
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/fiadores/{id} [delete]
func (h *GuarantorHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// IntermediaryHandler serves /api/intermediarios
type IntermediaryHandler struct {
	*ResourceHandler[dtos.PartyInput, dtos.PartyOutput]
}

// NewIntermediaryHandler creates the intermediary handler over service
func NewIntermediaryHandler(service CRUD[dtos.PartyInput, dtos.PartyOutput]) *IntermediaryHandler {
	return &IntermediaryHandler{NewResourceHandler[dtos.PartyInput, dtos.PartyOutput]("intermediarios", service)}
}

// List handles GET /api/intermediarios
// @Summary List intermediaries
// @Description Lists every intermediary, in the resource order
// @Tags Intermediarios
// @Produce json
// @Success 200 {array} dtos.PartyOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/intermediarios [get]
func (h *IntermediaryHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/intermediarios
// @Summary Create a intermediary
// @Description Validates the fields and creates a intermediary
// @Tags Intermediarios
// @Accept json
// @Produce json
// @Param body body dtos.PartyInput true "Fields"
// @Success 201 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/intermediarios [post]
func (h *IntermediaryHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/intermediarios/:id
// @Summary Get a intermediary
// @Description Gets one intermediary by identity
// @Tags Intermediarios
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.PartyOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/intermediarios/{id} [get]
func (h *IntermediaryHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/intermediarios/:id
// @Summary Replace a intermediary
// @Description Full update, every required field must be present
// @Tags Intermediarios
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/intermediarios/{id} [put]
func (h *IntermediaryHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/intermediarios/:id
// @Summary Update a intermediary
// @Description Partial update, absent fields keep their values
// @Tags Intermediarios
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PartyInput true "Fields"
// @Success 200 {object} dtos.PartyOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/intermediarios/{id} [patch]
func (h *IntermediaryHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/intermediarios/:id
// @Summary Delete a intermediary
// @Description Deletes a intermediary and applies its delete rules
// @Tags Intermediarios
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/intermediarios/{id} [delete]
func (h *IntermediaryHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// ContractHandler serves /api/contratos
type ContractHandler struct {
	*ResourceHandler[dtos.ContractInput, dtos.ContractOutput]
}

// NewContractHandler creates the contract handler over service
func NewContractHandler(service CRUD[dtos.ContractInput, dtos.ContractOutput]) *ContractHandler {
	return &ContractHandler{NewResourceHandler[dtos.ContractInput, dtos.ContractOutput]("contratos", service)}
}

// List handles GET /api/contratos
// @Summary List contracts
// @Description Lists every contract, in the resource order
// @Tags Contratos
// @Produce json
// @Success 200 {array} dtos.ContractOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/contratos [get]
func (h *ContractHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/contratos
// @Summary Create a contract
// @Description Validates the fields and creates a contract
// @Tags Contratos
// @Accept json
// @Produce json
// @Param body body dtos.ContractInput true "Fields"
// @Success 201 {object} dtos.ContractOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/contratos [post]
func (h *ContractHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/contratos/:id
// @Summary Get a contract
// @Description Gets one contract by identity
// @Tags Contratos
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.ContractOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/contratos/{id} [get]
func (h *ContractHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/contratos/:id
// @Summary Replace a contract
// @Description Full update, every required field must be present
// @Tags Contratos
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.ContractInput true "Fields"
// @Success 200 {object} dtos.ContractOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/contratos/{id} [put]
func (h *ContractHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/contratos/:id
// @Summary Update a contract
// @Description Partial update, absent fields keep their values
// @Tags Contratos
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.ContractInput true "Fields"
// @Success 200 {object} dtos.ContractOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/contratos/{id} [patch]
func (h *ContractHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/contratos/:id
// @Summary Delete a contract
// @Description Deletes a contract and applies its delete rules
// @Tags Contratos
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/contratos/{id} [delete]
func (h *ContractHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// PaymentHandler serves /api/pagamentos
type PaymentHandler struct {
	*ResourceHandler[dtos.PaymentInput, dtos.PaymentOutput]
}

// NewPaymentHandler creates the payment handler over service
func NewPaymentHandler(service CRUD[dtos.PaymentInput, dtos.PaymentOutput]) *PaymentHandler {
	return &PaymentHandler{NewResourceHandler[dtos.PaymentInput, dtos.PaymentOutput]("pagamentos", service)}
}

// List handles GET /api/pagamentos
// @Summary List payments
// @Description Lists every payment, in the resource order
// @Tags Pagamentos
// @Produce json
// @Success 200 {array} dtos.PaymentOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/pagamentos [get]
func (h *PaymentHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/pagamentos
// @Summary Create a payment
// @Description Validates the fields and creates a payment
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Param body body dtos.PaymentInput true "Fields"
// @Success 201 {object} dtos.PaymentOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/pagamentos [post]
func (h *PaymentHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/pagamentos/:id
// @Summary Get a payment
// @Description Gets one payment by identity
// @Tags Pagamentos
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.PaymentOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/pagamentos/{id} [get]
func (h *PaymentHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/pagamentos/:id
// @Summary Replace a payment
// @Description Full update, every required field must be present
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PaymentInput true "Fields"
// @Success 200 {object} dtos.PaymentOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/pagamentos/{id} [put]
func (h *PaymentHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/pagamentos/:id
// @Summary Update a payment
// @Description Partial update, absent fields keep their values
// @Tags Pagamentos
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.PaymentInput true "Fields"
// @Success 200 {object} dtos.PaymentOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/pagamentos/{id} [patch]
func (h *PaymentHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/pagamentos/:id
// @Summary Delete a payment
// @Description Deletes a payment and applies its delete rules
// @Tags Pagamentos
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/pagamentos/{id} [delete]
func (h *PaymentHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// MaintenanceHandler serves /api/manutencoes
type MaintenanceHandler struct {
	*ResourceHandler[dtos.MaintenanceInput, dtos.MaintenanceOutput]
}

// NewMaintenanceHandler creates the maintenance request handler over service
func NewMaintenanceHandler(service CRUD[dtos.MaintenanceInput, dtos.MaintenanceOutput]) *MaintenanceHandler {
	return &MaintenanceHandler{NewResourceHandler[dtos.MaintenanceInput, dtos.MaintenanceOutput]("manutencoes", service)}
}

// List handles GET /api/manutencoes
// @Summary List maintenance requests
// @Description Lists every maintenance request, in the resource order
// @Tags Manutencoes
// @Produce json
// @Success 200 {array} dtos.MaintenanceOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/manutencoes [get]
func (h *MaintenanceHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/manutencoes
// @Summary Create a maintenance request
// @Description Validates the fields and creates a maintenance request
// @Tags Manutencoes
// @Accept json
// @Produce json
// @Param body body dtos.MaintenanceInput true "Fields"
// @Success 201 {object} dtos.MaintenanceOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/manutencoes [post]
func (h *MaintenanceHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/manutencoes/:id
// @Summary Get a maintenance request
// @Description Gets one maintenance request by identity
// @Tags Manutencoes
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.MaintenanceOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/manutencoes/{id} [get]
func (h *MaintenanceHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/manutencoes/:id
// @Summary Replace a maintenance request
// @Description Full update, every required field must be present
// @Tags Manutencoes
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.MaintenanceInput true "Fields"
// @Success 200 {object} dtos.MaintenanceOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/manutencoes/{id} [put]
func (h *MaintenanceHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/manutencoes/:id
// @Summary Update a maintenance request
// @Description Partial update, absent fields keep their values
// @Tags Manutencoes
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.MaintenanceInput true "Fields"
// @Success 200 {object} dtos.MaintenanceOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/manutencoes/{id} [patch]
func (h *MaintenanceHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/manutencoes/:id
// @Summary Delete a maintenance request
// @Description Deletes a maintenance request and applies its delete rules
// @Tags Manutencoes
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/manutencoes/{id} [delete]
func (h *MaintenanceHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}

// DocumentHandler serves /api/documentos
type DocumentHandler struct {
	*ResourceHandler[dtos.DocumentInput, dtos.DocumentOutput]
}

// NewDocumentHandler creates the document handler over service
func NewDocumentHandler(service CRUD[dtos.DocumentInput, dtos.DocumentOutput]) *DocumentHandler {
	return &DocumentHandler{NewResourceHandler[dtos.DocumentInput, dtos.DocumentOutput]("documentos", service)}
}

// List handles GET /api/documentos
// @Summary List documents
// @Description Lists every document, in the resource order
// @Tags Documentos
// @Produce json
// @Success 200 {array} dtos.DocumentOutput
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/documentos [get]
func (h *DocumentHandler) List(c *fiber.Ctx) error {
	return h.ResourceHandler.List(c)
}

// Create handles POST /api/documentos
// @Summary Create a document
// @Description Validates the fields and creates a document
// @Tags Documentos
// @Accept json
// @Produce json
// @Param body body dtos.DocumentInput true "Fields"
// @Success 201 {object} dtos.DocumentOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/documentos [post]
func (h *DocumentHandler) Create(c *fiber.Ctx) error {
	return h.ResourceHandler.Create(c)
}

// Retrieve handles GET /api/documentos/:id
// @Summary Get a document
// @Description Gets one document by identity
// @Tags Documentos
// @Produce json
// @Param id path int true "Identity"
// @Success 200 {object} dtos.DocumentOutput
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/documentos/{id} [get]
func (h *DocumentHandler) Retrieve(c *fiber.Ctx) error {
	return h.ResourceHandler.Retrieve(c)
}

// Update handles PUT /api/documentos/:id
// @Summary Replace a document
// @Description Full update, every required field must be present
// @Tags Documentos
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.DocumentInput true "Fields"
// @Success 200 {object} dtos.DocumentOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/documentos/{id} [put]
func (h *DocumentHandler) Update(c *fiber.Ctx) error {
	return h.ResourceHandler.Update(c)
}

// PartialUpdate handles PATCH /api/documentos/:id
// @Summary Update a document
// @Description Partial update, absent fields keep their values
// @Tags Documentos
// @Accept json
// @Produce json
// @Param id path int true "Identity"
// @Param body body dtos.DocumentInput true "Fields"
// @Success 200 {object} dtos.DocumentOutput
// @Failure 400 {object} utils.ErrorResponseStruct
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/documentos/{id} [patch]
func (h *DocumentHandler) PartialUpdate(c *fiber.Ctx) error {
	return h.ResourceHandler.PartialUpdate(c)
}

// Delete handles DELETE /api/documentos/:id
// @Summary Delete a document
// @Description Deletes a document and applies its delete rules
// @Tags Documentos
// @Param id path int true "Identity"
// @Success 204
// @Failure 404 {object} utils.ErrorResponseStruct
// @Failure 409 {object} utils.ErrorResponseStruct
// @Failure 500 {object} utils.ErrorResponseStruct
// @Router /api/documentos/{id} [delete]
func (h *DocumentHandler) Delete(c *fiber.Ctx) error {
	return h.ResourceHandler.Delete(c)
}
