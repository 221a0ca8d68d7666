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
	"context"

	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/imoveis/internal/dtos"
	"github.com/localnerve/imoveis/internal/utils"
)

// CRUD is the store side of a resource
type CRUD[In any, Out any] interface {
	List(ctx context.Context) ([]Out, error)
	Get(ctx context.Context, id uint64) (Out, error)
	Create(ctx context.Context, in *In) (Out, error)
	Update(ctx context.Context, id uint64, in *In, partial bool) (Out, error)
	Delete(ctx context.Context, id uint64) error
}

// ResourceHandler serves one resource's collection and member routes
type ResourceHandler[In any, Out any] struct {
	Name    string
	Service CRUD[In, Out]
}

// NewResourceHandler creates a handler for the named resource
func NewResourceHandler[In any, Out any](name string, service CRUD[In, Out]) *ResourceHandler[In, Out] {
	return &ResourceHandler[In, Out]{Name: name, Service: service}
}

// List handles GET /api/{resource}
func (h *ResourceHandler[In, Out]) List(c *fiber.Ctx) error {
	items, err := h.Service.List(c.UserContext())
	if err != nil {
		return writeError(c, err, h.Name+".list")
	}
	if items == nil {
		items = []Out{}
	}
	return utils.SuccessResponse(c, items, fiber.StatusOK)
}

// Create handles POST /api/{resource}
func (h *ResourceHandler[In, Out]) Create(c *fiber.Ctx) error {
	in := new(In)
	if err := dtos.Decode(c.Body(), in); err != nil {
		return writeError(c, err, h.Name+".create")
	}

	out, err := h.Service.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, err, h.Name+".create")
	}
	return utils.SuccessResponse(c, out, fiber.StatusCreated)
}

// Retrieve handles GET /api/{resource}/:id
func (h *ResourceHandler[In, Out]) Retrieve(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, notFoundMessage)
	}

	out, err := h.Service.Get(c.UserContext(), id)
	if err != nil {
		return writeError(c, err, h.Name+".retrieve")
	}
	return utils.SuccessResponse(c, out, fiber.StatusOK)
}

// Update handles PUT /api/{resource}/:id
func (h *ResourceHandler[In, Out]) Update(c *fiber.Ctx) error {
	return h.update(c, false)
}

// PartialUpdate handles PATCH /api/{resource}/:id
func (h *ResourceHandler[In, Out]) PartialUpdate(c *fiber.Ctx) error {
	return h.update(c, true)
}

func (h *ResourceHandler[In, Out]) update(c *fiber.Ctx, partial bool) error {
	operation := h.Name + ".update"
	if partial {
		operation = h.Name + ".partialUpdate"
	}

	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, notFoundMessage)
	}

	in := new(In)
	if err := dtos.Decode(c.Body(), in); err != nil {
		// a missing row answers 404 whatever the body
		if _, getErr := h.Service.Get(c.UserContext(), id); getErr != nil {
			return writeError(c, getErr, operation)
		}
		return writeError(c, err, operation)
	}

	out, err := h.Service.Update(c.UserContext(), id, in, partial)
	if err != nil {
		return writeError(c, err, operation)
	}
	return utils.SuccessResponse(c, out, fiber.StatusOK)
}

// Delete handles DELETE /api/{resource}/:id
func (h *ResourceHandler[In, Out]) Delete(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return utils.NotFoundResponse(c, notFoundMessage)
	}

	if err := h.Service.Delete(c.UserContext(), id); err != nil {
		return writeError(c, err, h.Name+".delete")
	}
	return c.SendStatus(fiber.StatusNoContent)
}
