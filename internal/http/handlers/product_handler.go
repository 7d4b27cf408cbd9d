package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "catalogproxy/internal/log"
	"catalogproxy/internal/services"
	"catalogproxy/internal/validate"
)

type ProductHandler struct {
	Products *services.ProductService
}

// bind decodes the JSON body into in. An empty body leaves in zeroed.
func bind(c *fiber.Ctx, in *services.ProductInput) error {
	if len(c.Body()) == 0 {
		return nil
	}
	return c.BodyParser(in)
}

func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in services.ProductInput
	if err := bind(c, &in); err != nil {
		return badRequest(c, "body", "Invalid request body.")
	}
	id, brandCreated, err := h.Products.Create(c.UserContext(), in)
	if errors.Is(err, services.ErrMissingFields) {
		return badRequest(c, "product", "Missing required fields.")
	}
	if err != nil {
		return serverError(c, "product.create.fail", "Failed to create product.", err)
	}
	c.Status(fiber.StatusCreated)
	applog.Audit(c, "product.create", map[string]any{"product_id": id, "brand_created": brandCreated})
	return c.JSON(fiber.Map{"message": "Product created", "product_id": id})
}

func (h *ProductHandler) Update(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("product_id"))
	if !ok {
		return notFound(c, "product.update.miss", map[string]any{"product_id": c.Params("product_id")})
	}
	var in services.ProductInput
	if err := bind(c, &in); err != nil {
		return badRequest(c, "body", "Invalid request body.")
	}
	err := h.Products.Update(c.UserContext(), id, in)
	if errors.Is(err, services.ErrNotFound) {
		return notFound(c, "product.update.miss", map[string]any{"product_id": id})
	}
	if err != nil {
		return serverError(c, "product.update.fail", "Failed to update product.", err)
	}
	applog.Audit(c, "product.update", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"message": "Product updated"})
}

func (h *ProductHandler) Delete(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("product_id"))
	if !ok {
		return notFound(c, "product.delete.miss", map[string]any{"product_id": c.Params("product_id")})
	}
	err := h.Products.Delete(c.UserContext(), id)
	if errors.Is(err, services.ErrNotFound) {
		return notFound(c, "product.delete.miss", map[string]any{"product_id": id})
	}
	if err != nil {
		return serverError(c, "product.delete.fail", "Failed to delete product.", err)
	}
	c.Status(fiber.StatusNoContent)
	applog.Audit(c, "product.delete", map[string]any{"product_id": id})
	return c.SendStatus(fiber.StatusNoContent)
}
