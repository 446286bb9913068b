package handler

import (
	"errors"

	"go-dairy-books/internal/model"
	"go-dairy-books/internal/repository"
	"go-dairy-books/internal/ws"
	"go-dairy-books/pkg/validator"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseHandler struct {
	repo repository.PurchaseRepository
	hub  *ws.Hub
}

func NewPurchaseHandler(repo repository.PurchaseRepository, hub *ws.Hub) *PurchaseHandler {
	return &PurchaseHandler{repo: repo, hub: hub}
}

// GET /api/purchases
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
	purchases, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch purchases"})
	}
	return c.JSON(purchases)
}

// POST /api/purchases
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var purchase model.Purchase
	if err := c.BodyParser(&purchase); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(purchase); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	purchase.BaseModel = model.BaseModel{}

	if err := h.repo.Create(&purchase); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create purchase"})
	}

	go h.hub.RecordChange("purchase", "created", purchase)
	return c.Status(201).JSON(purchase)
}

// GET /api/purchases/:id
func (h *PurchaseHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	purchase, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Purchase record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch purchase"})
	}
	return c.JSON(purchase)
}

// PUT /api/purchases/:id
func (h *PurchaseHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	var input model.Purchase
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	purchase, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Purchase record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch purchase"})
	}

	purchase.CustomerName = input.CustomerName
	purchase.MilkType = input.MilkType
	purchase.Liters = input.Liters
	purchase.Amount = input.Amount
	purchase.IsPaid = input.IsPaid

	if err := h.repo.Update(purchase); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update purchase"})
	}

	go h.hub.RecordChange("purchase", "updated", purchase)
	return c.JSON(purchase)
}

// DELETE /api/purchases/:id
func (h *PurchaseHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid purchase ID"})
	}

	purchase, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Purchase record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch purchase"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete purchase"})
	}

	go h.hub.RecordChange("purchase", "deleted", purchase)
	return c.JSON(fiber.Map{"message": "Successfully deleted"})
}
