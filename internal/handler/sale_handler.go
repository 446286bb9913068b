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

type SaleHandler struct {
	repo repository.SaleRepository
	hub  *ws.Hub
}

func NewSaleHandler(repo repository.SaleRepository, hub *ws.Hub) *SaleHandler {
	return &SaleHandler{repo: repo, hub: hub}
}

// GET /api/sales
func (h *SaleHandler) List(c *fiber.Ctx) error {
	sales, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sales"})
	}
	return c.JSON(sales)
}

// POST /api/sales
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	var sale model.Sale
	if err := c.BodyParser(&sale); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(sale); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	sale.BaseModel = model.BaseModel{}

	if err := h.repo.Create(&sale); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create sale"})
	}

	go h.hub.RecordChange("sale", "created", sale)
	return c.Status(201).JSON(sale)
}

// GET /api/sales/:id
func (h *SaleHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Sale record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sale"})
	}
	return c.JSON(sale)
}

// PUT /api/sales/:id
func (h *SaleHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	var input model.Sale
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	sale, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Sale record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sale"})
	}

	sale.CustomerName = input.CustomerName
	sale.MilkType = input.MilkType
	sale.Liters = input.Liters
	sale.Amount = input.Amount
	sale.IsPaid = input.IsPaid

	if err := h.repo.Update(sale); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update sale"})
	}

	go h.hub.RecordChange("sale", "updated", sale)
	return c.JSON(sale)
}

// DELETE /api/sales/:id
func (h *SaleHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid sale ID"})
	}

	sale, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Sale record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch sale"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete sale"})
	}

	go h.hub.RecordChange("sale", "deleted", sale)
	return c.JSON(fiber.Map{"message": "Successfully deleted"})
}
