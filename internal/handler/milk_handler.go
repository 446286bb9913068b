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

type MilkHandler struct {
	repo repository.MilkRepository
	hub  *ws.Hub
}

func NewMilkHandler(repo repository.MilkRepository, hub *ws.Hub) *MilkHandler {
	return &MilkHandler{repo: repo, hub: hub}
}

// GET /api/milks
func (h *MilkHandler) List(c *fiber.Ctx) error {
	milks, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch milk records"})
	}
	return c.JSON(milks)
}

// POST /api/milks
func (h *MilkHandler) Create(c *fiber.Ctx) error {
	var milk model.Milk
	if err := c.BodyParser(&milk); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(milk); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	milk.BaseModel = model.BaseModel{}

	if err := h.repo.Create(&milk); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create milk record"})
	}

	go h.hub.RecordChange("milk", "created", milk)
	return c.Status(201).JSON(milk)
}

// GET /api/milks/:id
func (h *MilkHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid milk record ID"})
	}

	milk, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Milk record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch milk record"})
	}
	return c.JSON(milk)
}

// PUT /api/milks/:id
func (h *MilkHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid milk record ID"})
	}

	var input model.Milk
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	milk, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Milk record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch milk record"})
	}

	milk.CustomerID = input.CustomerID
	milk.CustomerName = input.CustomerName
	milk.MilkType = input.MilkType
	milk.Liters = input.Liters
	milk.Fat = input.Fat
	milk.SNF = input.SNF
	milk.Amount = input.Amount
	milk.IsPaid = input.IsPaid

	if err := h.repo.Update(milk); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update milk record"})
	}

	go h.hub.RecordChange("milk", "updated", milk)
	return c.JSON(milk)
}

// DELETE /api/milks/:id
func (h *MilkHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid milk record ID"})
	}

	milk, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Milk record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch milk record"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete milk record"})
	}

	go h.hub.RecordChange("milk", "deleted", milk)
	return c.JSON(fiber.Map{"message": "Successfully deleted"})
}
