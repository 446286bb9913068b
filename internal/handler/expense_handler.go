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

type ExpenseHandler struct {
	repo repository.ExpenseRepository
	hub  *ws.Hub
}

func NewExpenseHandler(repo repository.ExpenseRepository, hub *ws.Hub) *ExpenseHandler {
	return &ExpenseHandler{repo: repo, hub: hub}
}

// GET /api/expenses
func (h *ExpenseHandler) List(c *fiber.Ctx) error {
	expenses, err := h.repo.FindAll()
	if err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expenses"})
	}
	return c.JSON(expenses)
}

// POST /api/expenses
func (h *ExpenseHandler) Create(c *fiber.Ctx) error {
	var expense model.Expense
	if err := c.BodyParser(&expense); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(expense); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	expense.BaseModel = model.BaseModel{}

	if err := h.repo.Create(&expense); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to create expense"})
	}

	go h.hub.RecordChange("expense", "created", expense)
	return c.Status(201).JSON(expense)
}

// GET /api/expenses/:id
func (h *ExpenseHandler) Get(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	expense, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Expense record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}
	return c.JSON(expense)
}

// PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	var input model.Expense
	if err := c.BodyParser(&input); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid JSON"})
	}
	if errs := validator.ValidateStruct(input); len(errs) > 0 {
		return c.Status(400).JSON(fiber.Map{"error": validationError(errs)})
	}

	expense, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Expense record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}

	expense.Remark = input.Remark
	expense.Amount = input.Amount

	if err := h.repo.Update(expense); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to update expense"})
	}

	go h.hub.RecordChange("expense", "updated", expense)
	return c.JSON(expense)
}

// DELETE /api/expenses/:id
func (h *ExpenseHandler) Delete(c *fiber.Ctx) error {
	id, err := parseID(c)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "Invalid expense ID"})
	}

	expense, err := h.repo.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return c.Status(404).JSON(fiber.Map{"error": "Expense record does not exist"})
		}
		return c.Status(500).JSON(fiber.Map{"error": "Failed to fetch expense"})
	}

	if err := h.repo.Delete(id); err != nil {
		return c.Status(500).JSON(fiber.Map{"error": "Failed to delete expense"})
	}

	go h.hub.RecordChange("expense", "deleted", expense)
	return c.JSON(fiber.Map{"message": "Successfully deleted"})
}
