package handlers

import (
	"errors"

	"daswos/internal/services/ledger"
	"daswos/internal/utils"
	"daswos/internal/validation"

	"github.com/gofiber/fiber/v2"
)

type LedgerHandler struct {
	ledgerService ledger.Service
}

func NewLedgerHandler(ledgerService ledger.Service) *LedgerHandler {
	return &LedgerHandler{
		ledgerService: ledgerService,
	}
}

func (h *LedgerHandler) Transfer(c *fiber.Ctx) error {
	var input validation.TransferInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if v := validation.ValidateTransfer(input); !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	entry, err := h.ledgerService.Transfer(c.Context(), ledger.TransferRequest{
		FromUserID:  input.FromUserID,
		ToUserID:    input.ToUserID,
		Amount:      input.Amount,
		Type:        input.Type,
		ReferenceID: input.ReferenceID,
		Description: input.Description,
		Metadata:    input.Metadata,
	})
	if err != nil {
		return ledgerError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"transaction": entry,
	})
}

func (h *LedgerHandler) Credit(c *fiber.Ctx) error {
	var input validation.CreditInput
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if v := validation.ValidateCredit(input); !v.Valid() {
		return utils.BadRequest(c, v.First())
	}

	entry, err := h.ledgerService.Credit(c.Context(), ledger.CreditRequest{
		ToUserID:    input.ToUserID,
		Amount:      input.Amount,
		Type:        input.Type,
		ReferenceID: input.ReferenceID,
		Description: input.Description,
		Metadata:    input.Metadata,
	})
	if err != nil {
		return ledgerError(c, err)
	}

	return utils.Created(c, fiber.Map{
		"transaction": entry,
	})
}

func (h *LedgerHandler) ListTransactions(c *fiber.Ctx) error {
	userID, err := parseUserID(c, "userID")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	p := utils.ParsePagination(c, ledger.MaxHistoryLimit)
	transactions, total, err := h.ledgerService.ListTransactions(c.Context(), userID, p.Limit, p.Offset)
	if err != nil {
		return ledgerError(c, err)
	}
	p.Total = total

	return utils.Success(c, utils.PaginatedResponse(p, transactions))
}

// ledgerError translates the service error taxonomy into HTTP statuses.
func ledgerError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, ledger.ErrInvalidAmount),
		errors.Is(err, ledger.ErrInvalidType),
		errors.Is(err, ledger.ErrSelfTransfer):
		return utils.BadRequest(c, err.Error())
	case errors.Is(err, ledger.ErrWalletNotFound):
		return utils.NotFound(c, err.Error())
	case errors.Is(err, ledger.ErrInsufficientBalance):
		return utils.UnprocessableEntity(c, err.Error())
	case errors.Is(err, ledger.ErrStorageConflict):
		return utils.Conflict(c, err.Error())
	default:
		return utils.InternalError(c, "Operation failed, please retry")
	}
}
