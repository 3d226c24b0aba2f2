package handlers

import (
	"errors"
	"strconv"

	"daswos/internal/services/ledger"
	"daswos/internal/utils"

	"github.com/gofiber/fiber/v2"
)

type WalletHandler struct {
	ledgerService ledger.Service
}

func NewWalletHandler(ledgerService ledger.Service) *WalletHandler {
	return &WalletHandler{
		ledgerService: ledgerService,
	}
}

// parseUserID reads a numeric user id path parameter.
func parseUserID(c *fiber.Ctx, param string) (uint, error) {
	id, err := strconv.ParseUint(c.Params(param), 10, 32)
	if err != nil || id == 0 {
		return 0, errors.New("invalid user id")
	}
	return uint(id), nil
}

func (h *WalletHandler) CreateWallet(c *fiber.Ctx) error {
	var input struct {
		UserID uint `json:"user_id"`
	}
	if err := c.BodyParser(&input); err != nil {
		return utils.BadRequest(c, "Invalid request format")
	}
	if input.UserID == 0 {
		return utils.BadRequest(c, "user_id must be provided")
	}

	wallet, err := h.ledgerService.CreateWallet(c.Context(), input.UserID)
	if err != nil {
		if errors.Is(err, ledger.ErrWalletExists) {
			return utils.Conflict(c, "Wallet already exists")
		}
		return utils.InternalError(c, "Failed to create wallet")
	}

	return utils.Created(c, fiber.Map{
		"wallet": wallet,
	})
}

func (h *WalletHandler) GetWallet(c *fiber.Ctx) error {
	userID, err := parseUserID(c, "userID")
	if err != nil {
		return utils.BadRequest(c, err.Error())
	}

	wallet, err := h.ledgerService.GetWallet(c.Context(), userID)
	if err != nil {
		if errors.Is(err, ledger.ErrWalletNotFound) {
			return utils.NotFound(c, "Wallet not found")
		}
		return utils.InternalError(c, "Failed to get wallet")
	}

	return utils.Success(c, fiber.Map{
		"wallet": wallet,
	})
}
