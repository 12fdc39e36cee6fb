package handler

import (
	"context"
	"net/http"

	"github.com/eaglebank/ledger/shared/cqrs"
	"github.com/eaglebank/ledger/shared/middleware"
	"github.com/eaglebank/ledger/shared/models"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

// AccountCommander defines the write-side operations used by AccountHandler.
type AccountCommander interface {
	CreateAccount(context.Context, cqrs.CreateAccountCommand) (*models.Account, error)
	DeleteAccount(context.Context, cqrs.DeleteAccountCommand) error
}

// AccountQuerier defines the read-side operations used by AccountHandler.
type AccountQuerier interface {
	ListAccounts(context.Context, cqrs.ListAccountsQuery) ([]models.Account, error)
}

// AccountHandler handles account-related HTTP requests.
type AccountHandler struct {
	commands AccountCommander
	queries  AccountQuerier
}

// Balance is a pointer so that a missing field fails validation instead
// of decoding as zero.
type CreateAccountRequest struct {
	Balance *decimal.Decimal `json:"balance" validate:"required"`
}

func NewAccountHandler(commands AccountCommander, queries AccountQuerier) *AccountHandler {
	return &AccountHandler{commands: commands, queries: queries}
}

func (h *AccountHandler) CreateAccount(c *gin.Context) {
	var req CreateAccountRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	account, err := h.commands.CreateAccount(c.Request.Context(), cqrs.CreateAccountCommand{
		UserID:         c.Param("userId"),
		InitialBalance: *req.Balance,
	})
	if err != nil {
		middleware.RespondWithDomainError(c, err, "Failed to create account")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *AccountHandler) ListAccounts(c *gin.Context) {
	accounts, err := h.queries.ListAccounts(c.Request.Context(), cqrs.ListAccountsQuery{UserID: c.Param("userId")})
	if err != nil {
		middleware.RespondWithDomainError(c, err, "Failed to list accounts")
		return
	}

	c.JSON(http.StatusOK, accounts)
}

func (h *AccountHandler) DeleteAccount(c *gin.Context) {
	err := h.commands.DeleteAccount(c.Request.Context(), cqrs.DeleteAccountCommand{AccountID: c.Param("accountId")})
	if err != nil {
		middleware.RespondWithDomainError(c, err, "Failed to delete account")
		return
	}

	c.Status(http.StatusNoContent)
}
