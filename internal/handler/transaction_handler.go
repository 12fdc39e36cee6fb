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

// TransactionCommander defines the write-side operations used by TransactionHandler.
type TransactionCommander interface {
	Deposit(context.Context, cqrs.DepositCommand) (*models.Account, error)
	Withdraw(context.Context, cqrs.WithdrawCommand) (*models.Account, error)
}

// TransactionQuerier defines the read-side operations used by TransactionHandler.
type TransactionQuerier interface {
	ListTransactions(context.Context, cqrs.ListTransactionsQuery) ([]models.Transaction, error)
}

// TransactionHandler handles deposits, withdrawals and ledger listings.
type TransactionHandler struct {
	commands TransactionCommander
	queries  TransactionQuerier
}

type AmountRequest struct {
	Amount *decimal.Decimal `json:"amount" validate:"required"`
}

func NewTransactionHandler(commands TransactionCommander, queries TransactionQuerier) *TransactionHandler {
	return &TransactionHandler{commands: commands, queries: queries}
}

// Deposit and Withdraw respond with the updated account.
func (h *TransactionHandler) Deposit(c *gin.Context) {
	var req AmountRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	account, err := h.commands.Deposit(c.Request.Context(), cqrs.DepositCommand{
		AccountID: c.Param("accountId"),
		Amount:    *req.Amount,
	})
	if err != nil {
		middleware.RespondWithDomainError(c, err, "Failed to deposit")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *TransactionHandler) Withdraw(c *gin.Context) {
	var req AmountRequest
	if !middleware.BindAndValidate(c, &req) {
		return
	}

	account, err := h.commands.Withdraw(c.Request.Context(), cqrs.WithdrawCommand{
		AccountID: c.Param("accountId"),
		Amount:    *req.Amount,
	})
	if err != nil {
		middleware.RespondWithDomainError(c, err, "Failed to withdraw")
		return
	}

	c.JSON(http.StatusOK, account)
}

func (h *TransactionHandler) ListTransactions(c *gin.Context) {
	txs, err := h.queries.ListTransactions(c.Request.Context(), cqrs.ListTransactionsQuery{AccountID: c.Param("accountId")})
	if err != nil {
		middleware.RespondWithDomainError(c, err, "Failed to list transactions")
		return
	}

	c.JSON(http.StatusOK, txs)
}
