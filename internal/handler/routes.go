package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Register mounts the health check and the /api/v1 routes on r.
func Register(r gin.IRouter, users *UserHandler, accounts *AccountHandler, transactions *TransactionHandler) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	v1 := r.Group("/api/v1")
	{
		v1.POST("/users", users.CreateUser)
		v1.GET("/users/:userId", users.GetUser)
		v1.GET("/users/:userId/accounts", accounts.ListAccounts)
		v1.POST("/users/:userId/accounts", accounts.CreateAccount)

		v1.DELETE("/accounts/:accountId", accounts.DeleteAccount)
		v1.GET("/accounts/:accountId/transactions", transactions.ListTransactions)
		v1.POST("/accounts/:accountId/transactions/deposit", transactions.Deposit)
		v1.POST("/accounts/:accountId/transactions/withdraw", transactions.Withdraw)

		// older clients list transactions under the singular prefix
		v1.GET("/account/:accountId/transactions", transactions.ListTransactions)
	}
}
