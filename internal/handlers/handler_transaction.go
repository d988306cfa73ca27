package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_tracker/internal/core/analytics"
	portssvc "github.com/SscSPs/finance_tracker/internal/core/ports/services"
	"github.com/SscSPs/finance_tracker/internal/dto"
	"github.com/SscSPs/finance_tracker/internal/middleware"
	"github.com/gin-gonic/gin"
)

// transactionHandler handles HTTP requests related to transactions.
type transactionHandler struct {
	transactionService portssvc.TransactionSvcFacade
}

func newTransactionHandler(ts portssvc.TransactionSvcFacade) *transactionHandler {
	return &transactionHandler{transactionService: ts}
}

// registerTransactionRoutes registers routes related to the caller's transactions.
func registerTransactionRoutes(rg *gin.RouterGroup, transactionService portssvc.TransactionSvcFacade) {
	h := newTransactionHandler(transactionService)

	transactions := rg.Group("/transactions")
	{
		transactions.GET("", h.listTransactions)
		transactions.POST("", h.createTransaction)
		transactions.DELETE("/:transactionID", h.deleteTransaction)
	}
}

// listTransactions godoc
// @Summary List transactions
// @Description Lists the caller's transactions ordered by the requested key and direction. Defaults to newest date first.
// @Tags transactions
// @Produce  json
// @Param   sortBy query string false "Sort key" Enums(date, amount, category)
// @Param   sortDir query string false "Sort direction" Enums(asc, desc)
// @Success 200 {object} dto.ListTransactionsResponse
// @Failure 400 {object} ErrorResponse "Invalid sort key or direction"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to list transactions"
// @Security BearerAuth
// @Router /transactions [get]
func (h *transactionHandler) listTransactions(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListTransactionsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		logger.Warn("Failed to bind query for ListTransactions", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}
	key, err := analytics.ParseSortKey(params.SortBy)
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}
	dir, err := analytics.ParseSortDirection(params.SortDir)
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}

	txns, err := h.transactionService.ListTransactions(c.Request.Context(), userID, key, dir)
	if err != nil {
		respondError(c, err, "list transactions")
		return
	}

	c.JSON(http.StatusOK, dto.ToListTransactionsResponse(txns, key, dir))
}

// createTransaction godoc
// @Summary Record a transaction
// @Description Records an income or expense for the caller. Amount may be a JSON number or a numeric string.
// @Tags transactions
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateTransactionRequest true "Transaction details"
// @Success 201 {object} dto.TransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 500 {object} ErrorResponse "Failed to create transaction"
// @Security BearerAuth
// @Router /transactions [post]
func (h *transactionHandler) createTransaction(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var req dto.CreateTransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind JSON for CreateTransaction", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.transactionService.CreateTransaction(c.Request.Context(), userID, req)
	if err != nil {
		respondError(c, err, "create transaction")
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransactionResponse(*txn))
}

// deleteTransaction godoc
// @Summary Delete a transaction
// @Description Deletes one of the caller's transactions.
// @Tags transactions
// @Produce  json
// @Param   transactionID path string true "Transaction ID (UUID)"
// @Success 200 {object} dto.DeleteTransactionResponse
// @Failure 400 {object} ErrorResponse "Invalid transaction ID"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 500 {object} ErrorResponse "Failed to delete transaction"
// @Security BearerAuth
// @Router /transactions/{transactionID} [delete]
func (h *transactionHandler) deleteTransaction(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	transactionID := c.Param("transactionID")

	if err := h.transactionService.DeleteTransaction(c.Request.Context(), userID, transactionID); err != nil {
		respondError(c, err, "delete transaction")
		return
	}

	c.JSON(http.StatusOK, dto.DeleteTransactionResponse{OK: true})
}
