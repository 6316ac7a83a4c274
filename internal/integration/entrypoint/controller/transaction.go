package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/usecase/account"
	"github.com/kairos-app/backend/internal/application/usecase/transaction"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/entrypoint/dto"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles transaction and account endpoints.
type TransactionController struct {
	createUseCase        *transaction.CreateTransactionUseCase
	listUseCase          *transaction.ListTransactionsUseCase
	updateUseCase        *transaction.UpdateTransactionUseCase
	deleteUseCase        *transaction.DeleteTransactionUseCase
	createAccountUseCase *account.CreateAccountUseCase
	listAccountsUseCase  *account.ListAccountsUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *transaction.CreateTransactionUseCase,
	listUseCase *transaction.ListTransactionsUseCase,
	updateUseCase *transaction.UpdateTransactionUseCase,
	deleteUseCase *transaction.DeleteTransactionUseCase,
	createAccountUseCase *account.CreateAccountUseCase,
	listAccountsUseCase *account.ListAccountsUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:        createUseCase,
		listUseCase:          listUseCase,
		updateUseCase:        updateUseCase,
		deleteUseCase:        deleteUseCase,
		createAccountUseCase: createAccountUseCase,
		listAccountsUseCase:  listAccountsUseCase,
	}
}

// Create handles POST /transactions requests.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTransactionFields),
		})
		return
	}

	accountID, err := uuid.Parse(req.AccountID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid account ID format",
		})
		return
	}

	input := transaction.CreateTransactionInput{
		UserID:    userID,
		AccountID: accountID,
		Amount:    req.Amount,
		Type:      entity.TransactionType(req.Type),
		Category:  req.Category,
		Merchant:  req.Merchant,
	}
	if req.Date != nil {
		input.Date = *req.Date
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests. Supports optional account_id,
// start_date, end_date and type query parameters; the response includes
// credit/debit/net totals over the filtered set.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := transaction.ListTransactionsInput{
		UserID: userID,
	}

	if raw := ctx.Query("account_id"); raw != "" {
		accountID, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid account_id format",
			})
			return
		}
		input.AccountID = &accountID
	}

	if startDate, ok := parseDayParam(ctx, "start_date"); ok {
		input.StartDate = startDate
	} else {
		return
	}
	if endDate, ok := parseDayParam(ctx, "end_date"); ok {
		if endDate != nil {
			end := endDate.AddDate(0, 0, 1).Add(-time.Nanosecond)
			input.EndDate = &end
		}
	} else {
		return
	}

	if raw := ctx.Query("type"); raw != "" {
		transactionType := entity.TransactionType(raw)
		if transactionType != entity.TransactionTypeCredit && transactionType != entity.TransactionTypeDebit {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid transaction type, expected credit or debit",
				Code:  string(domainerror.ErrCodeInvalidTransactionType),
			})
			return
		}
		input.Type = &transactionType
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, output.Totals))
}

// Update handles PATCH /transactions/:id requests.
func (c *TransactionController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	var req dto.UpdateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := transaction.UpdateTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
		Date:          req.Date,
		Amount:        req.Amount,
		Category:      req.Category,
		Merchant:      req.Merchant,
	}
	if req.Type != nil {
		transactionType := entity.TransactionType(*req.Type)
		input.Type = &transactionType
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionResponse(output.Transaction))
}

// Delete handles DELETE /transactions/:id requests.
func (c *TransactionController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	transactionID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid transaction ID format",
		})
		return
	}

	input := transaction.DeleteTransactionInput{
		TransactionID: transactionID,
		UserID:        userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// CreateAccount handles POST /accounts requests.
func (c *TransactionController) CreateAccount(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateAccountRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidAccountType),
		})
		return
	}

	input := account.CreateAccountInput{
		UserID: userID,
		Name:   req.Name,
		Type:   entity.AccountType(req.Type),
	}

	output, err := c.createAccountUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToAccountResponse(output.Account))
}

// ListAccounts handles GET /accounts requests.
func (c *TransactionController) ListAccounts(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listAccountsUseCase.Execute(ctx.Request.Context(), account.ListAccountsInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve accounts",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAccountListResponse(output.Accounts))
}

// handleTransactionError handles transaction errors and returns appropriate HTTP responses.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var transactionErr *domainerror.TransactionError
	if errors.As(err, &transactionErr) {
		ctx.JSON(c.getStatusCodeForTransactionError(transactionErr.Code), dto.ErrorResponse{
			Error: transactionErr.Message,
			Code:  string(transactionErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func (c *TransactionController) getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeTransactionNotFound,
		domainerror.ErrCodeAccountNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedTransaction,
		domainerror.ErrCodeUnauthorizedAccount:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidTransactionType,
		domainerror.ErrCodeNegativeAmount,
		domainerror.ErrCodeMissingTransactionFields,
		domainerror.ErrCodeInvalidAccountType:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
