package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/usecase/journal"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/entrypoint/dto"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
)

// JournalController handles journal endpoints.
type JournalController struct {
	createUseCase *journal.CreateEntryUseCase
	listUseCase   *journal.ListEntriesUseCase
	getUseCase    *journal.GetEntryUseCase
	updateUseCase *journal.UpdateEntryUseCase
	deleteUseCase *journal.DeleteEntryUseCase
}

// NewJournalController creates a new journal controller instance.
func NewJournalController(
	createUseCase *journal.CreateEntryUseCase,
	listUseCase *journal.ListEntriesUseCase,
	getUseCase *journal.GetEntryUseCase,
	updateUseCase *journal.UpdateEntryUseCase,
	deleteUseCase *journal.DeleteEntryUseCase,
) *JournalController {
	return &JournalController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		getUseCase:    getUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /journal requests. The response includes the XP
// awarded, which is non-zero only for the first entry of the day.
func (c *JournalController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateJournalEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingJournalFields),
		})
		return
	}

	input := journal.CreateEntryInput{
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.CreateJournalEntryResponse{
		JournalEntryResponse: dto.ToJournalEntryResponse(output.Entry),
		XPAwarded:            output.XPAwarded,
	})
}

// List handles GET /journal requests.
func (c *JournalController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), journal.ListEntriesInput{
		UserID: userID,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve journal entries",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJournalEntryListResponse(output.Entries))
}

// Get handles GET /journal/:id requests.
func (c *JournalController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid journal entry ID format",
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), journal.GetEntryInput{
		EntryID: entryID,
		UserID:  userID,
	})
	if err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJournalEntryResponse(output.Entry))
}

// Update handles PATCH /journal/:id requests.
func (c *JournalController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid journal entry ID format",
		})
		return
	}

	var req dto.UpdateJournalEntryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := journal.UpdateEntryInput{
		EntryID: entryID,
		UserID:  userID,
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToJournalEntryResponse(output.Entry))
}

// Delete handles DELETE /journal/:id requests.
func (c *JournalController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	entryID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid journal entry ID format",
		})
		return
	}

	input := journal.DeleteEntryInput{
		EntryID: entryID,
		UserID:  userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleJournalError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// handleJournalError handles journal errors and returns appropriate HTTP responses.
func (c *JournalController) handleJournalError(ctx *gin.Context, err error) {
	var journalErr *domainerror.JournalError
	if errors.As(err, &journalErr) {
		ctx.JSON(c.getStatusCodeForJournalError(journalErr.Code), dto.ErrorResponse{
			Error: journalErr.Message,
			Code:  string(journalErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForJournalError maps journal error codes to HTTP status codes.
func (c *JournalController) getStatusCodeForJournalError(code domainerror.JournalErrorCode) int {
	switch code {
	case domainerror.ErrCodeJournalEntryNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedJournal:
		return http.StatusForbidden
	case domainerror.ErrCodeEmptyJournalContent,
		domainerror.ErrCodeMissingJournalFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
