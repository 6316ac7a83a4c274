package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/usecase/todo"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/entrypoint/dto"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
)

// TodoController handles todo endpoints.
type TodoController struct {
	createUseCase   *todo.CreateTodoUseCase
	listUseCase     *todo.ListTodosUseCase
	updateUseCase   *todo.UpdateTodoUseCase
	completeUseCase *todo.CompleteTodoUseCase
	deleteUseCase   *todo.DeleteTodoUseCase
}

// NewTodoController creates a new todo controller instance.
func NewTodoController(
	createUseCase *todo.CreateTodoUseCase,
	listUseCase *todo.ListTodosUseCase,
	updateUseCase *todo.UpdateTodoUseCase,
	completeUseCase *todo.CompleteTodoUseCase,
	deleteUseCase *todo.DeleteTodoUseCase,
) *TodoController {
	return &TodoController{
		createUseCase:   createUseCase,
		listUseCase:     listUseCase,
		updateUseCase:   updateUseCase,
		completeUseCase: completeUseCase,
		deleteUseCase:   deleteUseCase,
	}
}

// Create handles POST /todos requests.
func (c *TodoController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTodoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingTodoFields),
		})
		return
	}

	input := todo.CreateTodoInput{
		UserID:   userID,
		Title:    req.Title,
		Deadline: req.Deadline,
		Priority: req.Priority,
	}
	if date, ok := parseDayField(ctx, "date", req.Date); ok {
		input.Date = date
	} else {
		return
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, todoResponse(output.Todo))
}

// List handles GET /todos requests. The optional filter query parameter
// selects a view: today, upcoming, completed or prioritize.
func (c *TodoController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := todo.ListTodosInput{
		UserID: userID,
		View:   ctx.Query("filter"),
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTodoListResponse(output.Todos))
}

// Update handles PATCH /todos/:id requests.
func (c *TodoController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	todoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid todo ID format",
		})
		return
	}

	var req dto.UpdateTodoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := todo.UpdateTodoInput{
		TodoID:   todoID,
		UserID:   userID,
		Title:    req.Title,
		Deadline: req.Deadline,
		Priority: req.Priority,
	}
	if date, ok := parseDayField(ctx, "date", req.Date); ok {
		input.Date = date
	} else {
		return
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, todoResponse(output.Todo))
}

// Complete handles PATCH /todos/:id/complete requests.
func (c *TodoController) Complete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	todoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid todo ID format",
		})
		return
	}

	var req dto.CompleteTodoRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := todo.CompleteTodoInput{
		TodoID:      todoID,
		UserID:      userID,
		IsCompleted: *req.IsCompleted,
	}

	output, err := c.completeUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTodoError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, todoResponse(output.Todo))
}

// Delete handles DELETE /todos/:id requests.
func (c *TodoController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	todoID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid todo ID format",
		})
		return
	}

	input := todo.DeleteTodoInput{
		TodoID: todoID,
		UserID: userID,
	}

	if err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleTodoError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// todoResponse builds a single-todo response with the current effective
// priority attached.
func todoResponse(t *entity.Todo) dto.TodoResponse {
	return dto.ToTodoResponse(&entity.TodoWithEffectivePriority{
		Todo:              t,
		EffectivePriority: todo.EffectivePriority(t, time.Now()),
	})
}

// parseDayField parses an optional YYYY-MM-DD body field. The second return
// value is false when the response has already been written.
func parseDayField(ctx *gin.Context, name string, raw *string) (*time.Time, bool) {
	if raw == nil {
		return nil, true
	}

	day, err := time.ParseInLocation("2006-01-02", *raw, time.Local)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &day, true
}

// handleTodoError handles todo errors and returns appropriate HTTP responses.
func (c *TodoController) handleTodoError(ctx *gin.Context, err error) {
	var todoErr *domainerror.TodoError
	if errors.As(err, &todoErr) {
		ctx.JSON(c.getStatusCodeForTodoError(todoErr.Code), dto.ErrorResponse{
			Error: todoErr.Message,
			Code:  string(todoErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTodoError maps todo error codes to HTTP status codes.
func (c *TodoController) getStatusCodeForTodoError(code domainerror.TodoErrorCode) int {
	switch code {
	case domainerror.ErrCodeTodoNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedTodo:
		return http.StatusForbidden
	case domainerror.ErrCodeInvalidPriority,
		domainerror.ErrCodeInvalidTodoFilter,
		domainerror.ErrCodeMissingTodoFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
