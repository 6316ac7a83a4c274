package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/kairos-app/backend/internal/application/usecase/habit"
	"github.com/kairos-app/backend/internal/domain/entity"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/entrypoint/dto"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
)

// HabitController handles habit endpoints.
type HabitController struct {
	createUseCase *habit.CreateHabitUseCase
	listUseCase   *habit.ListHabitsUseCase
	logUseCase    *habit.LogHabitUseCase
	updateUseCase *habit.UpdateHabitUseCase
	deleteUseCase *habit.DeleteHabitUseCase
}

// NewHabitController creates a new habit controller instance.
func NewHabitController(
	createUseCase *habit.CreateHabitUseCase,
	listUseCase *habit.ListHabitsUseCase,
	logUseCase *habit.LogHabitUseCase,
	updateUseCase *habit.UpdateHabitUseCase,
	deleteUseCase *habit.DeleteHabitUseCase,
) *HabitController {
	return &HabitController{
		createUseCase: createUseCase,
		listUseCase:   listUseCase,
		logUseCase:    logUseCase,
		updateUseCase: updateUseCase,
		deleteUseCase: deleteUseCase,
	}
}

// Create handles POST /habits requests.
func (c *HabitController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeMissingHabitFields),
		})
		return
	}

	input := habit.CreateHabitInput{
		UserID:   userID,
		Name:     req.Name,
		Category: req.Category,
	}
	if req.Frequency != nil {
		frequency := entity.HabitFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToHabitResponse(output.Habit))
}

// List handles GET /habits requests. The optional week_start/week_end query
// parameters bound the log window returned with each habit.
func (c *HabitController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := habit.ListHabitsInput{
		UserID: userID,
	}

	if weekStart, ok := parseDayParam(ctx, "week_start"); ok {
		input.WeekStart = weekStart
	} else {
		return
	}
	if weekEnd, ok := parseDayParam(ctx, "week_end"); ok {
		input.WeekEnd = weekEnd
	} else {
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve habits",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitListResponse(output.Habits))
}

// Log handles POST /habits/log requests: toggles one day's status and
// returns the recomputed streaks.
func (c *HabitController) Log(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.LogHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
			Code:  string(domainerror.ErrCodeInvalidLogStatus),
		})
		return
	}

	habitID, err := uuid.Parse(req.HabitID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	input := habit.LogHabitInput{
		UserID:  userID,
		HabitID: habitID,
		Status:  entity.HabitLogStatus(req.Status),
	}

	if req.Date != nil {
		date, err := time.ParseInLocation("2006-01-02", *req.Date, time.Local)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid date format, expected YYYY-MM-DD",
			})
			return
		}
		input.Date = &date
	}

	output, err := c.logUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LogHabitResponse{
		Success:       true,
		CurrentStreak: output.CurrentStreak,
		BestStreak:    output.BestStreak,
	})
}

// Update handles PATCH /habits/:id requests.
func (c *HabitController) Update(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	var req dto.UpdateHabitRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body: " + err.Error(),
		})
		return
	}

	input := habit.UpdateHabitInput{
		UserID:   userID,
		HabitID:  habitID,
		Name:     req.Name,
		Category: req.Category,
	}
	if req.Frequency != nil {
		frequency := entity.HabitFrequency(*req.Frequency)
		input.Frequency = &frequency
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToHabitResponse(output.Habit))
}

// Delete handles DELETE /habits/:id requests.
func (c *HabitController) Delete(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	habitID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid habit ID format",
		})
		return
	}

	input := habit.DeleteHabitInput{
		UserID:  userID,
		HabitID: habitID,
	}

	if _, err := c.deleteUseCase.Execute(ctx.Request.Context(), input); err != nil {
		c.handleHabitError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}

// parseDayParam parses an optional YYYY-MM-DD query parameter. The second
// return value is false when the response has already been written.
func parseDayParam(ctx *gin.Context, name string) (*time.Time, bool) {
	raw := ctx.Query(name)
	if raw == "" {
		return nil, true
	}

	day, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid " + name + " format, expected YYYY-MM-DD",
		})
		return nil, false
	}
	return &day, true
}

// handleHabitError handles habit errors and returns appropriate HTTP responses.
func (c *HabitController) handleHabitError(ctx *gin.Context, err error) {
	var habitErr *domainerror.HabitError
	if errors.As(err, &habitErr) {
		ctx.JSON(c.getStatusCodeForHabitError(habitErr.Code), dto.ErrorResponse{
			Error: habitErr.Message,
			Code:  string(habitErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForHabitError maps habit error codes to HTTP status codes.
func (c *HabitController) getStatusCodeForHabitError(code domainerror.HabitErrorCode) int {
	switch code {
	case domainerror.ErrCodeHabitNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeUnauthorizedHabit:
		return http.StatusForbidden
	case domainerror.ErrCodeDuplicateHabitLog:
		return http.StatusConflict
	case domainerror.ErrCodeInvalidHabitFrequency,
		domainerror.ErrCodeInvalidLogStatus,
		domainerror.ErrCodeMissingHabitFields:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
