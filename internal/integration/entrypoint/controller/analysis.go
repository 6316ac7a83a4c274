package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kairos-app/backend/internal/application/usecase/analysis"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/entrypoint/dto"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
)

// AnalysisController handles cognitive analysis endpoints.
type AnalysisController struct {
	getUseCase     *analysis.GetAnalysisUseCase
	historyUseCase *analysis.GetHistoryUseCase
}

// NewAnalysisController creates a new analysis controller instance.
func NewAnalysisController(
	getUseCase *analysis.GetAnalysisUseCase,
	historyUseCase *analysis.GetHistoryUseCase,
) *AnalysisController {
	return &AnalysisController{
		getUseCase:     getUseCase,
		historyUseCase: historyUseCase,
	}
}

// Get handles GET /analysis requests. Each call recomputes today's snapshot
// from the user's current habits, todos, journal and transactions.
func (c *AnalysisController) Get(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), analysis.GetAnalysisInput{
		UserID: userID,
	})
	if err != nil {
		var analysisErr *domainerror.AnalysisError
		if errors.As(err, &analysisErr) {
			status := http.StatusInternalServerError
			if analysisErr.Code == domainerror.ErrCodeAnalysisNotFound {
				status = http.StatusNotFound
			}
			ctx.JSON(status, dto.ErrorResponse{
				Error: analysisErr.Message,
				Code:  string(analysisErr.Code),
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to compute analysis",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisResponse(output.Analysis))
}

// GetHistory handles GET /analysis/history requests. Without a range it
// returns the trailing 30 days of stored snapshots, oldest first.
func (c *AnalysisController) GetHistory(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	startDate, ok := parseDayParam(ctx, "start_date")
	if !ok {
		return
	}
	endDate, ok := parseDayParam(ctx, "end_date")
	if !ok {
		return
	}

	output, err := c.historyUseCase.Execute(ctx.Request.Context(), analysis.GetHistoryInput{
		UserID:    userID,
		StartDate: startDate,
		EndDate:   endDate,
	})
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to load analysis history",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToAnalysisHistoryResponse(output.Snapshots))
}
