package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/kairos-app/backend/internal/application/usecase/gamification"
	domainerror "github.com/kairos-app/backend/internal/domain/error"
	"github.com/kairos-app/backend/internal/integration/entrypoint/dto"
	"github.com/kairos-app/backend/internal/integration/entrypoint/middleware"
)

// LeaderboardController handles gamification endpoints.
type LeaderboardController struct {
	getUseCase    *gamification.GetLeaderboardUseCase
	myRankUseCase *gamification.GetMyRankUseCase
}

// NewLeaderboardController creates a new leaderboard controller instance.
func NewLeaderboardController(
	getUseCase *gamification.GetLeaderboardUseCase,
	myRankUseCase *gamification.GetMyRankUseCase,
) *LeaderboardController {
	return &LeaderboardController{
		getUseCase:    getUseCase,
		myRankUseCase: myRankUseCase,
	}
}

// Get handles GET /leaderboard requests. The optional limit query parameter
// caps the number of returned entries.
func (c *LeaderboardController) Get(ctx *gin.Context) {
	if _, ok := middleware.GetUserIDFromContext(ctx); !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	input := gamification.GetLeaderboardInput{}
	if raw := ctx.Query("limit"); raw != "" {
		limit, err := strconv.Atoi(raw)
		if err != nil || limit < 1 {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid limit, expected a positive integer",
			})
			return
		}
		input.Limit = limit
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve leaderboard",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.ToLeaderboardResponse(output.Entries))
}

// GetMyRank handles GET /leaderboard/me requests. Rank is 0 when the user
// has no leaderboard position yet.
func (c *LeaderboardController) GetMyRank(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "User not authenticated",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.myRankUseCase.Execute(ctx.Request.Context(), gamification.GetMyRankInput{
		UserID: userID,
	})
	if err != nil {
		var authErr *domainerror.AuthError
		if errors.As(err, &authErr) && authErr.Code == domainerror.ErrCodeUserNotFound {
			ctx.JSON(http.StatusNotFound, dto.ErrorResponse{
				Error: authErr.Message,
				Code:  string(authErr.Code),
			})
			return
		}

		ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
			Error: "Failed to retrieve rank",
		})
		return
	}

	ctx.JSON(http.StatusOK, dto.MyRankResponse{
		UserID: output.Entry.UserID.String(),
		XP:     output.Entry.XP,
		Level:  output.Level,
		Rank:   output.Entry.Rank,
	})
}
