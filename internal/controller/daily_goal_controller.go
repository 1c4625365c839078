package controller

import (
	"time"

	"github.com/VeyselCerav/kelime/internal/service"
	"github.com/VeyselCerav/kelime/internal/util"

	"github.com/gin-gonic/gin"
)

type DailyGoalController struct {
	DailyGoalService *service.DailyGoalService
}

func NewDailyGoalController(dailyGoalService *service.DailyGoalService) *DailyGoalController {
	return &DailyGoalController{DailyGoalService: dailyGoalService}
}

// Today godoc
// @Summary 今日目标
// @Description 当天没有记录时按默认目标创建
// @Tags 每日目标
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.DailyGoal}
// @Router /api/daily-goal [get]
func (c *DailyGoalController) Today(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	goal, err := c.DailyGoalService.Today(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}

type UpdateGoalRequest struct {
	Target   *int `json:"target" binding:"omitempty,min=1"`
	Achieved *int `json:"achieved" binding:"omitempty,min=0"`
}

// Update godoc
// @Summary 更新今日目标
// @Description 缺省字段保持原值，completed 由 achieved >= target 推导
// @Tags 每日目标
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body UpdateGoalRequest true "目标与进度"
// @Success 200 {object} util.Response{data=model.DailyGoal}
// @Failure 400 {object} util.Response
// @Router /api/daily-goal [put]
func (c *DailyGoalController) Update(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req UpdateGoalRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	goal, err := c.DailyGoalService.Update(claims.UserID, time.Now(), req.Target, req.Achieved)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, goal)
}
