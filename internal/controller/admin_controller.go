package controller

import (
	"errors"
	"net/http"
	"time"

	"github.com/VeyselCerav/kelime/internal/service"
	"github.com/VeyselCerav/kelime/internal/util"

	"github.com/gin-gonic/gin"
)

type AdminController struct {
	UserService  *service.UserService
	StatsService *service.StatsService
}

func NewAdminController(userService *service.UserService, statsService *service.StatsService) *AdminController {
	return &AdminController{
		UserService:  userService,
		StatsService: statsService,
	}
}

// Statistics godoc
// @Summary 平台统计
// @Description 用户/单词/学习记录总量、每周词条分布、最近 7 天学会数
// @Tags 管理
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.AdminStatistics}
// @Router /api/admin/statistics [get]
func (c *AdminController) Statistics(ctx *gin.Context) {
	stats, err := c.StatsService.Statistics(time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, stats)
}

// ListUsers godoc
// @Summary 用户列表
// @Tags 管理
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.User}
// @Router /api/admin/users [get]
func (c *AdminController) ListUsers(ctx *gin.Context) {
	users, err := c.UserService.ListUsers()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, users)
}

// DeleteUser godoc
// @Summary 删除用户
// @Description 连带删除其学习数据；管理员不能删除自己
// @Tags 管理
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "用户 ID"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "不能删除自己"
// @Failure 404 {object} util.Response
// @Router /api/admin/users/{id} [delete]
func (c *AdminController) DeleteUser(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	targetID := util.MustParseUint(ctx.Param("id"))
	if targetID == 0 {
		util.BadRequest(ctx, "invalid user id")
		return
	}

	err := c.UserService.DeleteUser(targetID, claims.UserID)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrSelfDelete):
			util.Error(ctx, http.StatusBadRequest, "Admins cannot delete their own account")
		case errors.Is(err, util.ErrUserNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}
