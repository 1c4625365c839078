package controller

import (
	"time"

	"github.com/VeyselCerav/kelime/internal/service"
	"github.com/VeyselCerav/kelime/internal/util"

	"github.com/gin-gonic/gin"
)

type ProgressController struct {
	ProgressService *service.ProgressService
}

func NewProgressController(progressService *service.ProgressService) *ProgressController {
	return &ProgressController{ProgressService: progressService}
}

// Overview godoc
// @Summary 学习进度总览
// @Description 学会单词数、连续天数、徽章与最近 7 天柱状图数据
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.ProgressOverview}
// @Router /api/progress [get]
func (c *ProgressController) Overview(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	overview, err := c.ProgressService.Overview(claims.UserID, time.Now())
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, overview)
}

type WordRef struct {
	WordID uint `json:"wordId" binding:"required"`
}

type MarkLearnedRequest struct {
	WordID    uint  `json:"wordId" binding:"required"`
	IsLearned *bool `json:"isLearned"`
}

// MarkLearned godoc
// @Summary 设置单词学习状态
// @Description isLearned 缺省视为已学会；学会的单词同时从难词表移除
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body MarkLearnedRequest true "单词 ID 与状态"
// @Success 200 {object} util.Response
// @Router /api/learned-words [post]
func (c *ProgressController) MarkLearned(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req MarkLearnedRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	var err error
	if req.IsLearned == nil || *req.IsLearned {
		err = c.ProgressService.MarkLearned(claims.UserID, req.WordID)
	} else {
		err = c.ProgressService.MarkUnlearned(claims.UserID, req.WordID)
	}
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// UnlearnedList godoc
// @Summary 难词表
// @Tags 进度
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=[]model.UnlearnedWord}
// @Router /api/unlearned-words [get]
func (c *ProgressController) UnlearnedList(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	rows, err := c.ProgressService.UnlearnedList(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, rows)
}

// MarkUnlearned godoc
// @Summary 把单词加入难词表
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body WordRef true "单词 ID"
// @Success 200 {object} util.Response
// @Router /api/unlearned-words [post]
func (c *ProgressController) MarkUnlearned(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req WordRef
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.MarkUnlearned(claims.UserID, req.WordID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}

// RemoveUnlearned godoc
// @Summary 把单词移出难词表
// @Description 单词不在表中时也返回成功
// @Tags 进度
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body WordRef true "单词 ID"
// @Success 200 {object} util.Response
// @Router /api/unlearned-words [delete]
func (c *ProgressController) RemoveUnlearned(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req WordRef
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.ProgressService.RemoveUnlearned(claims.UserID, req.WordID); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, nil)
}
