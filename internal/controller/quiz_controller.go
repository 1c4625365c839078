package controller

import (
	"errors"

	"github.com/VeyselCerav/kelime/internal/service"
	"github.com/VeyselCerav/kelime/internal/util"
	"github.com/VeyselCerav/kelime/pkg/monitoring"

	"github.com/gin-gonic/gin"
)

type QuizController struct {
	QuizService *service.QuizService
}

func NewQuizController(quizService *service.QuizService) *QuizController {
	return &QuizController{QuizService: quizService}
}

// Questions godoc
// @Summary 生成测验题目
// @Description 乱序选择题，每题 4 个选项；词库不足 4 个单词时返回 400
// @Tags 测验
// @Produce  json
// @Security BearerAuth
// @Param   week query int false "只从指定周次出题"
// @Param   limit query int false "题目数量，默认 10"
// @Success 200 {object} util.Response{data=[]model.Question}
// @Failure 400 {object} util.Response "词库不足"
// @Router /api/quiz [get]
func (c *QuizController) Questions(ctx *gin.Context) {
	week := util.ParseIntDefault(ctx.Query("week"), 0)
	limit := util.ParseIntDefault(ctx.Query("limit"), util.DefaultQuizLimit)

	questions, err := c.QuizService.Questions(week, limit)
	if err != nil {
		if errors.Is(err, util.ErrInsufficientWords) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, questions)
}

type SubmitQuizRequest struct {
	Answers []service.QuizAnswer `json:"answers" binding:"required"`
}

// Submit godoc
// @Summary 提交答卷
// @Description 批改并写入学习进度，答对条目计入当日目标
// @Tags 测验
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body SubmitQuizRequest true "逐题答案"
// @Success 200 {object} util.Response{data=model.QuizResult}
// @Failure 400 {object} util.Response "答卷为空"
// @Router /api/quiz/submit [post]
func (c *QuizController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.QuizService.Submit(claims.UserID, req.Answers)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrEmptyQuizSubmission):
			util.BadRequest(ctx, err.Error())
		case errors.Is(err, util.ErrWordNotFound):
			util.NotFound(ctx)
		default:
			util.LogInternalError(ctx, err)
		}
		monitoring.QuizSubmissions.WithLabelValues("error").Inc()
		return
	}

	monitoring.QuizSubmissions.WithLabelValues("ok").Inc()
	util.Success(ctx, result)
}
