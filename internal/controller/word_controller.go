package controller

import (
	"errors"
	"io"

	"github.com/VeyselCerav/kelime/internal/service"
	"github.com/VeyselCerav/kelime/internal/util"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type WordController struct {
	WordService *service.WordService
}

func NewWordController(wordService *service.WordService) *WordController {
	return &WordController{WordService: wordService}
}

// List godoc
// @Summary 单词列表
// @Description 不带 week 参数返回全部单词
// @Tags 单词
// @Produce  json
// @Param   week query int false "周次"
// @Success 200 {object} util.Response{data=[]model.Word}
// @Router /api/words [get]
func (c *WordController) List(ctx *gin.Context) {
	week := util.ParseIntDefault(ctx.Query("week"), 0)
	if week < 0 {
		util.BadRequest(ctx, "week must be positive")
		return
	}

	words, err := c.WordService.List(ctx.Request.Context(), week)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, words)
}

type CreateWordRequest struct {
	English string `json:"english" binding:"required"`
	Turkish string `json:"turkish" binding:"required"`
	Week    int    `json:"week" binding:"required,min=1"`
}

// Create godoc
// @Summary 新增单词
// @Tags 单词
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CreateWordRequest true "单词内容"
// @Success 201 {object} util.Response{data=model.Word}
// @Failure 400 {object} util.Response
// @Router /api/admin/words [post]
func (c *WordController) Create(ctx *gin.Context) {
	var req CreateWordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	word, err := c.WordService.Create(ctx.Request.Context(), req.English, req.Turkish, req.Week)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Created(ctx, word)
}

// Delete godoc
// @Summary 删除单词
// @Tags 单词
// @Produce  json
// @Security BearerAuth
// @Param   id path int true "单词 ID"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response
// @Router /api/admin/words/{id} [delete]
func (c *WordController) Delete(ctx *gin.Context) {
	id := util.MustParseUint(ctx.Param("id"))
	if id == 0 {
		util.BadRequest(ctx, "invalid word id")
		return
	}

	if err := c.WordService.Delete(ctx.Request.Context(), id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, nil)
}

// Import godoc
// @Summary 批量导入单词
// @Description 上传 xlsx，列依次为 english / turkish / week，首行为表头
// @Tags 单词
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "xlsx 文件"
// @Success 200 {object} util.Response{data=service.ImportResult}
// @Failure 400 {object} util.Response
// @Router /api/admin/words/import [post]
func (c *WordController) Import(ctx *gin.Context) {
	fileHeader, err := ctx.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	defer f.Close()

	if _, err := util.ValidateMimeType(f, util.AllowedSpreadsheetTypes); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	if _, err := f.Seek(0, io.SeekStart); err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	result, err := c.WordService.ImportXLSX(ctx.Request.Context(), f)
	if err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}
	util.Success(ctx, result)
}
