package controller

import (
	"errors"
	"net/http"

	"github.com/VeyselCerav/kelime/internal/service"
	"github.com/VeyselCerav/kelime/internal/util"

	"github.com/gin-gonic/gin"
)

type AuthController struct {
	AuthService *service.AuthService
	IsRelease   bool // 是否为生产环境
}

func NewAuthController(authService *service.AuthService, isRelease bool) *AuthController {
	return &AuthController{
		AuthService: authService,
		IsRelease:   isRelease,
	}
}

// Register godoc
// @Summary 注册新用户
// @Description 注册后发送邮箱验证链接，验证通过才能登录
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.RegisterInput true "用户注册信息"
// @Success 201 {object} util.Response{data=object} "创建成功"
// @Failure 400 {object} util.Response "请求参数错误"
// @Failure 409 {object} util.Response "用户名或邮箱已存在"
// @Router /api/register [post]
func (c *AuthController) Register(ctx *gin.Context) {
	var req service.RegisterInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.AuthService.Register(req)
	if err != nil {
		if errors.Is(err, util.ErrUserExists) {
			util.Error(ctx, http.StatusConflict, "Username or email already registered")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, gin.H{"id": user.ID, "username": user.Username})
}

// Login godoc
// @Summary 用户登录
// @Description 用户名或邮箱 + 密码换取 JWT，同时写入 token Cookie
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body service.LoginInput true "登录凭据"
// @Success 200 {object} util.Response{data=service.LoginOutput}
// @Failure 401 {object} util.Response "凭据错误"
// @Failure 403 {object} util.Response "邮箱未验证"
// @Router /api/login [post]
func (c *AuthController) Login(ctx *gin.Context) {
	var req service.LoginInput
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	out, err := c.AuthService.Login(req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrInvalidCredentials):
			util.Error(ctx, http.StatusUnauthorized, "Invalid username or password")
		case errors.Is(err, util.ErrEmailNotVerified):
			util.Error(ctx, http.StatusForbidden, "Email address not verified")
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.SetSameSite(http.SameSiteLaxMode)
	ctx.SetCookie("token", out.Token, int(c.AuthService.JWT.ExpireTime.Seconds()), "/", "", c.IsRelease, true)

	util.Success(ctx, out)
}

// Logout godoc
// @Summary 退出登录
// @Description 清除 token Cookie
// @Tags 认证
// @Produce  json
// @Success 200 {object} util.Response
// @Router /api/logout [post]
func (c *AuthController) Logout(ctx *gin.Context) {
	ctx.SetCookie("token", "", -1, "/", "", c.IsRelease, true)
	util.Success(ctx, nil)
}

// VerifyEmail godoc
// @Summary 邮箱验证
// @Description 校验注册邮件里的令牌，query 或 body 二选一
// @Tags 认证
// @Produce  json
// @Param   token query string false "验证令牌"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "令牌无效或已过期"
// @Router /api/auth/verify [post]
func (c *AuthController) VerifyEmail(ctx *gin.Context) {
	token := ctx.Query("token")
	if token == "" {
		var req struct {
			Token string `json:"token"`
		}
		if err := ctx.ShouldBindJSON(&req); err == nil {
			token = req.Token
		}
	}

	err := c.AuthService.VerifyEmail(token)
	if err != nil {
		if errors.Is(err, util.ErrInvalidToken) {
			util.BadRequest(ctx, "Invalid or expired token")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"verified": true})
}

type ResetPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// RequestPasswordReset godoc
// @Summary 申请密码重置
// @Description 发送重置邮件；无论邮箱是否存在都返回成功，避免账号枚举
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body ResetPasswordRequest true "注册邮箱"
// @Success 200 {object} util.Response
// @Failure 429 {object} util.Response "请求过于频繁"
// @Router /api/auth/reset-password [post]
func (c *AuthController) RequestPasswordReset(ctx *gin.Context) {
	var req ResetPasswordRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.RequestPasswordReset(req.Email); err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	util.Success(ctx, gin.H{"message": "If the email exists, a reset link has been sent"})
}

type ConfirmResetRequest struct {
	Token    string `json:"token" binding:"required"`
	Password string `json:"password" binding:"required,min=6"`
}

// ConfirmPasswordReset godoc
// @Summary 完成密码重置
// @Description 用邮件令牌设置新密码
// @Tags 认证
// @Accept  json
// @Produce  json
// @Param   body body ConfirmResetRequest true "令牌与新密码"
// @Success 200 {object} util.Response
// @Failure 400 {object} util.Response "令牌无效或已过期"
// @Router /api/auth/reset-password/confirm [post]
func (c *AuthController) ConfirmPasswordReset(ctx *gin.Context) {
	var req ConfirmResetRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	if err := c.AuthService.ConfirmPasswordReset(req.Token, req.Password); err != nil {
		if errors.Is(err, util.ErrInvalidToken) {
			util.BadRequest(ctx, "Invalid or expired token")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, gin.H{"message": "Password updated"})
}

// Profile godoc
// @Summary 当前用户信息
// @Tags 认证
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.User}
// @Failure 401 {object} util.Response
// @Router /api/profile [get]
func (c *AuthController) Profile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	user, err := c.AuthService.GetCurrentUser(claims.UserID)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	util.Success(ctx, user)
}
