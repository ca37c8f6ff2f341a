package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appuser "github.com/bookbuddy/server/internal/application/user"
	"github.com/bookbuddy/server/internal/domain/user"
	"github.com/bookbuddy/server/internal/interface/http/dto"
	"github.com/bookbuddy/server/internal/interface/http/middleware"
	"github.com/bookbuddy/server/pkg/response"
)

// UserHandler 用户HTTP处理器
// 设计说明：
// 1. Handler只负责HTTP相关的事情：解析请求、调用应用层、返回响应
// 2. 不包含业务逻辑（业务逻辑在domain和application层）
// 3. 命令走应用层用例，简单查询直接走领域服务
type UserHandler struct {
	registerUseCase      *appuser.RegisterUseCase
	loginUseCase         *appuser.LoginUseCase
	logoutUseCase        *appuser.LogoutUseCase
	updateProfileUseCase *appuser.UpdateProfileUseCase
	deleteUserUseCase    *appuser.DeleteUserUseCase
	userService          user.Service
}

// NewUserHandler 创建用户处理器
func NewUserHandler(
	registerUseCase *appuser.RegisterUseCase,
	loginUseCase *appuser.LoginUseCase,
	logoutUseCase *appuser.LogoutUseCase,
	updateProfileUseCase *appuser.UpdateProfileUseCase,
	deleteUserUseCase *appuser.DeleteUserUseCase,
	userService user.Service,
) *UserHandler {
	return &UserHandler{
		registerUseCase:      registerUseCase,
		loginUseCase:         loginUseCase,
		logoutUseCase:        logoutUseCase,
		updateProfileUseCase: updateProfileUseCase,
		deleteUserUseCase:    deleteUserUseCase,
		userService:          userService,
	}
}

// Register 用户注册
// @Summary      用户注册
// @Description  创建新用户账号
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.RegisterRequest true "注册信息"
// @Success      201 {object} response.Response{data=dto.UserResponse} "注册成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "用户名或邮箱已存在"
// @Router       /api/v1/users/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	// 1. 绑定并验证参数
	// 学习要点：Gin的ShouldBindJSON会自动校验binding tag
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 2. 调用应用层用例
	// 学习要点：Handler不直接调用domain层，而是通过application层
	result, err := h.registerUseCase.Execute(c.Request.Context(), appuser.RegisterRequest{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
		Password:  req.Password,
	})
	if err != nil {
		// 业务错误（如用户名已存在、密码强度不足）
		response.Error(c, err)
		return
	}

	// 3. 返回成功响应(HTTP 201)
	// 将application层的DTO转换为HTTP层的DTO
	response.Created(c, &dto.UserResponse{
		ID:        result.ID,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Username:  result.Username,
		Email:     result.Email,
	})
}

// Login 用户登录
// @Summary      用户登录
// @Description  验证用户名(或邮箱)与密码，返回JWT Token
// @Tags         用户
// @Accept       json
// @Produce      json
// @Param        request body dto.LoginRequest true "登录信息"
// @Success      200 {object} response.Response{data=dto.LoginResponse} "登录成功"
// @Failure      400 {object} response.Response "参数错误"
// @Failure      401 {object} response.Response "用户名或密码错误"
// @Router       /api/v1/users/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.loginUseCase.Execute(c.Request.Context(), appuser.LoginRequest{
		UsernameOrEmail: req.UsernameOrEmail,
		Password:        req.Password,
	})
	if err != nil {
		// 登录失败（用户不存在或密码错误）
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.LoginResponse{
		User: dto.UserResponse{
			ID:        result.User.ID,
			FirstName: result.User.FirstName,
			LastName:  result.User.LastName,
			Username:  result.User.Username,
			Email:     result.User.Email,
		},
		AccessToken:  result.AccessToken,
		RefreshToken: result.RefreshToken,
		ExpiresIn:    result.ExpiresIn,
	})
}

// Logout 用户登出
// @Summary      用户登出
// @Description  删除会话并将当前Token加入黑名单
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Success      200 {object} response.Response "登出成功"
// @Failure      401 {object} response.Response "未登录"
// @Router       /api/v1/users/logout [post]
func (h *UserHandler) Logout(c *gin.Context) {
	userID := middleware.GetUserID(c)
	accessToken := middleware.GetAccessToken(c)

	if err := h.logoutUseCase.Execute(c.Request.Context(), userID, accessToken); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "登出成功"})
}

// List 用户列表
// @Summary      用户列表
// @Description  查询全部用户
// @Tags         用户
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.UserResponse}
// @Router       /api/v1/users [get]
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.userService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.UserResponse, 0, len(users))
	for _, u := range users {
		list = append(list, &dto.UserResponse{
			ID:        u.ID,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Username:  u.Username,
			Email:     u.Email,
		})
	}

	response.Success(c, list)
}

// GetByID 查询用户详情
// @Summary      查询用户详情
// @Tags         用户
// @Produce      json
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [get]
func (h *UserHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	u, err := h.userService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
	})
}

// GetByUsername 按用户名查询用户
// @Summary      按用户名查询用户
// @Tags         用户
// @Produce      json
// @Param        username path string true "用户名"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/username/{username} [get]
func (h *UserHandler) GetByUsername(c *gin.Context) {
	username := c.Param("username")

	u, err := h.userService.GetByUsername(c.Request.Context(), username)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.UserResponse{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
	})
}

// Update 更新用户资料
// @Summary      更新用户资料
// @Description  部分更新，留空的字段保持原值
// @Tags         用户
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Param        request body dto.UpdateUserRequest true "更新内容"
// @Success      200 {object} response.Response{data=dto.UserResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户不存在"
// @Failure      409 {object} response.Response "用户名或邮箱已被占用"
// @Router       /api/v1/users/{id} [put]
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	var req dto.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.updateProfileUseCase.Execute(c.Request.Context(), appuser.UpdateProfileRequest{
		ID:        uint(id),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Username:  req.Username,
		Email:     req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.UserResponse{
		ID:        result.ID,
		FirstName: result.FirstName,
		LastName:  result.LastName,
		Username:  result.Username,
		Email:     result.Email,
	})
}

// Delete 删除用户
// @Summary      删除用户
// @Description  删除用户并级联清理其书架与追踪器（书评保留）
// @Tags         用户
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "用户ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/users/{id} [delete]
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	if err := h.deleteUserUseCase.Execute(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "删除成功"})
}
