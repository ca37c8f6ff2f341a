package user

import (
	"context"

	"github.com/bookbuddy/server/internal/domain/user"
)

// UpdateProfileUseCase 更新用户信息用例
// 设计说明：部分更新语义——请求中留空的字段不覆盖原值
type UpdateProfileUseCase struct {
	userService user.Service
}

// NewUpdateProfileUseCase 创建更新用户信息用例
func NewUpdateProfileUseCase(userService user.Service) *UpdateProfileUseCase {
	return &UpdateProfileUseCase{userService: userService}
}

// Execute 执行更新
func (uc *UpdateProfileUseCase) Execute(ctx context.Context, req UpdateProfileRequest) (*UserInfo, error) {
	u, err := uc.userService.UpdateProfile(ctx, req.ID, req.FirstName, req.LastName, req.Username, req.Email)
	if err != nil {
		return nil, err
	}

	return &UserInfo{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Username:  u.Username,
		Email:     u.Email,
	}, nil
}

// UpdateProfileRequest 更新用户信息请求
// 空字符串表示"不修改该字段"
type UpdateProfileRequest struct {
	ID        uint
	FirstName string
	LastName  string
	Username  string
	Email     string
}
