package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：用户模块集成测试
//
// 集成测试 vs 单元测试：
// - 单元测试：Mock外部依赖（数据库、Redis），测试单个函数的逻辑
// - 集成测试：使用真实的数据库和Redis，测试完整的API流程
//
// 运行方式：
//   make test-integration   # 需要先启动Docker环境
//   go test -v ./test/integration/...

// TestUserRegister 测试用户注册功能
func TestUserRegister(t *testing.T) {
	t.Run("正常注册", func(t *testing.T) {
		email := GenerateTestEmail("normal_user")
		username := GenerateTestUsername("normal_user")
		registerReq := map[string]string{
			"first_name": "小",
			"last_name":  "王",
			"username":   username,
			"email":      email,
			"password":   "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 0, resp.Code, "注册应该成功")
		assert.Equal(t, http.StatusCreated, resp.HTTPStatus, "注册应返回201")

		var data UserData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err, "解析响应数据失败")

		assert.NotZero(t, data.ID, "用户ID应该大于0")
		assert.Equal(t, email, data.Email, "返回的邮箱应该与请求一致")
		assert.Equal(t, username, data.Username, "返回的用户名应该与请求一致")
	})

	t.Run("重复邮箱注册应失败", func(t *testing.T) {
		email := GenerateTestEmail("duplicate_user")
		registerReq := map[string]string{
			"first_name": "小",
			"last_name":  "李",
			"username":   GenerateTestUsername("dup_a"),
			"email":      email,
			"password":   "Test1234",
		}

		resp1 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		registerReq["username"] = GenerateTestUsername("dup_b")
		resp2 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 40901, resp2.Code, "重复邮箱应返回40901")
	})

	t.Run("重复用户名注册应失败", func(t *testing.T) {
		username := GenerateTestUsername("dup_name")
		registerReq := map[string]string{
			"first_name": "小",
			"last_name":  "赵",
			"username":   username,
			"email":      GenerateTestEmail("dup_name_a"),
			"password":   "Test1234",
		}

		resp1 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		require.Equal(t, 0, resp1.Code, "第一次注册应该成功")

		registerReq["email"] = GenerateTestEmail("dup_name_b")
		resp2 := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.Equal(t, 40902, resp2.Code, "重复用户名应返回40902")
	})

	t.Run("弱密码注册应失败", func(t *testing.T) {
		registerReq := map[string]string{
			"first_name": "小",
			"last_name":  "钱",
			"username":   GenerateTestUsername("weak_pwd"),
			"email":      GenerateTestEmail("weak_pwd"),
			"password":   "testtest", // 没有大写字母和数字
		}

		resp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
		assert.NotEqual(t, 0, resp.Code, "弱密码应被拒绝")
	})
}

// TestUserLogin 测试用户登录功能
func TestUserLogin(t *testing.T) {
	// 准备：先注册一个用户
	email := GenerateTestEmail("login_user")
	username := GenerateTestUsername("login_user")
	registerReq := map[string]string{
		"first_name": "小",
		"last_name":  "孙",
		"username":   username,
		"email":      email,
		"password":   "Test1234",
	}
	registerResp := PostJSON(t, BaseURL+"/users/register", registerReq, "")
	require.Equal(t, 0, registerResp.Code, "准备用户失败")

	t.Run("用户名登录", func(t *testing.T) {
		loginReq := map[string]string{
			"username_or_email": username,
			"password":          "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		assert.Equal(t, 0, resp.Code, "用户名登录应该成功")

		var data LoginData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.NotEmpty(t, data.AccessToken, "应返回Access Token")
		assert.NotEmpty(t, data.RefreshToken, "应返回Refresh Token")
		assert.Equal(t, username, data.User.Username)
	})

	t.Run("邮箱登录", func(t *testing.T) {
		loginReq := map[string]string{
			"username_or_email": email,
			"password":          "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		assert.Equal(t, 0, resp.Code, "邮箱登录应该成功")
	})

	t.Run("密码错误应失败", func(t *testing.T) {
		loginReq := map[string]string{
			"username_or_email": username,
			"password":          "Wrong1234",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		assert.Equal(t, 40103, resp.Code, "密码错误应返回40103")
	})

	t.Run("用户不存在应失败", func(t *testing.T) {
		loginReq := map[string]string{
			"username_or_email": "nobody_here_404",
			"password":          "Test1234",
		}

		resp := PostJSON(t, BaseURL+"/users/login", loginReq, "")
		assert.Equal(t, 40401, resp.Code, "用户不存在应返回40401")
	})
}

// TestUserProfile 测试用户资料查询与更新
func TestUserProfile(t *testing.T) {
	userID, token := RegisterTestUser(t, "profile_user")

	t.Run("查询用户详情", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/users/%d", BaseURL, userID), "")
		assert.Equal(t, 0, resp.Code)

		var data UserData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, userID, data.ID)
	})

	t.Run("部分更新保留原值", func(t *testing.T) {
		// 只更新first_name，其余留空
		updateReq := map[string]string{
			"first_name": "新名",
		}

		resp := PutJSON(t, fmt.Sprintf("%s/users/%d", BaseURL, userID), updateReq, token)
		assert.Equal(t, 0, resp.Code, "更新应该成功: %s", resp.Message)

		var data UserData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "新名", data.FirstName, "first_name应被更新")
		assert.NotEmpty(t, data.Username, "username应保持原值")
		assert.NotEmpty(t, data.Email, "email应保持原值")
	})

	t.Run("未登录更新应被拒绝", func(t *testing.T) {
		updateReq := map[string]string{
			"first_name": "越权",
		}

		resp := PutJSON(t, fmt.Sprintf("%s/users/%d", BaseURL, userID), updateReq, "")
		assert.Equal(t, 40100, resp.Code, "未登录应返回40100")
	})

	t.Run("查询不存在的用户", func(t *testing.T) {
		resp := GetJSON(t, BaseURL+"/users/99999999", "")
		assert.Equal(t, 40401, resp.Code)
	})
}

// TestUserLogout 测试登出后Token失效
func TestUserLogout(t *testing.T) {
	userID, token := RegisterTestUser(t, "logout_user")

	// 登出
	resp := PostJSON(t, BaseURL+"/users/logout", nil, token)
	require.Equal(t, 0, resp.Code, "登出应该成功")

	// 登出后的Token应无法再访问需要认证的接口
	updateReq := map[string]string{"first_name": "失效"}
	resp2 := PutJSON(t, fmt.Sprintf("%s/users/%d", BaseURL, userID), updateReq, token)
	assert.Equal(t, 40102, resp2.Code, "登出后的Token应返回40102")
}
