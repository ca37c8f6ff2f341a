package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：书架模块集成测试
// 核心业务规则：
// - 新条目默认在WANT_TO_READ架
// - 移到READ架自动盖读完时间戳
// - 移出READ架清除时间戳

// TestUserBookShelfFlow 测试书架条目的完整换架流程
func TestUserBookShelfFlow(t *testing.T) {
	userID, _ := RegisterTestUser(t, "shelf_user")
	bookID := CreateTestBook(t, "换架流程测试书")

	var userBookID uint

	t.Run("默认加入想读架", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id": userID,
			"book_id": bookID,
		}

		resp := PostJSON(t, BaseURL+"/userbooks", req, "")
		require.Equal(t, 0, resp.Code, "添加书架条目失败: %s", resp.Message)
		assert.Equal(t, http.StatusCreated, resp.HTTPStatus, "创建书架条目应返回201")

		var data UserBookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "WANT_TO_READ", data.Shelf, "默认应在想读架")
		assert.Empty(t, data.CompletedAt, "想读架不应有读完时间")

		userBookID = data.ID
	})

	t.Run("移到在读架", func(t *testing.T) {
		req := map[string]string{"shelf": "CURRENTLY_READING"}

		resp := PutJSON(t, fmt.Sprintf("%s/userbooks/%d/shelf", BaseURL, userBookID), req, "")
		assert.Equal(t, 0, resp.Code)

		var data UserBookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "CURRENTLY_READING", data.Shelf)
		assert.Empty(t, data.CompletedAt)
	})

	t.Run("移到已读架盖时间戳", func(t *testing.T) {
		req := map[string]string{"shelf": "READ"}

		resp := PutJSON(t, fmt.Sprintf("%s/userbooks/%d/shelf", BaseURL, userBookID), req, "")
		assert.Equal(t, 0, resp.Code)

		var data UserBookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "READ", data.Shelf)
		assert.NotEmpty(t, data.CompletedAt, "已读架应有读完时间")
	})

	t.Run("移出已读架清除时间戳", func(t *testing.T) {
		req := map[string]string{"shelf": "WANT_TO_READ"}

		resp := PutJSON(t, fmt.Sprintf("%s/userbooks/%d/shelf", BaseURL, userBookID), req, "")
		assert.Equal(t, 0, resp.Code)

		var data UserBookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "WANT_TO_READ", data.Shelf)
		assert.Empty(t, data.CompletedAt, "移出已读架应清除读完时间")
	})

	t.Run("非法架位应被拒绝", func(t *testing.T) {
		req := map[string]string{"shelf": "FINISHED"}

		resp := PutJSON(t, fmt.Sprintf("%s/userbooks/%d/shelf", BaseURL, userBookID), req, "")
		assert.NotEqual(t, 0, resp.Code, "非法架位应被拒绝")
	})

	t.Run("查询用户书架", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/userbooks/user/%d", BaseURL, userID), "")
		assert.Equal(t, 0, resp.Code)

		var list []UserBookData
		err := json.Unmarshal(resp.Data, &list)
		require.NoError(t, err)
		assert.Len(t, list, 1)
	})

	t.Run("从书架移除", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/userbooks/%d", BaseURL, userBookID), "")
		assert.Equal(t, 0, resp.Code)

		resp2 := GetJSON(t, fmt.Sprintf("%s/userbooks/%d", BaseURL, userBookID), "")
		assert.Equal(t, 40403, resp2.Code)
	})
}

// TestUserBookValidation 测试书架条目的参数校验
func TestUserBookValidation(t *testing.T) {
	userID, _ := RegisterTestUser(t, "shelf_valid")

	t.Run("图书不存在应失败", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id": userID,
			"book_id": 99999999,
		}

		resp := PostJSON(t, BaseURL+"/userbooks", req, "")
		assert.Equal(t, 40402, resp.Code, "图书不存在应返回40402")
	})

	t.Run("用户不存在应失败", func(t *testing.T) {
		bookID := CreateTestBook(t, "孤儿条目测试书")
		req := map[string]interface{}{
			"user_id": 99999999,
			"book_id": bookID,
		}

		resp := PostJSON(t, BaseURL+"/userbooks", req, "")
		assert.Equal(t, 40401, resp.Code, "用户不存在应返回40401")
	})

	t.Run("指定已读架直接盖时间戳", func(t *testing.T) {
		bookID := CreateTestBook(t, "直接已读测试书")
		req := map[string]interface{}{
			"user_id": userID,
			"book_id": bookID,
			"shelf":   "READ",
		}

		resp := PostJSON(t, BaseURL+"/userbooks", req, "")
		require.Equal(t, 0, resp.Code)

		var data UserBookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "READ", data.Shelf)
		assert.NotEmpty(t, data.CompletedAt)
	})
}
