package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：书评模块集成测试
// 业务规则：评分越界钳制到[0,5]，平均分为全部书评的算术平均

// TestReviewFlow 测试书评的发表、查询与删除
func TestReviewFlow(t *testing.T) {
	userID, _ := RegisterTestUser(t, "review_user")
	bookID := CreateTestBook(t, "书评流程测试书")

	var reviewID uint

	t.Run("发表书评", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id":     userID,
			"book_id":     bookID,
			"rating":      4,
			"review_text": "节奏紧凑,值得一读",
		}

		resp := PostJSON(t, BaseURL+"/reviews", req, "")
		require.Equal(t, 0, resp.Code, "发表书评失败: %s", resp.Message)
		assert.Equal(t, http.StatusCreated, resp.HTTPStatus, "发表书评应返回201")

		var data ReviewData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 4, data.Rating)

		reviewID = data.ID
	})

	t.Run("越界评分被钳制", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id": userID,
			"book_id": bookID,
			"rating":  9,
		}

		resp := PostJSON(t, BaseURL+"/reviews", req, "")
		require.Equal(t, 0, resp.Code, "越界评分不应报错")

		var data ReviewData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 5, data.Rating, "评分9应被钳制到5")
	})

	t.Run("负评分钳制到0", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id": userID,
			"book_id": bookID,
			"rating":  -3,
		}

		resp := PostJSON(t, BaseURL+"/reviews", req, "")
		require.Equal(t, 0, resp.Code)

		var data ReviewData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 0, data.Rating)
	})

	t.Run("平均评分", func(t *testing.T) {
		// 此时评分为: 4, 5, 0 → 平均3.0
		resp := GetJSON(t, fmt.Sprintf("%s/reviews/book/%d/average", BaseURL, bookID), "")
		assert.Equal(t, 0, resp.Code)

		var data AverageRatingData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 3, data.ReviewCount)
		assert.InDelta(t, 3.0, data.AverageRating, 0.001)
	})

	t.Run("查询图书的书评", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/reviews/book/%d", BaseURL, bookID), "")
		assert.Equal(t, 0, resp.Code)

		var list []ReviewData
		err := json.Unmarshal(resp.Data, &list)
		require.NoError(t, err)
		assert.Len(t, list, 3)
	})

	t.Run("删除书评", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), "")
		assert.Equal(t, 0, resp.Code)

		resp2 := GetJSON(t, fmt.Sprintf("%s/reviews/%d", BaseURL, reviewID), "")
		assert.Equal(t, 40406, resp2.Code)
	})

	t.Run("没有书评的图书平均分为0", func(t *testing.T) {
		emptyBookID := CreateTestBook(t, "无书评测试书")

		resp := GetJSON(t, fmt.Sprintf("%s/reviews/book/%d/average", BaseURL, emptyBookID), "")
		assert.Equal(t, 0, resp.Code)

		var data AverageRatingData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Zero(t, data.AverageRating)
		assert.Zero(t, data.ReviewCount)
	})

	t.Run("图书不存在应失败", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id": userID,
			"book_id": 99999999,
			"rating":  3,
		}

		resp := PostJSON(t, BaseURL+"/reviews", req, "")
		assert.Equal(t, 40402, resp.Code)
	})
}
