package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// 教学说明：月度追踪器模块集成测试
// 覆盖完整业务闭环：
// 创建追踪器 → 添加书架图书 → 标记读完 → 进度统计 → 清理

// TestTrackerLifecycle 测试追踪器的创建、查询、调整与删除
func TestTrackerLifecycle(t *testing.T) {
	userID, _ := RegisterTestUser(t, "tracker_user")

	var trackerID uint

	t.Run("创建追踪器", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id":          userID,
			"month":            9,
			"year":             "2026",
			"target_books_num": 5,
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker", req, "")
		require.Equal(t, 0, resp.Code, "创建追踪器失败: %s", resp.Message)
		assert.Equal(t, http.StatusCreated, resp.HTTPStatus, "创建追踪器应返回201")

		var data TrackerData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "SEPTEMBER", data.Month, "月份应返回名称")
		assert.Equal(t, 9, data.MonthValue)
		assert.Equal(t, "2026", data.Year)

		trackerID = data.ID
	})

	t.Run("同月重复创建应失败", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id":          userID,
			"month":            9,
			"year":             "2026",
			"target_books_num": 3,
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker", req, "")
		assert.Equal(t, 40903, resp.Code, "同月重复创建应返回40903")
	})

	t.Run("非法月份应失败", func(t *testing.T) {
		req := map[string]interface{}{
			"user_id":          userID,
			"month":            13,
			"year":             "2026",
			"target_books_num": 3,
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker", req, "")
		assert.NotEqual(t, 0, resp.Code, "月份13应被拒绝")
	})

	t.Run("按年月查询", func(t *testing.T) {
		url := fmt.Sprintf("%s/monthly-tracker/user/%d/month?month=9&year=2026", BaseURL, userID)
		resp := GetJSON(t, url, "")
		assert.Equal(t, 0, resp.Code)

		var data TrackerData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, trackerID, data.ID)
	})

	t.Run("调整目标", func(t *testing.T) {
		req := map[string]interface{}{"target_books_num": 8}

		resp := PutJSON(t, fmt.Sprintf("%s/monthly-tracker/%d/goal", BaseURL, trackerID), req, "")
		assert.Equal(t, 0, resp.Code)

		var data TrackerData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 8, data.TargetBooksNum)
	})

	t.Run("删除追踪器", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/monthly-tracker/%d", BaseURL, trackerID), "")
		assert.Equal(t, 0, resp.Code)

		resp2 := GetJSON(t, fmt.Sprintf("%s/monthly-tracker/%d", BaseURL, trackerID), "")
		assert.Equal(t, 40404, resp2.Code)
	})
}

// TestTrackerBookFlow 测试追踪器图书的完整闭环
func TestTrackerBookFlow(t *testing.T) {
	userID, _ := RegisterTestUser(t, "tb_user")
	trackerID := CreateTestTracker(t, userID, 10, "2026", 3)

	bookID1 := CreateTestBook(t, "追踪闭环测试书1")
	bookID2 := CreateTestBook(t, "追踪闭环测试书2")
	userBookID1 := AddTestUserBook(t, userID, bookID1, "WANT_TO_READ")
	userBookID2 := AddTestUserBook(t, userID, bookID2, "CURRENTLY_READING")

	var trackerBookID uint

	t.Run("添加图书到追踪器", func(t *testing.T) {
		req := map[string]interface{}{
			"tracker_id":   trackerID,
			"user_book_id": userBookID1,
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker-books", req, "")
		require.Equal(t, 0, resp.Code, "添加追踪器图书失败: %s", resp.Message)
		assert.Equal(t, http.StatusCreated, resp.HTTPStatus, "添加追踪器图书应返回201")

		var data TrackerBookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.False(t, data.Completed, "新加入的图书应未完成")

		trackerBookID = data.ID
	})

	t.Run("重复添加应失败", func(t *testing.T) {
		req := map[string]interface{}{
			"tracker_id":   trackerID,
			"user_book_id": userBookID1,
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker-books", req, "")
		assert.Equal(t, 40904, resp.Code, "重复添加应返回40904")
	})

	t.Run("已读完的图书不能加入", func(t *testing.T) {
		bookID3 := CreateTestBook(t, "已读完测试书")
		readUserBookID := AddTestUserBook(t, userID, bookID3, "READ")

		req := map[string]interface{}{
			"tracker_id":   trackerID,
			"user_book_id": readUserBookID,
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker-books", req, "")
		assert.NotEqual(t, 0, resp.Code, "READ架的图书应被拒绝")
	})

	t.Run("其他用户的图书不能加入", func(t *testing.T) {
		otherUserID, _ := RegisterTestUser(t, "tb_other")
		otherBookID := CreateTestBook(t, "他人图书测试书")
		otherUserBookID := AddTestUserBook(t, otherUserID, otherBookID, "")

		req := map[string]interface{}{
			"tracker_id":   trackerID,
			"user_book_id": otherUserBookID,
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker-books", req, "")
		assert.Equal(t, 40008, resp.Code, "他人图书应返回40008")
	})

	t.Run("批量添加部分成功", func(t *testing.T) {
		req := map[string]interface{}{
			"tracker_id":    trackerID,
			"user_book_ids": []uint{userBookID2, userBookID1, 99999999},
		}

		resp := PostJSON(t, BaseURL+"/monthly-tracker-books/bulk", req, "")
		require.Equal(t, 0, resp.Code, "批量添加应整体成功: %s", resp.Message)

		var data struct {
			SuccessCount int `json:"success_count"`
			ErrorCount   int `json:"error_count"`
		}
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 1, data.SuccessCount, "只有userBookID2应成功")
		assert.Equal(t, 2, data.ErrorCount, "重复的和不存在的应失败")
	})

	t.Run("包含检查", func(t *testing.T) {
		url := fmt.Sprintf("%s/monthly-tracker-books/tracker/%d/contains/%d", BaseURL, trackerID, userBookID1)
		resp := GetJSON(t, url, "")
		assert.Equal(t, 0, resp.Code)

		var data struct {
			Contains bool `json:"contains"`
		}
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.True(t, data.Contains)
	})

	t.Run("标记读完并同步书架", func(t *testing.T) {
		resp := PutJSON(t, fmt.Sprintf("%s/monthly-tracker-books/%d/complete", BaseURL, trackerBookID), nil, "")
		require.Equal(t, 0, resp.Code, "标记读完失败: %s", resp.Message)

		var data TrackerBookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.True(t, data.Completed)

		// 书架条目应被同步到READ架
		ubResp := GetJSON(t, fmt.Sprintf("%s/userbooks/%d", BaseURL, userBookID1), "")
		require.Equal(t, 0, ubResp.Code)

		var ub UserBookData
		err = json.Unmarshal(ubResp.Data, &ub)
		require.NoError(t, err)
		assert.Equal(t, "READ", ub.Shelf, "完成标记应把书架条目移到READ架")
		assert.NotEmpty(t, ub.CompletedAt)
	})

	t.Run("进度统计", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/monthly-tracker/%d/progress", BaseURL, trackerID), "")
		assert.Equal(t, 0, resp.Code)

		var data ProgressData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, 3, data.TargetBooks)
		assert.Equal(t, 2, data.TotalBooks, "追踪器中应有2本书")
		assert.Equal(t, 1, data.CompletedBooks)
		assert.InDelta(t, 33.33, data.CompletionPercentage, 0.01, "1/3应为33.33")
	})

	t.Run("清理已完成图书", func(t *testing.T) {
		url := fmt.Sprintf("%s/monthly-tracker-books/tracker/%d/completed", BaseURL, trackerID)
		resp := DeleteJSON(t, url, "")
		assert.Equal(t, 0, resp.Code)

		var data struct {
			RemovedCount int64 `json:"removed_count"`
		}
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, int64(1), data.RemovedCount)

		// 清理后只剩未完成的一本
		listResp := GetJSON(t, fmt.Sprintf("%s/monthly-tracker-books/tracker/%d", BaseURL, trackerID), "")
		require.Equal(t, 0, listResp.Code)

		var list []TrackerBookData
		err = json.Unmarshal(listResp.Data, &list)
		require.NoError(t, err)
		assert.Len(t, list, 1)
		assert.Equal(t, userBookID2, list[0].UserBookID)
	})
}

// TestTrackerBookCompleteKeepsReadDate 测试完成标记不覆盖已有的读完时间
// 条目先通过换架读完,之后在追踪器里标记完成,原读完时间应保留
func TestTrackerBookCompleteKeepsReadDate(t *testing.T) {
	userID, _ := RegisterTestUser(t, "tb_readdate")
	trackerID := CreateTestTracker(t, userID, 11, "2026", 2)

	bookID := CreateTestBook(t, "先读完再标记测试书")
	userBookID := AddTestUserBook(t, userID, bookID, "CURRENTLY_READING")

	addResp := PostJSON(t, BaseURL+"/monthly-tracker-books", map[string]interface{}{
		"tracker_id":   trackerID,
		"user_book_id": userBookID,
	}, "")
	require.Equal(t, 0, addResp.Code, "添加追踪器图书失败: %s", addResp.Message)

	var added TrackerBookData
	require.NoError(t, json.Unmarshal(addResp.Data, &added))

	// 先换架读完,记录读完时间
	shelfResp := PutJSON(t, fmt.Sprintf("%s/userbooks/%d/shelf", BaseURL, userBookID),
		map[string]string{"shelf": "READ"}, "")
	require.Equal(t, 0, shelfResp.Code)

	var beforeUB UserBookData
	require.NoError(t, json.Unmarshal(shelfResp.Data, &beforeUB))
	require.NotEmpty(t, beforeUB.CompletedAt)

	// 拉开时间差,时间戳被覆盖时才能看出差异
	time.Sleep(1100 * time.Millisecond)

	completeResp := PutJSON(t, fmt.Sprintf("%s/monthly-tracker-books/%d/complete", BaseURL, added.ID), nil, "")
	require.Equal(t, 0, completeResp.Code, "标记读完失败: %s", completeResp.Message)

	var completed TrackerBookData
	require.NoError(t, json.Unmarshal(completeResp.Data, &completed))
	assert.True(t, completed.Completed)

	ubResp := GetJSON(t, fmt.Sprintf("%s/userbooks/%d", BaseURL, userBookID), "")
	require.Equal(t, 0, ubResp.Code)

	var afterUB UserBookData
	require.NoError(t, json.Unmarshal(ubResp.Data, &afterUB))
	assert.Equal(t, "READ", afterUB.Shelf)
	assert.Equal(t, beforeUB.CompletedAt, afterUB.CompletedAt, "已读完条目的读完时间不应被完成标记覆盖")
}
