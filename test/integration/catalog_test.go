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

// 教学说明：图书目录模块集成测试
// 目录是全体用户共享的，创建、查询、更新、删除都是公开接口

// TestCatalogCRUD 测试图书目录的增删改查
func TestCatalogCRUD(t *testing.T) {
	var bookID uint

	t.Run("创建图书", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title":       "集成测试的图书",
			"author":      "测试作者",
			"description": "目录CRUD测试",
			"genre":       "FANTASY",
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, "")
		require.Equal(t, 0, resp.Code, "创建图书失败: %s", resp.Message)
		assert.Equal(t, http.StatusCreated, resp.HTTPStatus, "创建图书应返回201")

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.NotZero(t, data.ID)
		assert.Equal(t, "FANTASY", data.Genre)

		bookID = data.ID
	})

	t.Run("查询图书详情", func(t *testing.T) {
		resp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
		assert.Equal(t, 0, resp.Code)

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "集成测试的图书", data.Title)
	})

	t.Run("更新图书", func(t *testing.T) {
		updateReq := map[string]interface{}{
			"title":  "更新后的书名",
			"author": "测试作者",
			"genre":  "CLASSICS",
		}

		resp := PutJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), updateReq, "")
		assert.Equal(t, 0, resp.Code, "更新图书失败: %s", resp.Message)

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "更新后的书名", data.Title)
		assert.Equal(t, "CLASSICS", data.Genre)
	})

	t.Run("删除图书", func(t *testing.T) {
		resp := DeleteJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
		assert.Equal(t, 0, resp.Code)

		// 删除后查询应404
		resp2 := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, bookID), "")
		assert.Equal(t, 40402, resp2.Code)
	})

	t.Run("分类留空默认OTHER", func(t *testing.T) {
		bookReq := map[string]interface{}{
			"title":  "没有分类的书",
			"author": "测试作者",
		}

		resp := PostJSON(t, BaseURL+"/books", bookReq, "")
		require.Equal(t, 0, resp.Code)

		var data BookData
		err := json.Unmarshal(resp.Data, &data)
		require.NoError(t, err)
		assert.Equal(t, "OTHER", data.Genre)
	})
}

// TestCatalogFindOrCreate 测试按Open Library ID查找或创建
// 业务规则：同一外部ID的图书在目录中只出现一次，重复导入复用已有记录
func TestCatalogFindOrCreate(t *testing.T) {
	userID, _ := RegisterTestUser(t, "import_user")
	olid := fmt.Sprintf("OL%dW", time.Now().UnixNano()%100000000)

	importReq := map[string]interface{}{
		"user_id":         userID,
		"open_library_id": olid,
		"title":           "导入的图书",
		"author":          "外部作者",
		"genre":           "HISTORY",
	}

	// 第一次导入：创建目录图书
	resp1 := PostJSON(t, BaseURL+"/userbooks/add-from-search", importReq, "")
	require.Equal(t, 0, resp1.Code, "第一次导入失败: %s", resp1.Message)

	var ub1 UserBookData
	err := json.Unmarshal(resp1.Data, &ub1)
	require.NoError(t, err)

	// 第二个用户导入同一本书：应复用同一条目录记录
	userID2, _ := RegisterTestUser(t, "import_user2")
	importReq["user_id"] = userID2
	importReq["title"] = "另一个标题" // 不同标题也不会刷新目录

	resp2 := PostJSON(t, BaseURL+"/userbooks/add-from-search", importReq, "")
	require.Equal(t, 0, resp2.Code, "第二次导入失败: %s", resp2.Message)

	var ub2 UserBookData
	err = json.Unmarshal(resp2.Data, &ub2)
	require.NoError(t, err)

	assert.Equal(t, ub1.BookID, ub2.BookID, "两次导入应指向同一条目录记录")

	// 目录中的标题应保持第一次导入的值
	bookResp := GetJSON(t, fmt.Sprintf("%s/books/%d", BaseURL, ub1.BookID), "")
	require.Equal(t, 0, bookResp.Code)

	var book BookData
	err = json.Unmarshal(bookResp.Data, &book)
	require.NoError(t, err)
	assert.Equal(t, "导入的图书", book.Title, "重复导入不应刷新目录字段")
	assert.Equal(t, olid, book.OpenLibraryID)
}
