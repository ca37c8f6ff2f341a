package openlibrary

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestToBookResults 测试搜索响应解析
func TestToBookResults(t *testing.T) {
	raw := `{
		"numFound": 2,
		"docs": [
			{
				"key": "/works/OL82563W",
				"title": "Harry Potter and the Philosopher's Stone",
				"author_name": ["J. K. Rowling", "Someone Else"],
				"cover_i": 10521270,
				"first_publish_year": 1997
			},
			{
				"key": "/works/OL45804W",
				"title": "Book Without Cover"
			}
		]
	}`

	var parsed searchResponse
	require.NoError(t, json.Unmarshal([]byte(raw), &parsed))

	results := toBookResults(&parsed)
	require.Len(t, results, 2)

	t.Run("完整文档", func(t *testing.T) {
		r := results[0]
		assert.Equal(t, "OL82563W", r.OpenLibraryID)
		assert.Equal(t, "Harry Potter and the Philosopher's Stone", r.Title)
		// 多位作者只取第一位
		assert.Equal(t, "J. K. Rowling", r.Author)
		assert.Equal(t, "https://covers.openlibrary.org/b/id/10521270-L.jpg", r.CoverURL)
		assert.Equal(t, 1997, r.FirstPublishYear)
	})

	t.Run("缺字段的文档", func(t *testing.T) {
		r := results[1]
		assert.Equal(t, "OL45804W", r.OpenLibraryID)
		assert.Empty(t, r.Author)
		assert.Empty(t, r.CoverURL)
	})
}

// TestWorkKey 测试作品key提取
func TestWorkKey(t *testing.T) {
	assert.Equal(t, "OL82563W", workKey("/works/OL82563W"))
	// 已经是裸ID时原样返回
	assert.Equal(t, "OL82563W", workKey("OL82563W"))
}
