package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appsearch "github.com/bookbuddy/server/internal/application/search"
	"github.com/bookbuddy/server/pkg/response"
)

// SearchHandler 图书搜索HTTP处理器
// 设计说明:
// 搜索走Open Library外部API,客户端内置熔断器,
// 服务不可用时返回50300而不是长时间阻塞
type SearchHandler struct {
	searchBooksUseCase *appsearch.SearchBooksUseCase
}

// NewSearchHandler 创建搜索处理器
func NewSearchHandler(searchBooksUseCase *appsearch.SearchBooksUseCase) *SearchHandler {
	return &SearchHandler{
		searchBooksUseCase: searchBooksUseCase,
	}
}

// Search 搜索图书
// @Summary      搜索图书
// @Description  按任意关键词搜索Open Library
// @Tags         搜索
// @Produce      json
// @Param        q path string true "搜索关键词"
// @Param        page query int false "页码(从1开始)"
// @Success      200 {object} response.Response "搜索结果"
// @Failure      400 {object} response.Response "关键词为空"
// @Failure      503 {object} response.Response "搜索服务暂时不可用"
// @Router       /api/v1/search/{q} [get]
func (h *SearchHandler) Search(c *gin.Context) {
	h.doSearch(c, appsearch.SearchModeGeneral)
}

// SearchByTitle 按书名搜索图书
// @Summary      按书名搜索图书
// @Tags         搜索
// @Produce      json
// @Param        q path string true "书名关键词"
// @Param        page query int false "页码(从1开始)"
// @Success      200 {object} response.Response "搜索结果"
// @Failure      400 {object} response.Response "关键词为空"
// @Failure      503 {object} response.Response "搜索服务暂时不可用"
// @Router       /api/v1/search/title/{q} [get]
func (h *SearchHandler) SearchByTitle(c *gin.Context) {
	h.doSearch(c, appsearch.SearchModeTitle)
}

// SearchByAuthor 按作者搜索图书
// @Summary      按作者搜索图书
// @Tags         搜索
// @Produce      json
// @Param        q path string true "作者关键词"
// @Param        page query int false "页码(从1开始)"
// @Success      200 {object} response.Response "搜索结果"
// @Failure      400 {object} response.Response "关键词为空"
// @Failure      503 {object} response.Response "搜索服务暂时不可用"
// @Router       /api/v1/search/author/{q} [get]
func (h *SearchHandler) SearchByAuthor(c *gin.Context) {
	h.doSearch(c, appsearch.SearchModeAuthor)
}

func (h *SearchHandler) doSearch(c *gin.Context, mode appsearch.SearchMode) {
	query := c.Param("q")
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))

	result, err := h.searchBooksUseCase.Execute(c.Request.Context(), appsearch.SearchRequest{
		Query: query,
		Mode:  mode,
		Page:  page,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
