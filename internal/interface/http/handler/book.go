package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/bookbuddy/server/internal/domain/catalog"
	"github.com/bookbuddy/server/internal/interface/http/dto"
	"github.com/bookbuddy/server/pkg/response"
)

// BookHandler 图书目录HTTP处理器
// 设计说明:
// 目录CRUD没有跨聚合编排,直接调用领域服务即可,不需要应用层用例
type BookHandler struct {
	catalogService catalog.Service
}

// NewBookHandler 创建图书目录处理器
func NewBookHandler(catalogService catalog.Service) *BookHandler {
	return &BookHandler{
		catalogService: catalogService,
	}
}

// Create 创建图书
// @Summary      创建图书
// @Description  手工向共享目录添加一本图书
// @Tags         图书目录
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateBookRequest true "图书信息"
// @Success      201 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      409 {object} response.Response "图书已存在"
// @Router       /api/v1/books [post]
func (h *BookHandler) Create(c *gin.Context) {
	var req dto.CreateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	// 分类留空时ParseGenre返回默认值OTHER
	genre, err := catalog.ParseGenre(req.Genre)
	if err != nil {
		response.Error(c, err)
		return
	}

	book, err := h.catalogService.AddBook(c.Request.Context(),
		req.Title, req.Author, req.Description, req.CoverURL, req.OpenLibraryID, genre)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toBookResponse(book))
}

// List 图书列表
// @Summary      图书列表
// @Description  查询共享目录的全部图书
// @Tags         图书目录
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.BookResponse}
// @Router       /api/v1/books [get]
func (h *BookHandler) List(c *gin.Context) {
	books, err := h.catalogService.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.BookResponse, 0, len(books))
	for _, b := range books {
		list = append(list, toBookResponse(b))
	}

	response.Success(c, list)
}

// GetByID 查询图书详情
// @Summary      查询图书详情
// @Tags         图书目录
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [get]
func (h *BookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的图书ID")
		return
	}

	book, err := h.catalogService.GetBookByID(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookResponse(book))
}

// Update 更新图书
// @Summary      更新图书
// @Description  更新目录图书信息(不允许修改Open Library ID)
// @Tags         图书目录
// @Accept       json
// @Produce      json
// @Param        id path int true "图书ID"
// @Param        request body dto.UpdateBookRequest true "更新内容"
// @Success      200 {object} response.Response{data=dto.BookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [put]
func (h *BookHandler) Update(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的图书ID")
		return
	}

	var req dto.UpdateBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	genre, err := catalog.ParseGenre(req.Genre)
	if err != nil {
		response.Error(c, err)
		return
	}

	book, err := h.catalogService.UpdateBook(c.Request.Context(), uint(id),
		req.Title, req.Author, req.Description, req.CoverURL, genre)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toBookResponse(book))
}

// Delete 删除图书
// @Summary      删除图书
// @Tags         图书目录
// @Produce      json
// @Param        id path int true "图书ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      404 {object} response.Response "图书不存在"
// @Router       /api/v1/books/{id} [delete]
func (h *BookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的图书ID")
		return
	}

	if err := h.catalogService.DeleteBook(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "删除成功"})
}

// toBookResponse 领域实体 → HTTP响应DTO
func toBookResponse(b *catalog.Book) *dto.BookResponse {
	return &dto.BookResponse{
		ID:            b.ID,
		Title:         b.Title,
		Author:        b.Author,
		Description:   b.Description,
		CoverURL:      b.CoverURL,
		OpenLibraryID: b.OpenLibraryID,
		Genre:         b.Genre.String(),
		CreatedAt:     b.CreatedAt.Format("2006-01-02 15:04:05"),
		UpdatedAt:     b.UpdatedAt.Format("2006-01-02 15:04:05"),
	}
}
