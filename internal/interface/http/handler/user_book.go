package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	applibrary "github.com/bookbuddy/server/internal/application/library"
	"github.com/bookbuddy/server/internal/domain/library"
	"github.com/bookbuddy/server/internal/interface/http/dto"
	"github.com/bookbuddy/server/pkg/response"
)

// UserBookHandler 书架HTTP处理器
// 设计说明:
// 添加/导入/换架涉及跨聚合校验或状态机,走应用层用例;
// 查询与删除直接走领域服务
type UserBookHandler struct {
	addBookUseCase       *applibrary.AddBookUseCase
	addFromSearchUseCase *applibrary.AddFromSearchUseCase
	changeShelfUseCase   *applibrary.ChangeShelfUseCase
	libraryService       library.Service
}

// NewUserBookHandler 创建书架处理器
func NewUserBookHandler(
	addBookUseCase *applibrary.AddBookUseCase,
	addFromSearchUseCase *applibrary.AddFromSearchUseCase,
	changeShelfUseCase *applibrary.ChangeShelfUseCase,
	libraryService library.Service,
) *UserBookHandler {
	return &UserBookHandler{
		addBookUseCase:       addBookUseCase,
		addFromSearchUseCase: addFromSearchUseCase,
		changeShelfUseCase:   changeShelfUseCase,
		libraryService:       libraryService,
	}
}

// Add 添加图书到书架
// @Summary      添加图书到书架
// @Description  将目录中的图书加入用户书架,shelf留空默认WANT_TO_READ
// @Tags         书架
// @Accept       json
// @Produce      json
// @Param        request body dto.AddUserBookRequest true "书架条目"
// @Success      201 {object} response.Response{data=dto.UserBookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Router       /api/v1/userbooks [post]
func (h *UserBookHandler) Add(c *gin.Context) {
	var req dto.AddUserBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), applibrary.AddBookRequest{
		UserID: req.UserID,
		BookID: req.BookID,
		Shelf:  req.Shelf,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toUserBookDTO(result))
}

// AddFromSearch 从搜索结果导入图书到书架
// @Summary      从搜索结果导入图书
// @Description  按Open Library ID查找或创建目录图书,再加入用户书架
// @Tags         书架
// @Accept       json
// @Produce      json
// @Param        request body dto.AddFromSearchRequest true "导入信息"
// @Success      201 {object} response.Response{data=dto.UserBookResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户不存在"
// @Router       /api/v1/userbooks/add-from-search [post]
func (h *UserBookHandler) AddFromSearch(c *gin.Context) {
	var req dto.AddFromSearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.addFromSearchUseCase.Execute(c.Request.Context(), applibrary.AddFromSearchRequest{
		UserID:        req.UserID,
		OpenLibraryID: req.OpenLibraryID,
		Title:         req.Title,
		Author:        req.Author,
		CoverURL:      req.CoverURL,
		Genre:         req.Genre,
		Shelf:         req.Shelf,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toUserBookDTO(result))
}

// List 书架条目列表
// @Summary      书架条目列表
// @Description  查询全部书架条目
// @Tags         书架
// @Produce      json
// @Success      200 {object} response.Response{data=[]dto.UserBookResponse}
// @Router       /api/v1/userbooks [get]
func (h *UserBookHandler) List(c *gin.Context) {
	items, err := h.libraryService.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toUserBookDTOs(items))
}

// ListByUser 查询用户书架
// @Summary      查询用户书架
// @Tags         书架
// @Produce      json
// @Param        userId path int true "用户ID"
// @Success      200 {object} response.Response{data=[]dto.UserBookResponse}
// @Router       /api/v1/userbooks/user/{userId} [get]
func (h *UserBookHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	items, err := h.libraryService.ListByUser(c.Request.Context(), uint(userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toUserBookDTOs(items))
}

// ListByBook 查询某本图书的全部书架条目
// @Summary      查询图书的书架条目
// @Description  查询所有把该图书加入书架的条目
// @Tags         书架
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{data=[]dto.UserBookResponse}
// @Router       /api/v1/userbooks/book/{bookId} [get]
func (h *UserBookHandler) ListByBook(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("bookId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的图书ID")
		return
	}

	items, err := h.libraryService.ListByBook(c.Request.Context(), uint(bookID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toUserBookDTOs(items))
}

// GetByID 查询书架条目详情
// @Summary      查询书架条目详情
// @Tags         书架
// @Produce      json
// @Param        id path int true "条目ID"
// @Success      200 {object} response.Response{data=dto.UserBookResponse}
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/userbooks/{id} [get]
func (h *UserBookHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的条目ID")
		return
	}

	ub, err := h.libraryService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toUserBookEntityDTO(ub))
}

// ChangeShelf 换架
// @Summary      换架
// @Description  移动条目到目标架:移到READ盖读完时间戳,移出READ清除时间戳
// @Tags         书架
// @Accept       json
// @Produce      json
// @Param        id path int true "条目ID"
// @Param        request body dto.ChangeShelfRequest true "目标架"
// @Success      200 {object} response.Response{data=dto.UserBookResponse}
// @Failure      400 {object} response.Response "非法的架位"
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/userbooks/{id}/shelf [put]
func (h *UserBookHandler) ChangeShelf(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的条目ID")
		return
	}

	var req dto.ChangeShelfRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.changeShelfUseCase.Execute(c.Request.Context(), uint(id), req.Shelf)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toUserBookDTO(result))
}

// Delete 从书架移除
// @Summary      从书架移除
// @Tags         书架
// @Produce      json
// @Param        id path int true "条目ID"
// @Success      200 {object} response.Response "移除成功"
// @Failure      404 {object} response.Response "条目不存在"
// @Router       /api/v1/userbooks/{id} [delete]
func (h *UserBookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的条目ID")
		return
	}

	if err := h.libraryService.Remove(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "移除成功"})
}

// toUserBookDTO 应用层DTO → HTTP响应DTO
func toUserBookDTO(r *applibrary.UserBookResponse) *dto.UserBookResponse {
	return &dto.UserBookResponse{
		ID:          r.ID,
		UserID:      r.UserID,
		BookID:      r.BookID,
		Shelf:       r.Shelf,
		CompletedAt: r.CompletedAt,
		CreatedAt:   r.CreatedAt,
	}
}

// toUserBookEntityDTO 领域实体 → HTTP响应DTO
func toUserBookEntityDTO(ub *library.UserBook) *dto.UserBookResponse {
	resp := &dto.UserBookResponse{
		ID:        ub.ID,
		UserID:    ub.UserID,
		BookID:    ub.BookID,
		Shelf:     ub.Shelf.String(),
		CreatedAt: ub.CreatedAt.Format("2006-01-02 15:04:05"),
	}
	if ub.CompletedAt != nil {
		resp.CompletedAt = ub.CompletedAt.Format("2006-01-02 15:04:05")
	}
	return resp
}

func toUserBookDTOs(items []*library.UserBook) []*dto.UserBookResponse {
	list := make([]*dto.UserBookResponse, 0, len(items))
	for _, ub := range items {
		list = append(list, toUserBookEntityDTO(ub))
	}
	return list
}
