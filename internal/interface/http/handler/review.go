package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	appreview "github.com/bookbuddy/server/internal/application/review"
	"github.com/bookbuddy/server/internal/domain/review"
	"github.com/bookbuddy/server/internal/interface/http/dto"
	"github.com/bookbuddy/server/pkg/response"
)

// ReviewHandler 书评HTTP处理器
type ReviewHandler struct {
	createReviewUseCase *appreview.CreateReviewUseCase
	reviewService       review.Service
}

// NewReviewHandler 创建书评处理器
func NewReviewHandler(
	createReviewUseCase *appreview.CreateReviewUseCase,
	reviewService review.Service,
) *ReviewHandler {
	return &ReviewHandler{
		createReviewUseCase: createReviewUseCase,
		reviewService:       reviewService,
	}
}

// Create 发表书评
// @Summary      发表书评
// @Description  为目录中的图书发表书评,评分越界时钳制到[0,5]
// @Tags         书评
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateReviewRequest true "书评内容"
// @Success      201 {object} response.Response{data=dto.ReviewResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户或图书不存在"
// @Router       /api/v1/reviews [post]
func (h *ReviewHandler) Create(c *gin.Context) {
	var req dto.CreateReviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.createReviewUseCase.Execute(c.Request.Context(), appreview.CreateReviewRequest{
		UserID:     req.UserID,
		BookID:     req.BookID,
		Rating:     req.Rating,
		ReviewText: req.ReviewText,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, &dto.ReviewResponse{
		ID:         result.ID,
		UserID:     result.UserID,
		BookID:     result.BookID,
		Rating:     result.Rating,
		ReviewText: result.ReviewText,
		CreatedAt:  result.CreatedAt,
	})
}

// ListByBook 查询图书的书评
// @Summary      查询图书的书评
// @Tags         书评
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{data=[]dto.ReviewResponse}
// @Router       /api/v1/reviews/book/{bookId} [get]
func (h *ReviewHandler) ListByBook(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("bookId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的图书ID")
		return
	}

	reviews, err := h.reviewService.ListByBook(c.Request.Context(), uint(bookID))
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		list = append(list, toReviewDTO(r))
	}

	response.Success(c, list)
}

// AverageRating 查询图书平均评分
// @Summary      查询图书平均评分
// @Description  全部书评的算术平均,没有书评时为0
// @Tags         书评
// @Produce      json
// @Param        bookId path int true "图书ID"
// @Success      200 {object} response.Response{data=dto.AverageRatingResponse}
// @Router       /api/v1/reviews/book/{bookId}/average [get]
func (h *ReviewHandler) AverageRating(c *gin.Context) {
	bookID, err := strconv.ParseUint(c.Param("bookId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的图书ID")
		return
	}

	avg, err := h.reviewService.AverageRatingByBook(c.Request.Context(), uint(bookID))
	if err != nil {
		response.Error(c, err)
		return
	}

	reviews, err := h.reviewService.ListByBook(c.Request.Context(), uint(bookID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.AverageRatingResponse{
		BookID:        uint(bookID),
		AverageRating: avg,
		ReviewCount:   len(reviews),
	})
}

// GetByID 查询书评详情
// @Summary      查询书评详情
// @Tags         书评
// @Produce      json
// @Param        id path int true "书评ID"
// @Success      200 {object} response.Response{data=dto.ReviewResponse}
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [get]
func (h *ReviewHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的书评ID")
		return
	}

	r, err := h.reviewService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toReviewDTO(r))
}

// Delete 删除书评
// @Summary      删除书评
// @Tags         书评
// @Produce      json
// @Param        id path int true "书评ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      404 {object} response.Response "书评不存在"
// @Router       /api/v1/reviews/{id} [delete]
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的书评ID")
		return
	}

	if err := h.reviewService.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "删除成功"})
}

// toReviewDTO 领域实体 → HTTP响应DTO
func toReviewDTO(r *review.Review) *dto.ReviewResponse {
	return &dto.ReviewResponse{
		ID:         r.ID,
		UserID:     r.UserID,
		BookID:     r.BookID,
		Rating:     r.Rating,
		ReviewText: r.ReviewText,
		CreatedAt:  r.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}
