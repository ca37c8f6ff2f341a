package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	apptracker "github.com/bookbuddy/server/internal/application/tracker"
	"github.com/bookbuddy/server/internal/domain/tracker"
	"github.com/bookbuddy/server/internal/interface/http/dto"
	"github.com/bookbuddy/server/pkg/response"
)

// TrackerBookHandler 追踪器图书HTTP处理器
// 设计说明:
// 添加(含批量)与完成标记涉及跨聚合校验和事务,走应用层用例;
// 查询、移除、清理直接走领域服务
type TrackerBookHandler struct {
	addBookUseCase      *apptracker.AddBookUseCase
	bulkAddBooksUseCase *apptracker.BulkAddBooksUseCase
	completeBookUseCase *apptracker.CompleteBookUseCase
	trackerService      tracker.Service
}

// NewTrackerBookHandler 创建追踪器图书处理器
func NewTrackerBookHandler(
	addBookUseCase *apptracker.AddBookUseCase,
	bulkAddBooksUseCase *apptracker.BulkAddBooksUseCase,
	completeBookUseCase *apptracker.CompleteBookUseCase,
	trackerService tracker.Service,
) *TrackerBookHandler {
	return &TrackerBookHandler{
		addBookUseCase:      addBookUseCase,
		bulkAddBooksUseCase: bulkAddBooksUseCase,
		completeBookUseCase: completeBookUseCase,
		trackerService:      trackerService,
	}
}

// Add 添加图书到追踪器
// @Summary      添加图书到追踪器
// @Description  书架条目必须属于追踪器所有者且不能已读完
// @Tags         追踪器图书
// @Accept       json
// @Produce      json
// @Param        request body dto.AddTrackerBookRequest true "追踪器图书"
// @Success      201 {object} response.Response{data=dto.TrackerBookResponse}
// @Failure      400 {object} response.Response "图书已读完或不属于该用户"
// @Failure      404 {object} response.Response "追踪器或书架条目不存在"
// @Failure      409 {object} response.Response "图书已在追踪器中"
// @Router       /api/v1/monthly-tracker-books [post]
func (h *TrackerBookHandler) Add(c *gin.Context) {
	var req dto.AddTrackerBookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.addBookUseCase.Execute(c.Request.Context(), apptracker.AddBookRequest{
		TrackerID:  req.TrackerID,
		UserBookID: req.UserBookID,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTrackerBookAppDTO(result))
}

// BulkAdd 批量添加图书到追踪器
// @Summary      批量添加图书到追踪器
// @Description  部分成功语义:失败的条目不影响其余条目,逐条返回错误
// @Tags         追踪器图书
// @Accept       json
// @Produce      json
// @Param        request body dto.BulkAddTrackerBooksRequest true "批量添加信息"
// @Success      200 {object} response.Response "批量添加结果"
// @Failure      400 {object} response.Response "参数错误"
// @Router       /api/v1/monthly-tracker-books/bulk [post]
func (h *TrackerBookHandler) BulkAdd(c *gin.Context) {
	var req dto.BulkAddTrackerBooksRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.bulkAddBooksUseCase.Execute(c.Request.Context(), apptracker.BulkAddBooksRequest{
		TrackerID:   req.TrackerID,
		UserBookIDs: req.UserBookIDs,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListByTracker 查询追踪器中的图书
// @Summary      查询追踪器中的图书
// @Tags         追踪器图书
// @Produce      json
// @Param        trackerId path int true "追踪器ID"
// @Success      200 {object} response.Response{data=[]dto.TrackerBookResponse}
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker-books/tracker/{trackerId} [get]
func (h *TrackerBookHandler) ListByTracker(c *gin.Context) {
	trackerID, err := strconv.ParseUint(c.Param("trackerId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器ID")
		return
	}

	books, err := h.trackerService.ListBooks(c.Request.Context(), uint(trackerID))
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.TrackerBookResponse, 0, len(books))
	for _, tb := range books {
		list = append(list, toTrackerBookDTO(tb))
	}

	response.Success(c, list)
}

// Contains 检查追踪器是否包含某书架条目
// @Summary      检查追踪器是否包含某书架条目
// @Tags         追踪器图书
// @Produce      json
// @Param        trackerId path int true "追踪器ID"
// @Param        userBookId path int true "书架条目ID"
// @Success      200 {object} response.Response{data=dto.ContainsBookResponse}
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker-books/tracker/{trackerId}/contains/{userBookId} [get]
func (h *TrackerBookHandler) Contains(c *gin.Context) {
	trackerID, err := strconv.ParseUint(c.Param("trackerId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器ID")
		return
	}
	userBookID, err := strconv.ParseUint(c.Param("userBookId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的书架条目ID")
		return
	}

	contains, err := h.trackerService.ContainsBook(c.Request.Context(), uint(trackerID), uint(userBookID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ContainsBookResponse{
		TrackerID:  uint(trackerID),
		UserBookID: uint(userBookID),
		Contains:   contains,
	})
}

// Complete 标记追踪器图书读完
// @Summary      标记追踪器图书读完
// @Description  同一事务内标记完成并把书架条目移到READ架
// @Tags         追踪器图书
// @Produce      json
// @Param        id path int true "追踪器图书ID"
// @Success      200 {object} response.Response{data=dto.TrackerBookResponse}
// @Failure      404 {object} response.Response "追踪器图书不存在"
// @Router       /api/v1/monthly-tracker-books/{id}/complete [put]
func (h *TrackerBookHandler) Complete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器图书ID")
		return
	}

	result, err := h.completeBookUseCase.Execute(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toTrackerBookAppDTO(result))
}

// Delete 从追踪器移除图书
// @Summary      从追踪器移除图书
// @Description  只移除追踪关系,书架条目不受影响
// @Tags         追踪器图书
// @Produce      json
// @Param        id path int true "追踪器图书ID"
// @Success      200 {object} response.Response "移除成功"
// @Failure      404 {object} response.Response "追踪器图书不存在"
// @Router       /api/v1/monthly-tracker-books/{id} [delete]
func (h *TrackerBookHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器图书ID")
		return
	}

	if err := h.trackerService.RemoveBook(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "移除成功"})
}

// CleanUpCompleted 清理追踪器中已完成的图书
// @Summary      清理已完成的图书
// @Description  批量移除追踪器中所有completed=true的条目
// @Tags         追踪器图书
// @Produce      json
// @Param        trackerId path int true "追踪器ID"
// @Success      200 {object} response.Response{data=dto.CleanUpResponse}
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker-books/tracker/{trackerId}/completed [delete]
func (h *TrackerBookHandler) CleanUpCompleted(c *gin.Context) {
	trackerID, err := strconv.ParseUint(c.Param("trackerId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器ID")
		return
	}

	removed, err := h.trackerService.CleanUpCompletedBooks(c.Request.Context(), uint(trackerID))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.CleanUpResponse{
		TrackerID:    uint(trackerID),
		RemovedCount: removed,
	})
}

// toTrackerBookDTO 领域实体 → HTTP响应DTO
func toTrackerBookDTO(tb *tracker.TrackerBook) *dto.TrackerBookResponse {
	return &dto.TrackerBookResponse{
		ID:         tb.ID,
		TrackerID:  tb.TrackerID,
		UserBookID: tb.UserBookID,
		Completed:  tb.Completed,
		CreatedAt:  tb.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toTrackerBookAppDTO 应用层DTO → HTTP响应DTO
func toTrackerBookAppDTO(r *apptracker.TrackerBookResponse) *dto.TrackerBookResponse {
	return &dto.TrackerBookResponse{
		ID:         r.ID,
		TrackerID:  r.TrackerID,
		UserBookID: r.UserBookID,
		Completed:  r.Completed,
		CreatedAt:  r.CreatedAt,
	}
}
