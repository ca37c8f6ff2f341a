package handler

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	apptracker "github.com/bookbuddy/server/internal/application/tracker"
	"github.com/bookbuddy/server/internal/domain/tracker"
	"github.com/bookbuddy/server/internal/interface/http/dto"
	"github.com/bookbuddy/server/pkg/response"
)

// TrackerHandler 月度阅读追踪器HTTP处理器
type TrackerHandler struct {
	createTrackerUseCase *apptracker.CreateTrackerUseCase
	trackerService       tracker.Service
}

// NewTrackerHandler 创建追踪器处理器
func NewTrackerHandler(
	createTrackerUseCase *apptracker.CreateTrackerUseCase,
	trackerService tracker.Service,
) *TrackerHandler {
	return &TrackerHandler{
		createTrackerUseCase: createTrackerUseCase,
		trackerService:       trackerService,
	}
}

// Create 创建月度追踪器
// @Summary      创建月度追踪器
// @Description  为用户创建某年某月的阅读目标,同一用户同一月份只能有一个
// @Tags         追踪器
// @Accept       json
// @Produce      json
// @Param        request body dto.CreateTrackerRequest true "追踪器信息"
// @Success      201 {object} response.Response{data=dto.TrackerResponse}
// @Failure      400 {object} response.Response "参数错误"
// @Failure      404 {object} response.Response "用户不存在"
// @Failure      409 {object} response.Response "该月份追踪器已存在"
// @Router       /api/v1/monthly-tracker [post]
func (h *TrackerHandler) Create(c *gin.Context) {
	var req dto.CreateTrackerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	result, err := h.createTrackerUseCase.Execute(c.Request.Context(), apptracker.CreateTrackerRequest{
		UserID:         req.UserID,
		Month:          req.Month,
		Year:           req.Year,
		TargetBooksNum: req.TargetBooksNum,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, toTrackerAppDTO(result))
}

// GetByID 查询追踪器详情
// @Summary      查询追踪器详情
// @Tags         追踪器
// @Produce      json
// @Param        id path int true "追踪器ID"
// @Success      200 {object} response.Response{data=dto.TrackerResponse}
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker/{id} [get]
func (h *TrackerHandler) GetByID(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器ID")
		return
	}

	t, err := h.trackerService.GetByID(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toTrackerDTO(t))
}

// ListByUser 查询用户的全部追踪器
// @Summary      查询用户的全部追踪器
// @Description  按年份月份降序返回
// @Tags         追踪器
// @Produce      json
// @Param        userId path int true "用户ID"
// @Success      200 {object} response.Response{data=[]dto.TrackerResponse}
// @Router       /api/v1/monthly-tracker/user/{userId} [get]
func (h *TrackerHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	trackers, err := h.trackerService.ListByUser(c.Request.Context(), uint(userID))
	if err != nil {
		response.Error(c, err)
		return
	}

	list := make([]*dto.TrackerResponse, 0, len(trackers))
	for _, t := range trackers {
		list = append(list, toTrackerDTO(t))
	}

	response.Success(c, list)
}

// GetCurrent 查询用户当前月份的追踪器
// @Summary      查询当前月份追踪器
// @Description  按服务器本地时间的年月查询
// @Tags         追踪器
// @Produce      json
// @Param        userId path int true "用户ID"
// @Success      200 {object} response.Response{data=dto.TrackerResponse}
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker/user/{userId}/current [get]
func (h *TrackerHandler) GetCurrent(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	now := time.Now()
	t, err := h.trackerService.GetByUserAndPeriod(c.Request.Context(), uint(userID),
		int(now.Month()), strconv.Itoa(now.Year()))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toTrackerDTO(t))
}

// GetByMonth 按年月查询用户追踪器
// @Summary      按年月查询追踪器
// @Tags         追踪器
// @Produce      json
// @Param        userId path int true "用户ID"
// @Param        month query int true "月份(1-12)"
// @Param        year query string true "年份(4位)"
// @Success      200 {object} response.Response{data=dto.TrackerResponse}
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker/user/{userId}/month [get]
func (h *TrackerHandler) GetByMonth(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("userId"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的用户ID")
		return
	}

	month, err := strconv.Atoi(c.Query("month"))
	if err != nil {
		response.BadRequest(c, "无效的月份")
		return
	}
	year := c.Query("year")

	t, err := h.trackerService.GetByUserAndPeriod(c.Request.Context(), uint(userID), month, year)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toTrackerDTO(t))
}

// UpdateGoal 调整月度目标
// @Summary      调整月度目标
// @Tags         追踪器
// @Accept       json
// @Produce      json
// @Param        id path int true "追踪器ID"
// @Param        request body dto.UpdateGoalRequest true "新目标"
// @Success      200 {object} response.Response{data=dto.TrackerResponse}
// @Failure      400 {object} response.Response "目标必须大于0"
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker/{id}/goal [put]
func (h *TrackerHandler) UpdateGoal(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器ID")
		return
	}

	var req dto.UpdateGoalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, "参数错误: "+err.Error())
		return
	}

	t, err := h.trackerService.UpdateGoal(c.Request.Context(), uint(id), req.TargetBooksNum)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, toTrackerDTO(t))
}

// Delete 删除追踪器
// @Summary      删除追踪器
// @Description  级联删除其中的追踪器图书(书架条目不受影响)
// @Tags         追踪器
// @Produce      json
// @Param        id path int true "追踪器ID"
// @Success      200 {object} response.Response "删除成功"
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker/{id} [delete]
func (h *TrackerHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器ID")
		return
	}

	if err := h.trackerService.Delete(c.Request.Context(), uint(id)); err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, gin.H{"message": "删除成功"})
}

// Progress 查询阅读进度
// @Summary      查询阅读进度
// @Description  completion_percentage=读完数/目标数,四舍五入两位小数,可超过100
// @Tags         追踪器
// @Produce      json
// @Param        id path int true "追踪器ID"
// @Success      200 {object} response.Response{data=dto.ProgressResponse}
// @Failure      404 {object} response.Response "追踪器不存在"
// @Router       /api/v1/monthly-tracker/{id}/progress [get]
func (h *TrackerHandler) Progress(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.BadRequest(c, "无效的追踪器ID")
		return
	}

	p, err := h.trackerService.CalculateProgress(c.Request.Context(), uint(id))
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, &dto.ProgressResponse{
		TrackerID:            p.TrackerID,
		TargetBooks:          p.TargetBooks,
		TotalBooks:           p.TotalBooks,
		CompletedBooks:       p.CompletedBooks,
		CompletionPercentage: p.CompletionPercentage,
		Month:                p.Month,
		Year:                 p.Year,
	})
}

// toTrackerDTO 领域实体 → HTTP响应DTO
func toTrackerDTO(t *tracker.MonthlyTracker) *dto.TrackerResponse {
	return &dto.TrackerResponse{
		ID:             t.ID,
		UserID:         t.UserID,
		Month:          t.Month.String(),
		MonthValue:     int(t.Month),
		Year:           t.Year,
		TargetBooksNum: t.TargetBooksNum,
		CreatedAt:      t.CreatedAt.Format("2006-01-02 15:04:05"),
	}
}

// toTrackerAppDTO 应用层DTO → HTTP响应DTO
func toTrackerAppDTO(r *apptracker.TrackerResponse) *dto.TrackerResponse {
	return &dto.TrackerResponse{
		ID:             r.ID,
		UserID:         r.UserID,
		Month:          r.Month,
		MonthValue:     r.MonthValue,
		Year:           r.Year,
		TargetBooksNum: r.TargetBooksNum,
		CreatedAt:      r.CreatedAt,
	}
}
