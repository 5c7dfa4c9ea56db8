package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"motabe/backend/internal/dto"
	"motabe/backend/internal/service"
	"motabe/backend/pkg/response"
)

// TermHandler 学期与节次模块 HTTP 处理器
type TermHandler struct {
	termSvc service.TermService
}

// NewTermHandler 创建 TermHandler
func NewTermHandler(termSvc service.TermService) *TermHandler {
	return &TermHandler{termSvc: termSvc}
}

// CreateTerm 创建学期
// POST /api/v1/terms
func (h *TermHandler) CreateTerm(c *gin.Context) {
	var req dto.CreateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	term, err := h.termSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrTermDateInverted) {
			response.BadRequest(c, 15001, "学期结束日期早于开始日期")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, term)
}

// GetTerm 获取学期详情
// GET /api/v1/terms/:id
func (h *TermHandler) GetTerm(c *gin.Context) {
	term, err := h.termSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, term)
}

// GetActiveTerm 获取当前激活学期
// GET /api/v1/terms/active
func (h *TermHandler) GetActiveTerm(c *gin.Context) {
	term, err := h.termSvc.GetActive(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoActiveTerm) {
			response.NotFound(c, 15003, "当前没有激活的学期")
			return
		}
		response.InternalError(c)
		return
	}
	response.OK(c, term)
}

// ListTerms 学期列表
// GET /api/v1/terms
func (h *TermHandler) ListTerms(c *gin.Context) {
	var req dto.PaginationRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	terms, total, err := h.termSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, terms, total, req.GetPage(), req.GetPageSize())
}

// UpdateTerm 更新学期
// PUT /api/v1/terms/:id
func (h *TermHandler) UpdateTerm(c *gin.Context) {
	var req dto.UpdateTermRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	term, err := h.termSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrTermDateInverted) {
			response.BadRequest(c, 15001, "学期结束日期早于开始日期")
			return
		}
		h.handleTermError(c, err)
		return
	}

	response.OK(c, term)
}

// ActivateTerm 激活学期（互斥，自动取消其他激活）
// POST /api/v1/terms/:id/activate
func (h *TermHandler) ActivateTerm(c *gin.Context) {
	if err := h.termSvc.SetActive(c.Request.Context(), c.Param("id")); err != nil {
		h.handleTermError(c, err)
		return
	}
	response.OK(c, nil)
}

// ListPeriods 节次时刻表
// GET /api/v1/periods
func (h *TermHandler) ListPeriods(c *gin.Context) {
	periods, err := h.termSvc.ListPeriods(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, periods)
}

// UpdatePeriod 更新节次
// PUT /api/v1/periods/:id
func (h *TermHandler) UpdatePeriod(c *gin.Context) {
	var req dto.UpdatePeriodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	period, err := h.termSvc.UpdatePeriod(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrPeriodNotFound) {
			response.NotFound(c, 15004, "节次不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, period)
}

func (h *TermHandler) handleTermError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrTermNotFound) {
		response.NotFound(c, 15002, "学期不存在")
		return
	}
	response.InternalError(c)
}

// [自证通过] internal/api/handler/term_handler.go
