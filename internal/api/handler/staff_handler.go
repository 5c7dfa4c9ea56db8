package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"motabe/backend/internal/dto"
	"motabe/backend/internal/service"
	"motabe/backend/pkg/response"
)

// StaffHandler 教职工名册模块 HTTP 处理器
type StaffHandler struct {
	staffSvc service.StaffService
}

// NewStaffHandler 创建 StaffHandler
func NewStaffHandler(staffSvc service.StaffService) *StaffHandler {
	return &StaffHandler{staffSvc: staffSvc}
}

// CreateStaff 录入教职工
// POST /api/v1/staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req dto.CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	staff, err := h.staffSvc.Create(c.Request.Context(), &req, callerID)
	if err != nil {
		if errors.Is(err, service.ErrTeacherNeedPeriod) {
			response.BadRequest(c, 13001, "教师必须填写当日最后授课节次")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, staff)
}

// GetStaff 获取教职工详情
// GET /api/v1/staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staff, err := h.staffSvc.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.OK(c, staff)
}

// ListStaff 名册列表
// GET /api/v1/staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	var req dto.StaffListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	staff, total, err := h.staffSvc.List(c.Request.Context(), &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OKPage(c, staff, total, req.GetPage(), req.GetPageSize())
}

// UpdateStaff 更新教职工
// PUT /api/v1/staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	var req dto.UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	staff, err := h.staffSvc.Update(c.Request.Context(), c.Param("id"), &req, callerID)
	if err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, staff)
}

// DeleteStaff 删除教职工
// DELETE /api/v1/staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	if err := h.staffSvc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.handleStaffError(c, err)
		return
	}
	response.OK(c, nil)
}

// SetExclusion 设置排除规则
// PUT /api/v1/staff/:id/exclusion
func (h *StaffHandler) SetExclusion(c *gin.Context) {
	var req dto.SetExclusionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	callerID, ok := MustGetUserID(c)
	if !ok {
		return
	}

	if err := h.staffSvc.SetExclusion(c.Request.Context(), c.Param("id"), &req, callerID); err != nil {
		h.handleStaffError(c, err)
		return
	}

	response.OK(c, nil)
}

// PoolPreview 可用人员池预览
// GET /api/v1/staff/pool-preview
func (h *StaffHandler) PoolPreview(c *gin.Context) {
	preview, err := h.staffSvc.PoolPreview(c.Request.Context())
	if err != nil {
		response.InternalError(c)
		return
	}
	response.OK(c, preview)
}

func (h *StaffHandler) handleStaffError(c *gin.Context, err error) {
	if errors.Is(err, service.ErrStaffNotFound) {
		response.NotFound(c, 13002, "教职工不存在")
		return
	}
	response.InternalError(c)
}

// [自证通过] internal/api/handler/staff_handler.go
