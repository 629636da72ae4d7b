package handler

import (
	"errors"

	"github.com/gin-gonic/gin"

	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/dto"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/internal/service"
	"github.com/ZhibangYue/The-backend-of-Stranger-Together/pkg/response"
)

// QuestionHandler 问题模块 HTTP 处理器，前后台共用
type QuestionHandler struct {
	questionSvc *service.QuestionService
}

// NewQuestionHandler 创建 QuestionHandler
func NewQuestionHandler(questionSvc *service.QuestionService) *QuestionHandler {
	return &QuestionHandler{questionSvc: questionSvc}
}

// ── 前台 ──

// Create 创建问题
// POST /api/v1/infront/questions
func (h *QuestionHandler) Create(c *gin.Context) {
	source, ok := MustGetStudentNumber(c)
	if !ok {
		return
	}

	var req dto.CreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.questionSvc.Create(c.Request.Context(), source, &req)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// ListMine 查自己的全部问题
// GET /api/v1/infront/questions/mine
func (h *QuestionHandler) ListMine(c *gin.Context) {
	source, ok := MustGetStudentNumber(c)
	if !ok {
		return
	}

	result, err := h.questionSvc.ListMine(c.Request.Context(), source)
	if err != nil {
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// BulletScreen 弹幕墙随机抽样
// GET /api/v1/infront/questions/bullet-screen
func (h *QuestionHandler) BulletScreen(c *gin.Context) {
	result, err := h.questionSvc.BulletScreen(c.Request.Context())
	if err != nil {
		if errors.Is(err, service.ErrNoScreenContent) {
			response.NotFound(c, 13004, "暂无弹幕内容")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// DeleteOwn 删除自己的问题
// DELETE /api/v1/infront/questions/:sn
func (h *QuestionHandler) DeleteOwn(c *gin.Context) {
	source, ok := MustGetStudentNumber(c)
	if !ok {
		return
	}
	sn, ok := parseUintParam(c, "sn")
	if !ok {
		return
	}

	if err := h.questionSvc.DeleteOwn(c.Request.Context(), source, sn); err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, nil)
}

// RepliesOfMyQuestion 分页查自己问题下的已过审回复
// GET /api/v1/infront/questions/:sn/replies?page=1&limit=10
func (h *QuestionHandler) RepliesOfMyQuestion(c *gin.Context) {
	source, ok := MustGetStudentNumber(c)
	if !ok {
		return
	}
	sn, ok := parseUintParam(c, "sn")
	if !ok {
		return
	}

	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	result, err := h.questionSvc.RepliesOfMyQuestion(c.Request.Context(), source, sn, &page)
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, result)
}

// ── 后台 ──

// List 分页查全部问题
// GET /api/v1/background/questions?page=1&limit=10
func (h *QuestionHandler) List(c *gin.Context) {
	var page dto.PageRequest
	if err := c.ShouldBindQuery(&page); err != nil {
		response.BadRequest(c, 10001, "分页参数无效")
		return
	}

	result, err := h.questionSvc.ListPage(c.Request.Context(), &page)
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, result)
}

// Get 按序号查单个问题
// GET /api/v1/background/questions/:sn
func (h *QuestionHandler) Get(c *gin.Context) {
	sn, ok := parseUintParam(c, "sn")
	if !ok {
		return
	}

	result, err := h.questionSvc.GetBySN(c.Request.Context(), sn)
	if err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, result)
}

// ListByOwner 按提问者学工号查其全部问题
// GET /api/v1/background/users/:student_number/questions
func (h *QuestionHandler) ListByOwner(c *gin.Context) {
	source := c.Param("student_number")

	result, err := h.questionSvc.ListBySource(c.Request.Context(), source)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12002, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.OK(c, result)
}

// CreateFor 代指定用户创建问题
// POST /api/v1/background/questions
func (h *QuestionHandler) CreateFor(c *gin.Context) {
	var req dto.AdminCreateQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	result, err := h.questionSvc.CreateFor(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			response.NotFound(c, 12002, "用户不存在")
			return
		}
		response.InternalError(c)
		return
	}

	response.Created(c, result)
}

// DeleteBatch 批量删除问题
// DELETE /api/v1/background/questions
func (h *QuestionHandler) DeleteBatch(c *gin.Context) {
	var req dto.BatchDeleteQuestionsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.questionSvc.DeleteBatch(c.Request.Context(), req.SNs); err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, nil)
}

// Examine 审核问题
// PUT /api/v1/background/questions/examine
func (h *QuestionHandler) Examine(c *gin.Context) {
	var req dto.ExamineQuestionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, 10001, "参数校验失败")
		return
	}

	if err := h.questionSvc.Examine(c.Request.Context(), &req); err != nil {
		h.handleQuestionError(c, err)
		return
	}

	response.OK(c, nil)
}

// handleQuestionError 问题模块通用错误映射
func (h *QuestionHandler) handleQuestionError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrQuestionNotFound):
		response.NotFound(c, 13001, "问题不存在")
	case errors.Is(err, service.ErrNoPermission):
		response.Forbidden(c, 10003, "没有权限操作该内容")
	case errors.Is(err, service.ErrQuestionHasReplies):
		response.Forbidden(c, 13002, "问题下存在回复，无法删除")
	case errors.Is(err, service.ErrNoMoreContent):
		response.NotFound(c, 13003, "没有更多内容")
	default:
		response.InternalError(c)
	}
}

// [自证通过] internal/api/handler/question_handler.go
