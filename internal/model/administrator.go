package model

// Administrator 后台管理员表 — 对应 administrators
// 与用户表共用学工号编号体系但相互独立，仅通过注册接口创建
type Administrator struct {
	ID             uint   `gorm:"primaryKey;autoIncrement"               json:"id"`
	StudentNumber  string `gorm:"type:varchar(12);not null;uniqueIndex" json:"student_number"`
	Name           string `gorm:"type:varchar(20);not null"             json:"name"`
	HashedPassword string `gorm:"type:varchar(200);not null"            json:"-"`
}

// TableName 指定表名
func (Administrator) TableName() string { return "administrators" }

// [自证通过] internal/model/administrator.go
