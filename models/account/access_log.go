package account

import (
	"github.com/pawhub/pawhub/models/dto"
)

// AccessLog persisted audit row for mutating API operations
type AccessLog struct {
	ID         uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	UserID     uint64       `gorm:"column:user_id;index:idx_access_log_user" json:"userId"`
	Username   string       `gorm:"column:username;size:64" json:"username"`
	Module     string       `gorm:"column:module;size:64" json:"module"`
	Method     string       `gorm:"column:method;size:16" json:"method"`
	Path       string       `gorm:"column:path;size:255" json:"path"`
	IP         string       `gorm:"column:ip;size:64" json:"ip"`
	Browser    string       `gorm:"column:browser;size:64" json:"browser"`
	OS         string       `gorm:"column:os;size:64" json:"os"`
	Status     int          `gorm:"column:status" json:"status"`
	LatencyMs  int64        `gorm:"column:latency_ms" json:"latencyMs"`
	CreateTime dto.DateTime `gorm:"column:create_time;autoCreateTime" json:"createTime"`
}

func (AccessLog) TableName() string {
	return "t_access_log"
}

type AccessLogs []*AccessLog

type AccessLogQueryParam struct {
	dto.PaginationParam
	dto.OrderParam

	Username string `query:"username"`
	Module   string `query:"module"`
	Keywords string `query:"keywords"`
}

type AccessLogQueryResult struct {
	List       AccessLogs      `json:"list"`
	Pagination *dto.Pagination `json:"pagination"`
}
