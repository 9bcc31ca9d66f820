package repository

import (
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
	"github.com/pawhub/pawhub/pkg/gormx"
)

// AccessLogRepository database structure
type AccessLogRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewAccessLogRepository creates a new access log repository
func NewAccessLogRepository(db lib.Database, logger lib.Logger) AccessLogRepository {
	return AccessLogRepository{
		db:     db,
		logger: logger,
	}
}

func (a AccessLogRepository) Query(param *account.AccessLogQueryParam) (*account.AccessLogQueryResult, error) {
	db := a.db.ORM.Model(&account.AccessLog{})

	if v := param.Username; v != "" {
		db = db.Where("username = ?", v)
	}

	if v := param.Module; v != "" {
		db = db.Where("module = ?", v)
	}

	if v := param.Keywords; v != "" {
		v = "%" + v + "%"
		db = db.Where("path LIKE ? OR username LIKE ?", v, v)
	}

	db = db.Order(param.OrderParam.ParseOrder("id", "username", "module", "latency_ms", "create_time"))

	list := make(account.AccessLogs, 0)
	pagination, err := gormx.QueryPagination(db, param.PaginationParam, &list)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	qr := &account.AccessLogQueryResult{
		Pagination: pagination,
		List:       list,
	}

	return qr, nil
}

func (a AccessLogRepository) Create(row *account.AccessLog) error {
	result := a.db.ORM.Model(row).Create(row)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}
