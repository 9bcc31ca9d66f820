package service

import (
	"github.com/pawhub/pawhub/api/account/repository"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
)

// AccessLogService service layer
type AccessLogService struct {
	logger              lib.Logger
	accessLogRepository repository.AccessLogRepository
}

// NewAccessLogService creates a new access log service
func NewAccessLogService(
	logger lib.Logger,
	accessLogRepository repository.AccessLogRepository,
) AccessLogService {
	return AccessLogService{
		logger:              logger,
		accessLogRepository: accessLogRepository,
	}
}

func (a AccessLogService) Create(row *account.AccessLog) error {
	return a.accessLogRepository.Create(row)
}

func (a AccessLogService) Query(param *account.AccessLogQueryParam) (*account.AccessLogQueryResult, error) {
	return a.accessLogRepository.Query(param)
}
