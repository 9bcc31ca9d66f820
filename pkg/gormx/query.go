// Package gormx carries small query helpers shared by the repositories.
package gormx

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/models/dto"
)

// QueryPagination counts the filtered set, loads the requested page into
// out and assembles the page metadata block
func QueryPagination(db *gorm.DB, param dto.PaginationParam, out interface{}) (*dto.Pagination, error) {
	var total int64
	if err := db.Count(&total).Error; err != nil {
		return nil, err
	}

	pageNum := param.GetPageNum()
	pageSize := param.GetPageSize()

	if err := db.Offset((pageNum - 1) * pageSize).Limit(pageSize).Find(out).Error; err != nil {
		return nil, err
	}

	return dto.NewPagination(total, param), nil
}

// QueryOne loads the first matching row into out; the second return is
// false when no row matched
func QueryOne(db *gorm.DB, out interface{}) (bool, error) {
	result := db.First(out)
	if result.Error != nil {
		if result.Error == gorm.ErrRecordNotFound {
			return false, nil
		}
		return false, result.Error
	}

	return true, nil
}
