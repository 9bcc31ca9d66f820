package repository

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/pkg/gormx"
)

// ShelterRepository database structure
type ShelterRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewShelterRepository creates a new shelter repository
func NewShelterRepository(db lib.Database, logger lib.Logger) ShelterRepository {
	return ShelterRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a ShelterRepository) WithTrx(trxHandle *gorm.DB) ShelterRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a ShelterRepository) Query(param *catalog.ShelterQueryParam) (*catalog.ShelterQueryResult, error) {
	db := a.db.ORM.Model(&catalog.Shelter{})

	if v := param.City; v != "" {
		db = db.Where("city = ?", v)
	}

	if v := param.Keywords; v != "" {
		v = "%" + v + "%"
		db = db.Where("name LIKE ? OR city LIKE ?", v, v)
	}

	db = db.Order(param.OrderParam.ParseOrder("id", "name", "city", "create_time"))

	list := make(catalog.Shelters, 0)
	pagination, err := gormx.QueryPagination(db, param.PaginationParam, &list)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	qr := &catalog.ShelterQueryResult{
		Pagination: pagination,
		List:       list,
	}

	return qr, nil
}

func (a ShelterRepository) Get(id uint64) (*catalog.Shelter, error) {
	shelter := new(catalog.Shelter)

	if ok, err := gormx.QueryOne(a.db.ORM.Model(shelter).Where("id=?", id), shelter); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.ShelterRecordNotFound
	}

	return shelter, nil
}

func (a ShelterRepository) GetByExternalID(externalID string) (*catalog.Shelter, error) {
	shelter := new(catalog.Shelter)

	if ok, err := gormx.QueryOne(a.db.ORM.Model(shelter).Where("external_id=?", externalID), shelter); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.ShelterRecordNotFound
	}

	return shelter, nil
}

func (a ShelterRepository) GetByIDs(ids []uint64) (map[uint64]*catalog.Shelter, error) {
	list := make(catalog.Shelters, 0, len(ids))
	if len(ids) == 0 {
		return list.ToIDMap(), nil
	}

	result := a.db.ORM.Model(&catalog.Shelter{}).Where("id IN (?)", ids).Find(&list)
	if result.Error != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return list.ToIDMap(), nil
}

func (a ShelterRepository) Create(shelter *catalog.Shelter) error {
	result := a.db.ORM.Model(shelter).Create(shelter)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a ShelterRepository) Update(id uint64, shelter *catalog.Shelter) error {
	result := a.db.ORM.Model(shelter).Where("id=?", id).Select(
		"name", "city", "email", "phone",
	).Updates(shelter)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a ShelterRepository) Delete(id uint64) error {
	result := a.db.ORM.Where("id=?", id).Delete(&catalog.Shelter{})
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

// Options lists every shelter as an id/name pair for filter dropdowns
func (a ShelterRepository) Options() ([]*catalog.ShelterOption, error) {
	options := make([]*catalog.ShelterOption, 0)
	result := a.db.ORM.Model(&catalog.Shelter{}).
		Select("id", "name").Order("name").Find(&options)
	if result.Error != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return options, nil
}
