package repository

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/pkg/gormx"
)

// FavoriteRepository database structure
type FavoriteRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewFavoriteRepository creates a new favorite repository
func NewFavoriteRepository(db lib.Database, logger lib.Logger) FavoriteRepository {
	return FavoriteRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a FavoriteRepository) WithTrx(trxHandle *gorm.DB) FavoriteRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a FavoriteRepository) Query(param *catalog.FavoriteQueryParam) (*catalog.FavoriteQueryResult, error) {
	db := a.db.ORM.Model(&catalog.Favorite{})

	if v := param.UserID; v > 0 {
		db = db.Where("user_id = ?", v)
	}

	if v := param.AnimalIDs; len(v) > 0 {
		db = db.Where("animal_id IN (?)", v)
	}

	db = db.Order("create_time DESC, id DESC")

	list := make(catalog.Favorites, 0)
	pagination, err := gormx.QueryPagination(db, param.PaginationParam, &list)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	qr := &catalog.FavoriteQueryResult{
		Pagination: pagination,
		List:       list,
	}

	return qr, nil
}

// Get finds one user/animal pair, DatabaseRecordNotFound when absent
func (a FavoriteRepository) Get(userID, animalID uint64) (*catalog.Favorite, error) {
	favorite := new(catalog.Favorite)

	query := a.db.ORM.Model(favorite).Where("user_id=? AND animal_id=?", userID, animalID)
	if ok, err := gormx.QueryOne(query, favorite); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.DatabaseRecordNotFound
	}

	return favorite, nil
}

func (a FavoriteRepository) Create(favorite *catalog.Favorite) error {
	result := a.db.ORM.Model(favorite).Create(favorite)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

// Delete removes one user/animal pair; the second return reports whether
// a row actually existed
func (a FavoriteRepository) Delete(userID, animalID uint64) (bool, error) {
	result := a.db.ORM.Where("user_id=? AND animal_id=?", userID, animalID).Delete(&catalog.Favorite{})
	if result.Error != nil {
		return false, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return result.RowsAffected > 0, nil
}

// DeleteByAnimal clears all favorites referencing a removed listing
func (a FavoriteRepository) DeleteByAnimal(animalID uint64) error {
	result := a.db.ORM.Where("animal_id=?", animalID).Delete(&catalog.Favorite{})
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}
