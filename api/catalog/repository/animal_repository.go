package repository

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/catalog"
	"github.com/pawhub/pawhub/pkg/gormx"
)

// AnimalRepository database structure
type AnimalRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewAnimalRepository creates a new animal repository
func NewAnimalRepository(db lib.Database, logger lib.Logger) AnimalRepository {
	return AnimalRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a AnimalRepository) WithTrx(trxHandle *gorm.DB) AnimalRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

// Query lists animals matching the filter set
func (a AnimalRepository) Query(param *catalog.AnimalQueryParam) (*catalog.AnimalQueryResult, error) {
	db := a.db.ORM.Model(&catalog.Animal{}).Where("is_deleted = ?", 0)

	if v := param.Species; v != "" {
		db = db.Where("species = ?", v)
	}

	if v := param.Breed; v != "" {
		db = db.Where("breed = ?", v)
	}

	if v := param.Gender; v != "" {
		db = db.Where("gender = ?", v)
	}

	if v := param.Status; v != "" {
		db = db.Where("status = ?", v)
	}

	if v := param.Size; v != "" {
		db = db.Where("size = ?", v)
	}

	if v := param.ShelterID; v > 0 {
		db = db.Where("shelter_id = ?", v)
	}

	if v := param.AgeMinimum; v > 0 {
		db = db.Where("age_months >= ?", v)
	}

	if v := param.AgeMaximum; v > 0 {
		db = db.Where("age_months <= ?", v)
	}

	if v := param.ExternalID; v != "" {
		db = db.Where("external_id = ?", v)
	}

	if v := param.Keywords; v != "" {
		v = "%" + v + "%"
		db = db.Where("name LIKE ? OR breed LIKE ? OR description LIKE ?", v, v, v)
	}

	db = db.Order(param.OrderParam.ParseOrder(
		"id", "name", "species", "breed", "age_months", "create_time", "update_time",
	))

	list := make(catalog.Animals, 0)
	pagination, err := gormx.QueryPagination(db, param.PaginationParam, &list)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	qr := &catalog.AnimalQueryResult{
		Pagination: pagination,
		List:       list,
	}

	return qr, nil
}

func (a AnimalRepository) Get(id uint64) (*catalog.Animal, error) {
	animal := new(catalog.Animal)

	if ok, err := gormx.QueryOne(a.db.ORM.Model(animal).Where("id=? AND is_deleted=?", id, 0), animal); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.AnimalRecordNotFound
	}

	return animal, nil
}

// GetByExternalID looks up a listing by its upstream identifier,
// including soft-deleted rows so sync never resurrects removed listings
// under a new primary key
func (a AnimalRepository) GetByExternalID(externalID string) (*catalog.Animal, error) {
	animal := new(catalog.Animal)

	if ok, err := gormx.QueryOne(a.db.ORM.Model(animal).Where("external_id=?", externalID), animal); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.AnimalRecordNotFound
	}

	return animal, nil
}

// GetByIDs loads a batch of animals, skipping soft-deleted rows
func (a AnimalRepository) GetByIDs(ids []uint64) (catalog.Animals, error) {
	list := make(catalog.Animals, 0, len(ids))
	if len(ids) == 0 {
		return list, nil
	}

	result := a.db.ORM.Model(&catalog.Animal{}).
		Where("id IN (?) AND is_deleted = ?", ids, 0).
		Find(&list)
	if result.Error != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return list, nil
}

func (a AnimalRepository) Create(animal *catalog.Animal) error {
	result := a.db.ORM.Model(animal).Create(animal)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a AnimalRepository) Update(id uint64, animal *catalog.Animal) error {
	result := a.db.ORM.Model(animal).Where("id=?", id).Select(
		"name", "species", "breed", "gender", "age_months", "size",
		"description", "status", "shelter_id", "photo_url",
	).Updates(animal)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a AnimalRepository) UpdateStatus(id uint64, status string) error {
	result := a.db.ORM.Model(&catalog.Animal{}).Where("id=?", id).Update("status", status)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a AnimalRepository) UpdatePhotoURL(id uint64, photoURL string) error {
	result := a.db.ORM.Model(&catalog.Animal{}).Where("id=?", id).Update("photo_url", photoURL)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a AnimalRepository) Delete(id uint64) error {
	// soft delete
	result := a.db.ORM.Model(&catalog.Animal{}).Where("id=?", id).Update("is_deleted", 1)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

// DistinctSpecies returns the species values currently listed
func (a AnimalRepository) DistinctSpecies() ([]string, error) {
	values := make([]string, 0)
	result := a.db.ORM.Model(&catalog.Animal{}).
		Where("is_deleted = ? AND species <> ''", 0).
		Distinct().Order("species").Pluck("species", &values)
	if result.Error != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return values, nil
}

// DistinctBreeds returns the breed values currently listed, optionally
// narrowed to one species
func (a AnimalRepository) DistinctBreeds(species string) ([]string, error) {
	db := a.db.ORM.Model(&catalog.Animal{}).Where("is_deleted = ? AND breed <> ''", 0)
	if species != "" {
		db = db.Where("species = ?", species)
	}

	values := make([]string, 0)
	result := db.Distinct().Order("breed").Pluck("breed", &values)
	if result.Error != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return values, nil
}

// MarkVanished flips still-available synced listings that upstream no
// longer reports to adopted, returning the affected ids so callers can
// invalidate cached reads. Manually created listings carry no external
// id and are never touched.
func (a AnimalRepository) MarkVanished(seenExternalIDs []string, status string) ([]uint64, error) {
	db := a.db.ORM.Model(&catalog.Animal{}).
		Where("external_id <> '' AND is_deleted = ? AND status = ?", 0, "available")
	if len(seenExternalIDs) > 0 {
		db = db.Where("external_id NOT IN (?)", seenExternalIDs)
	}

	ids := make([]uint64, 0)
	if err := db.Pluck("id", &ids).Error; err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}
	if len(ids) == 0 {
		return ids, nil
	}

	result := a.db.ORM.Model(&catalog.Animal{}).
		Where("id IN (?)", ids).
		Update("status", status)
	if result.Error != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return ids, nil
}
