package repository

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
	"github.com/pawhub/pawhub/pkg/gormx"
)

// UserRepository database structure
type UserRepository struct {
	db     lib.Database
	logger lib.Logger
}

// NewUserRepository creates a new user repository
func NewUserRepository(db lib.Database, logger lib.Logger) UserRepository {
	return UserRepository{
		db:     db,
		logger: logger,
	}
}

// WithTrx enables repository with transaction
func (a UserRepository) WithTrx(trxHandle *gorm.DB) UserRepository {
	if trxHandle == nil {
		return a
	}

	a.db.ORM = trxHandle
	return a
}

func (a UserRepository) Query(param *account.UserQueryParam) (*account.UserQueryResult, error) {
	db := a.db.ORM.Model(&account.User{}).Where("is_deleted = ?", 0)

	if v := param.QueryPassword; !v {
		db = db.Omit("password")
	}

	if v := param.Username; v != "" {
		db = db.Where("username = ?", v)
	}

	if v := param.Status; v != nil {
		db = db.Where("status = ?", *v)
	}

	if v := param.Keywords; v != "" {
		v = "%" + v + "%"
		db = db.Where("username LIKE ? OR nickname LIKE ? OR email LIKE ?", v, v, v)
	}

	db = db.Order(param.OrderParam.ParseOrder("id", "username", "create_time"))

	list := make(account.Users, 0)
	pagination, err := gormx.QueryPagination(db, param.PaginationParam, &list)
	if err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	}

	qr := &account.UserQueryResult{
		Pagination: pagination,
		List:       list,
	}

	return qr, nil
}

func (a UserRepository) Get(id uint64) (*account.User, error) {
	user := new(account.User)

	if ok, err := gormx.QueryOne(a.db.ORM.Model(user).Where("id=? AND is_deleted=?", id, 0), user); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.UserRecordNotFound
	}

	return user, nil
}

func (a UserRepository) GetByUsername(username string) (*account.User, error) {
	user := new(account.User)

	query := a.db.ORM.Model(user).Where("username=? AND is_deleted=?", username, 0)
	if ok, err := gormx.QueryOne(query, user); err != nil {
		return nil, errors.Wrap(errors.DatabaseInternalError, err.Error())
	} else if !ok {
		return nil, errors.UserRecordNotFound
	}

	return user, nil
}

func (a UserRepository) Create(user *account.User) error {
	result := a.db.ORM.Model(user).Create(user)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a UserRepository) UpdateProfile(id uint64, user *account.User) error {
	result := a.db.ORM.Model(user).Where("id=?", id).Select(
		"nickname", "avatar", "email",
	).Updates(user)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a UserRepository) UpdatePassword(id uint64, password string) error {
	result := a.db.ORM.Model(&account.User{}).Where("id=?", id).Update("password", password)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}

func (a UserRepository) Delete(id uint64) error {
	// soft delete
	result := a.db.ORM.Model(&account.User{}).Where("id=?", id).Update("is_deleted", 1)
	if result.Error != nil {
		return errors.Wrap(errors.DatabaseInternalError, result.Error.Error())
	}

	return nil
}
