package account

import (
	"github.com/pawhub/pawhub/models/dto"
)

// User registered adopter account
// Status: 1-enabled 0-disabled
type User struct {
	ID         uint64       `gorm:"primaryKey;autoIncrement" json:"id"`
	Username   string       `gorm:"column:username;size:64;uniqueIndex:idx_user_username" json:"username"`
	Nickname   string       `gorm:"column:nickname;size:64" json:"nickname"`
	Password   string       `gorm:"column:password;size:100" json:"password,omitempty"`
	Avatar     string       `gorm:"column:avatar;size:255" json:"avatar"`
	Email      string       `gorm:"column:email;size:128" json:"email"`
	Status     int          `gorm:"column:status;default:1" json:"status"`
	IsAdmin    int          `gorm:"column:is_admin;default:0" json:"isAdmin"`
	CreateTime dto.DateTime `gorm:"column:create_time;autoCreateTime" json:"createTime"`
	UpdateTime dto.DateTime `gorm:"column:update_time;autoUpdateTime" json:"updateTime"`
	IsDeleted  int          `gorm:"column:is_deleted;default:0" json:"-"`
}

func (User) TableName() string {
	return "t_user"
}

func (a *User) CleanSecure() *User {
	a.Password = ""
	return a
}

func (a *User) Admin() bool {
	return a.IsAdmin == 1
}

type Users []*User

type UserQueryParam struct {
	dto.PaginationParam
	dto.OrderParam

	QueryPassword bool
	Username      string `query:"username"`
	Status        *int   `query:"status"`
	Keywords      string `query:"keywords"`
}

type UserQueryResult struct {
	List       Users           `json:"list"`
	Pagination *dto.Pagination `json:"pagination"`
}

// ProfileForm is the self-service profile update payload.
type ProfileForm struct {
	Nickname string `json:"nickname" validate:"max=64"`
	Avatar   string `json:"avatar" validate:"omitempty,url"`
	Email    string `json:"email" validate:"omitempty,email"`
}

// PasswordForm carries a password change request.
type PasswordForm struct {
	OldPassword string `json:"oldPassword" validate:"required"`
	NewPassword string `json:"newPassword" validate:"required,min=6"`
}
