package service

import (
	"gorm.io/gorm"

	"github.com/pawhub/pawhub/api/account/repository"
	"github.com/pawhub/pawhub/constants"
	"github.com/pawhub/pawhub/errors"
	"github.com/pawhub/pawhub/lib"
	"github.com/pawhub/pawhub/models/account"
	"github.com/pawhub/pawhub/models/dto"
	"github.com/pawhub/pawhub/pkg/hash"
)

// UserService service layer
type UserService struct {
	logger         lib.Logger
	config         lib.Config
	userRepository repository.UserRepository
}

// NewUserService creates a new user service
func NewUserService(
	logger lib.Logger,
	config lib.Config,
	userRepository repository.UserRepository,
) UserService {
	return UserService{
		logger:         logger,
		config:         config,
		userRepository: userRepository,
	}
}

// WithTrx delegates transaction to repository database
func (a UserService) WithTrx(trxHandle *gorm.DB) UserService {
	a.userRepository = a.userRepository.WithTrx(trxHandle)
	return a
}

func (a UserService) Get(id uint64) (*account.User, error) {
	return a.userRepository.Get(id)
}

func (a UserService) GetByUsername(username string) (*account.User, error) {
	return a.userRepository.GetByUsername(username)
}

// Register creates a new adopter account with a bcrypt password hash
func (a UserService) Register(form *dto.Register) (*account.User, error) {
	if _, err := a.userRepository.GetByUsername(form.Username); err == nil {
		return nil, errors.UserAlreadyExists
	} else if !errors.Is(err, errors.UserRecordNotFound) {
		return nil, err
	}

	hashed, err := hash.BcryptHash(form.Password)
	if err != nil {
		return nil, err
	}

	nickname := form.Nickname
	if nickname == "" {
		nickname = form.Username
	}

	user := &account.User{
		Username: form.Username,
		Nickname: nickname,
		Password: hashed,
		Email:    form.Email,
		Status:   constants.StatusEnable,
	}

	if err := a.userRepository.Create(user); err != nil {
		return nil, err
	}

	return user.CleanSecure(), nil
}

// Verify checks the credentials for login
func (a UserService) Verify(username, password string) (*account.User, error) {
	user, err := a.userRepository.GetByUsername(username)
	if err != nil {
		if errors.Is(err, errors.UserRecordNotFound) {
			return nil, errors.UserInvalidPassword
		}
		return nil, err
	}

	if !hash.BcryptCheck(password, user.Password) {
		return nil, errors.UserInvalidPassword
	}
	if user.Status != constants.StatusEnable {
		return nil, errors.UserIsDisable
	}

	return user, nil
}

// GetCurrentUserInfo builds the /users/me payload
func (a UserService) GetCurrentUserInfo(id uint64) (*dto.CurrentUserInfo, error) {
	user, err := a.userRepository.Get(id)
	if err != nil {
		return nil, err
	}

	return &dto.CurrentUserInfo{
		UserID:   user.ID,
		Username: user.Username,
		Nickname: user.Nickname,
		Avatar:   user.Avatar,
		Email:    user.Email,
		IsAdmin:  user.Admin(),
	}, nil
}

// UpdateProfile applies the self-service profile form
func (a UserService) UpdateProfile(id uint64, form *account.ProfileForm) error {
	if _, err := a.userRepository.Get(id); err != nil {
		return err
	}

	return a.userRepository.UpdateProfile(id, &account.User{
		Nickname: form.Nickname,
		Avatar:   form.Avatar,
		Email:    form.Email,
	})
}

// UpdatePassword verifies the old password before storing the new hash
func (a UserService) UpdatePassword(id uint64, form *account.PasswordForm) error {
	current, err := a.userRepository.Get(id)
	if err != nil {
		return err
	}

	if !hash.BcryptCheck(form.OldPassword, current.Password) {
		return errors.UserInvalidPassword
	}

	hashed, err := hash.BcryptHash(form.NewPassword)
	if err != nil {
		return err
	}

	return a.userRepository.UpdatePassword(id, hashed)
}

// SeedAdmin creates the maintenance account from config when it does not
// exist yet, used by the setup command
func (a UserService) SeedAdmin() error {
	admin := a.config.Admin
	if admin == nil || admin.Username == "" || admin.Password == "" {
		return nil
	}

	if _, err := a.userRepository.GetByUsername(admin.Username); err == nil {
		return nil
	} else if !errors.Is(err, errors.UserRecordNotFound) {
		return err
	}

	hashed, err := hash.BcryptHash(admin.Password)
	if err != nil {
		return err
	}

	nickname := admin.Nickname
	if nickname == "" {
		nickname = admin.Username
	}

	return a.userRepository.Create(&account.User{
		Username: admin.Username,
		Nickname: nickname,
		Password: hashed,
		Status:   constants.StatusEnable,
		IsAdmin:  1,
	})
}
