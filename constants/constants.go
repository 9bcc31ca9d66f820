package constants

// Version is the release tag surfaced in the swagger document.
const Version = "1.0.0"

// Echo context keys
const (
	DBTransaction = "db_trx"
	CurrentUser   = "current_user"
)

// Redis databases
const (
	RedisMainDB = 0
)

// Captcha
const (
	CaptchaKeyPrefix     = "captcha"
	CaptchaExpireTimes   = 300 // seconds
	CaptchaDefaultWidth  = 240
	CaptchaDefaultHeight = 80
)

// Record status
const (
	StatusEnable  = 1
	StatusDisable = 0
)

// Animal adoption status
const (
	AnimalStatusAvailable = "available"
	AnimalStatusPending   = "pending"
	AnimalStatusAdopted   = "adopted"
)
