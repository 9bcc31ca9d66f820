package lib

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

var configPath = "./config.yml"

var defaultConfig = Config{
	Name: "pawhub",
	Http: &HttpConfig{
		Host: "0.0.0.0",
		Port: 8080,
	},
	Log: &LogConfig{
		Level:       "debug",
		Directory:   "/tmp/pawhub",
		Development: true,
	},
	Admin:   &AdminConfig{},
	Auth:    &AuthConfig{TokenExpired: 86400},
	Captcha: &CaptchaConfig{Enable: true},
	Cache:   &CacheConfig{Type: "memory"},
	Database: &DatabaseConfig{
		Engine:       "sqlite",
		Parameters:   "charset=utf8mb4&parseTime=True&loc=Local&allowNativePasswords=true&timeout=5s",
		MaxLifetime:  7200,
		MaxOpenConns: 150,
		MaxIdleConns: 50,
	},
	OSS: &OSSConfig{Type: "local", Local: &LocalOSSConfig{StoragePath: "./uploads", BaseURL: "/uploads"}},
	Upstream: &UpstreamConfig{
		PageSize: 100,
		Schedule: "0 */30 * * * *",
	},
	Queue:   &QueueConfig{Workers: 4, MaxRetries: 3},
	Swagger: &SwaggerConfig{Enable: true},
}

func NewConfig() Config {
	config := defaultConfig

	viper.SetConfigFile(configPath)
	if err := viper.ReadInConfig(); err != nil {
		panic(fmt.Sprintf("Failed to read configuration file: %s\nError: %v", configPath, err))
	}

	if err := viper.Unmarshal(&config); err != nil {
		panic(fmt.Sprintf("Failed to parse configuration file: %s\nError: %v", configPath, err))
	}

	if err := validator.New().Struct(&config); err != nil {
		panic(fmt.Sprintf("Invalid configuration: %v", err))
	}

	return config
}

func SetConfigPath(path string) {
	if info, err := os.Stat(path); err != nil || info.IsDir() {
		panic(fmt.Sprintf("Configuration file not found: %s\nSpecify a valid path using the -c flag.", path))
	}

	configPath = path
}

// Config are the available config values
type Config struct {
	Name     string          `mapstructure:"Name"`
	Http     *HttpConfig     `mapstructure:"Http"`
	Log      *LogConfig      `mapstructure:"Log"`
	Admin    *AdminConfig    `mapstructure:"Admin"`
	Auth     *AuthConfig     `mapstructure:"Auth"`
	Captcha  *CaptchaConfig  `mapstructure:"Captcha"`
	Cache    *CacheConfig    `mapstructure:"Cache"`
	Database *DatabaseConfig `mapstructure:"Database"`
	OSS      *OSSConfig      `mapstructure:"OSS"`
	Upstream *UpstreamConfig `mapstructure:"Upstream"`
	Queue    *QueueConfig    `mapstructure:"Queue"`
	Swagger  *SwaggerConfig  `mapstructure:"Swagger"`
}

type HttpConfig struct {
	Host         string   `mapstructure:"Host"`
	Port         int      `mapstructure:"Port" validate:"gte=1,lte=65535"`
	AllowOrigins []string `mapstructure:"AllowOrigins"`
}

func (a *HttpConfig) ListenAddr() string {
	return fmt.Sprintf("%s:%d", a.Host, a.Port)
}

// Level     : debug,info,warn,error,dpanic,panic,fatal (default info)
// Format    : json, console (default json)
// Directory : log storage path (default "./")
type LogConfig struct {
	Level       string `mapstructure:"Level"`
	Format      string `mapstructure:"Format"`
	Directory   string `mapstructure:"Directory"`
	Development bool   `mapstructure:"Development"`
}

// AdminConfig seeds the maintenance account during setup
type AdminConfig struct {
	Username string `mapstructure:"Username"`
	Nickname string `mapstructure:"Nickname"`
	Password string `mapstructure:"Password"`
}

type AuthConfig struct {
	Enable             bool     `mapstructure:"Enable"`
	SigningKey         string   `mapstructure:"SigningKey"`
	TokenExpired       int      `mapstructure:"TokenExpired"`
	IgnorePathPrefixes []string `mapstructure:"IgnorePathPrefixes"`
}

type CaptchaConfig struct {
	Enable bool `mapstructure:"Enable"`
}

// CacheConfig cache configuration
// Type: memory, redis
type CacheConfig struct {
	Type      string `mapstructure:"Type"`
	KeyPrefix string `mapstructure:"KeyPrefix"`

	// Redis specific settings (only used when Type is "redis")
	Host     string `mapstructure:"Host"`
	Port     int    `mapstructure:"Port"`
	Password string `mapstructure:"Password"`
}

func (c *CacheConfig) IsRedis() bool {
	return c.Type == "redis"
}

func (c *CacheConfig) IsMemory() bool {
	return c.Type == "" || c.Type == "memory"
}

func (c *CacheConfig) Addr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

type DatabaseConfig struct {
	Engine      string `mapstructure:"Engine"` // mysql, sqlite
	Name        string `mapstructure:"Name"`
	Host        string `mapstructure:"Host"`
	Port        int    `mapstructure:"Port"`
	Username    string `mapstructure:"Username"`
	Password    string `mapstructure:"Password"`
	TablePrefix string `mapstructure:"TablePrefix"`
	Parameters  string `mapstructure:"Parameters"`

	MaxLifetime  int `mapstructure:"MaxLifetime"`
	MaxOpenConns int `mapstructure:"MaxOpenConns"`
	MaxIdleConns int `mapstructure:"MaxIdleConns"`
}

func (a *DatabaseConfig) IsSQLite() bool {
	return a.Engine == "" || a.Engine == "sqlite"
}

func (a *DatabaseConfig) IsMySQL() bool {
	return a.Engine == "mysql"
}

// DSN renders the MySQL connection string
func (a *DatabaseConfig) DSN() string {
	return fmt.Sprintf("%s:%s@tcp(%s:%d)/%s?%s",
		a.Username, a.Password, a.Host, a.Port, a.Name, a.Parameters)
}

// OSSConfig photo object storage
// Type: local, minio
type OSSConfig struct {
	Type  string          `mapstructure:"Type"`
	Local *LocalOSSConfig `mapstructure:"Local"`
	Minio *MinioOSSConfig `mapstructure:"Minio"`
}

func (a *OSSConfig) IsMinio() bool {
	return a.Type == "minio"
}

type LocalOSSConfig struct {
	StoragePath string `mapstructure:"StoragePath"`
	BaseURL     string `mapstructure:"BaseURL"`
}

type MinioOSSConfig struct {
	Endpoint  string `mapstructure:"Endpoint"`
	AccessKey string `mapstructure:"AccessKey"`
	SecretKey string `mapstructure:"SecretKey"`
	Bucket    string `mapstructure:"Bucket"`
	UseSSL    bool   `mapstructure:"UseSSL"`
	BaseURL   string `mapstructure:"BaseURL"`
}

// UpstreamConfig third-party catalog source
type UpstreamConfig struct {
	Enable       bool   `mapstructure:"Enable"`
	BaseURL      string `mapstructure:"BaseURL"`
	ClientID     string `mapstructure:"ClientID"`
	ClientSecret string `mapstructure:"ClientSecret"`
	PageSize     int    `mapstructure:"PageSize" validate:"omitempty,gte=1,lte=500"`
	Schedule     string `mapstructure:"Schedule"` // cron expression with seconds
}

type QueueConfig struct {
	Workers    int `mapstructure:"Workers" validate:"omitempty,gte=1,lte=64"`
	MaxRetries int `mapstructure:"MaxRetries" validate:"omitempty,gte=0,lte=10"`
}

type SwaggerConfig struct {
	Enable bool `mapstructure:"Enable"`
}
