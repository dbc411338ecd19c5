package config

import (
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// 用于管理应用配置

const defaultDevSecret = "autoviz_dev_secret"

var (
	// 使用 atomic.Value 存储 *Config，实现无锁读取
	appConfig atomic.Value
	configMu  sync.Mutex // 仅用于写操作互斥
	configDir = "config"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Database  DatabaseConfig  `mapstructure:"database"`
	JWT       JWTConfig       `mapstructure:"jwt"`
	Upload    UploadConfig    `mapstructure:"upload"`
	Render    RenderConfig    `mapstructure:"render"`
	SMS       SMSConfig       `mapstructure:"sms"`
	Telegram  TelegramConfig  `mapstructure:"telegram"`
	Translate TranslateConfig `mapstructure:"translate"`
	S3        S3Config        `mapstructure:"s3"`
	Redis     RedisConfig     `mapstructure:"redis"`
	RateLimit RateLimitConfig `mapstructure:"rate_limit"`
	Log       LogConfig       `mapstructure:"log"`
}

type ServerConfig struct {
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"`
}

type DatabaseConfig struct {
	Type     string `mapstructure:"type"`     // sqlite, mysql, postgres
	Filename string `mapstructure:"filename"` // for sqlite
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	Name     string `mapstructure:"name"` // database name
	SSL      bool   `mapstructure:"ssl"`  // enable TLS/SSL
}

type JWTConfig struct {
	Secret          string `mapstructure:"secret"`
	ExpirationHours int    `mapstructure:"expiration_hours"`
}

type UploadConfig struct {
	Path              string `mapstructure:"path"`
	URLPrefix         string `mapstructure:"url_prefix"`
	VisiblePath       string `mapstructure:"visible_path"`
	VisibleURLPrefix  string `mapstructure:"visible_url_prefix"`
	MaxSizeMB         int    `mapstructure:"max_size_mb"`
	AllowedExtensions string `mapstructure:"allowed_extensions"`
}

type RenderConfig struct {
	Command        string `mapstructure:"command"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type SMSConfig struct {
	Enabled        bool   `mapstructure:"enabled"`
	APIURL         string `mapstructure:"api_url"`
	APIKey         string `mapstructure:"api_key"`
	APISecret      string `mapstructure:"api_secret"`
	From           string `mapstructure:"from"`
	Message        string `mapstructure:"message"`
	RetryAttempts  int    `mapstructure:"retry_attempts"`
	RetryBackoffMS int    `mapstructure:"retry_backoff_ms"`
}

type TelegramConfig struct {
	Enabled bool   `mapstructure:"enabled"`
	Token   string `mapstructure:"token"`
	ChatIDs string `mapstructure:"chat_ids"` // 逗号分隔
}

type TranslateConfig struct {
	APIURL         string `mapstructure:"api_url"`
	APIKey         string `mapstructure:"api_key"`
	TimeoutSeconds int    `mapstructure:"timeout_seconds"`
}

type S3Config struct {
	Enabled   bool   `mapstructure:"enabled"`
	Endpoint  string `mapstructure:"endpoint"`
	Region    string `mapstructure:"region"`
	Bucket    string `mapstructure:"bucket"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
}

type RedisConfig struct {
	Enabled  bool   `mapstructure:"enabled"`
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

type RateLimitConfig struct {
	Enabled     bool    `mapstructure:"enabled"`
	AuthRPS     float64 `mapstructure:"auth_rps"`
	AuthBurst   int     `mapstructure:"auth_burst"`
	UploadRPS   float64 `mapstructure:"upload_rps"`
	UploadBurst int     `mapstructure:"upload_burst"`
}

type LogConfig struct {
	Level  string `mapstructure:"level"`
	Folder string `mapstructure:"folder"`
}

// Get 获取当前配置的快照（高性能无锁）
func Get() Config {
	val := appConfig.Load()
	if val == nil {
		return Config{}
	}
	c, ok := val.(*Config)
	if !ok {
		return Config{}
	}
	return *c
}

// Set 直接替换当前配置，主要供测试使用。
func Set(cfg Config) {
	configMu.Lock()
	defer configMu.Unlock()
	appConfig.Store(&cfg)
}

func GetConfigDir() string {
	return configDir
}

func InitConfig(customConfigDir string) {
	loadDotEnv(customConfigDir)
	v := initViper(customConfigDir)
	loadAndStore(v)
	enforceJWTSecretSafety()
	log.Println("✅ 配置加载成功")
}

// loadDotEnv 读取可选的 .env 文件，已存在的环境变量不会被覆盖。
func loadDotEnv(customConfigDir string) {
	candidates := []string{".env"}
	if dir := strings.TrimSpace(customConfigDir); dir != "" {
		candidates = append([]string{filepath.Join(dir, ".env")}, candidates...)
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err != nil {
			continue
		}
		if err := godotenv.Load(p); err != nil {
			log.Printf("⚠️ 读取 %s 失败: %v", p, err)
		}
	}
}

func initViper(customConfigDir string) *viper.Viper {
	v := viper.New()

	customConfigDir = strings.TrimSpace(customConfigDir)
	if customConfigDir == "" {
		customConfigDir = "config"
	}
	configDir = customConfigDir

	// 设置配置文件路径
	v.AddConfigPath(configDir)
	v.AddConfigPath(".")
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	// 设置默认值
	v.SetDefault("server.port", "5000")
	v.SetDefault("server.mode", "debug")
	v.SetDefault("database.type", "sqlite")
	v.SetDefault("database.filename", "database/autoviz.db")
	v.SetDefault("database.host", "127.0.0.1")
	v.SetDefault("database.port", "3306")
	v.SetDefault("database.user", "root")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "autoviz")
	v.SetDefault("database.ssl", false)
	v.SetDefault("jwt.secret", "")
	v.SetDefault("jwt.expiration_hours", 24*7)
	v.SetDefault("upload.path", "public/uploads")
	v.SetDefault("upload.url_prefix", "/uploads/")
	v.SetDefault("upload.visible_path", "public/visible")
	v.SetDefault("upload.visible_url_prefix", "/visible/")
	v.SetDefault("upload.max_size_mb", 20)
	v.SetDefault("upload.allowed_extensions", ".xlsx,.xls,.csv")
	v.SetDefault("render.command", "python3 scripts/visualize.py")
	v.SetDefault("render.timeout_seconds", 30)
	v.SetDefault("sms.enabled", false)
	v.SetDefault("sms.api_url", "https://api.coolsms.co.kr/messages/v4/send-many/detail")
	v.SetDefault("sms.api_key", "")
	v.SetDefault("sms.api_secret", "")
	v.SetDefault("sms.from", "")
	v.SetDefault("sms.message", "[AutoViz] 新的数据报告已发布，请登录查看。")
	v.SetDefault("sms.retry_attempts", 3)
	v.SetDefault("sms.retry_backoff_ms", 500)
	v.SetDefault("telegram.enabled", false)
	v.SetDefault("telegram.token", "")
	v.SetDefault("telegram.chat_ids", "")
	v.SetDefault("translate.api_url", "https://translation.googleapis.com/language/translate/v2")
	v.SetDefault("translate.api_key", "")
	v.SetDefault("translate.timeout_seconds", 10)
	v.SetDefault("s3.enabled", false)
	v.SetDefault("s3.endpoint", "")
	v.SetDefault("s3.region", "us-east-1")
	v.SetDefault("s3.bucket", "")
	v.SetDefault("s3.access_key", "")
	v.SetDefault("s3.secret_key", "")
	v.SetDefault("redis.enabled", false)
	v.SetDefault("redis.addr", "127.0.0.1:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.prefix", "autoviz")
	v.SetDefault("rate_limit.enabled", true)
	v.SetDefault("rate_limit.auth_rps", 5)
	v.SetDefault("rate_limit.auth_burst", 10)
	v.SetDefault("rate_limit.upload_rps", 1)
	v.SetDefault("rate_limit.upload_burst", 5)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.folder", "")

	// 读取配置文件
	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			log.Println("⚠️  未找到配置文件，将仅使用环境变量或默认值")
		} else {
			log.Fatalf("❌ 读取配置文件失败: %v", err)
		}
	}

	// 配置环境变量覆盖
	// 规则：所有环境变量必须以 AUTOVIZ_ 开头
	// 例如：yaml 中的 server.port 对应环境变量 AUTOVIZ_SERVER_PORT
	v.SetEnvPrefix("AUTOVIZ")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	return v
}

// loadAndStore 解析并原子更新配置
func loadAndStore(v *viper.Viper) {
	configMu.Lock()
	defer configMu.Unlock()

	var tempConfig Config
	if err := v.Unmarshal(&tempConfig); err != nil {
		log.Printf("❌ 配置解析失败: %v", err)
		return
	}

	if tempConfig.Server.Mode != "release" && tempConfig.JWT.Secret == "" {
		log.Println("⚠️ [开发模式警告] 未设置 JWT Secret，将使用默认不安全密钥进行开发")
		tempConfig.JWT.Secret = defaultDevSecret
	}
	if tempConfig.JWT.ExpirationHours <= 0 {
		tempConfig.JWT.ExpirationHours = 24 * 7
	}

	appConfig.Store(&tempConfig)
}

func enforceJWTSecretSafety() {
	// 首次启动安全检查：release 模式下拦截不安全的 JWT Secret
	curr := Get()
	if curr.Server.Mode == "release" {
		if curr.JWT.Secret == "" || curr.JWT.Secret == defaultDevSecret {
			log.Fatal("❌ [安全严重错误] 生产模式(release)下必须设置安全的 JWT Secret！\n请设置环境变量 AUTOVIZ_JWT_SECRET 或在配置文件中指定 jwt.secret")
		}
	}
}
