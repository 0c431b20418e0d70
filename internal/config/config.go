package config

import (
	"fmt"
	"strings"

	"github.com/goldenpolis/storefront/internal/logger"

	"github.com/spf13/viper"
)

// Config 应用配置结构
type Config struct {
	Server   ServerConfig   `mapstructure:"server"`
	Log      LogConfig      `mapstructure:"log"`
	Store    StoreConfig    `mapstructure:"store"`
	Upload   UploadConfig   `mapstructure:"upload"`
	Notify   NotifyConfig   `mapstructure:"notify"`
	Checkout CheckoutConfig `mapstructure:"checkout"`
	Payment  PaymentConfig  `mapstructure:"payment"`
	CORS     CORSConfig     `mapstructure:"cors"`
	Shop     ShopConfig     `mapstructure:"shop"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Host string `mapstructure:"host"`
	Port string `mapstructure:"port"`
	Mode string `mapstructure:"mode"` // debug / release
}

// LogConfig 日志配置
type LogConfig struct {
	Level      string `mapstructure:"level"`
	Dir        string `mapstructure:"dir"`
	Filename   string `mapstructure:"filename"`
	MaxSizeMB  int    `mapstructure:"max_size_mb"`
	MaxBackups int    `mapstructure:"max_backups"`
	MaxAgeDays int    `mapstructure:"max_age_days"`
	Compress   bool   `mapstructure:"compress"`
}

// ToLoggerOptions 转换为 logger 配置
func (c LogConfig) ToLoggerOptions(mode string) logger.Options {
	return logger.Options{
		Level:      c.Level,
		Dir:        c.Dir,
		Filename:   c.Filename,
		MaxSizeMB:  c.MaxSizeMB,
		MaxBackups: c.MaxBackups,
		MaxAgeDays: c.MaxAgeDays,
		Compress:   c.Compress,
		Console:    strings.EqualFold(strings.TrimSpace(mode), "debug"),
	}
}

// StorePoolConfig 数据库连接池配置
type StorePoolConfig struct {
	MaxOpenConns           int `mapstructure:"max_open_conns"`
	MaxIdleConns           int `mapstructure:"max_idle_conns"`
	ConnMaxLifetimeSeconds int `mapstructure:"conn_max_lifetime_seconds"`
	ConnMaxIdleTimeSeconds int `mapstructure:"conn_max_idle_time_seconds"`
}

// StoreConfig 键值存储配置
type StoreConfig struct {
	Driver string          `mapstructure:"driver"` // 存储驱动（sqlite/postgres/redis/memory）
	DSN    string          `mapstructure:"dsn"`    // 数据库连接串
	Pool   StorePoolConfig `mapstructure:"pool"`
	Redis  RedisConfig     `mapstructure:"redis"`
}

// RedisConfig Redis 配置
type RedisConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	Prefix   string `mapstructure:"prefix"`
}

// UploadConfig 收据上传配置
type UploadConfig struct {
	Provider string         `mapstructure:"provider"` // script / s3
	Script   ScriptUpload   `mapstructure:"script"`
	S3       S3UploadConfig `mapstructure:"s3"`
}

// ScriptUpload 表单脚本上传端点配置
type ScriptUpload struct {
	Endpoint string `mapstructure:"endpoint"`
}

// S3UploadConfig 对象存储上传配置
type S3UploadConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	UseSSL    bool   `mapstructure:"use_ssl"`
	PublicURL string `mapstructure:"public_url"`
}

// NotifyConfig 订单通知配置
type NotifyConfig struct {
	Provider  string         `mapstructure:"provider"` // emailjs / smtp / none
	EmailJS   EmailJSConfig  `mapstructure:"emailjs"`
	SMTP      SMTPConfig     `mapstructure:"smtp"`
	Templates TemplateConfig `mapstructure:"templates"`
	Vendor    VendorConfig   `mapstructure:"vendor"`
}

// EmailJSConfig EmailJS 服务配置
type EmailJSConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	ServiceID string `mapstructure:"service_id"`
	UserID    string `mapstructure:"user_id"`
}

// SMTPConfig SMTP 服务配置
type SMTPConfig struct {
	Host     string `mapstructure:"host"`
	Port     int    `mapstructure:"port"`
	Username string `mapstructure:"username"`
	Password string `mapstructure:"password"`
	From     string `mapstructure:"from"`
	FromName string `mapstructure:"from_name"`
	UseTLS   bool   `mapstructure:"use_tls"`
}

// TemplateConfig 通知模板配置
type TemplateConfig struct {
	VendorOrder   string `mapstructure:"vendor_order"`
	CustomerOrder string `mapstructure:"customer_order"`
}

// VendorConfig 商家收件信息
type VendorConfig struct {
	Name  string `mapstructure:"name"`
	Email string `mapstructure:"email"`
}

// CheckoutConfig 结账流程配置
type CheckoutConfig struct {
	UploadTimeoutMS int             `mapstructure:"upload_timeout_ms"`
	NotifyTimeoutMS int             `mapstructure:"notify_timeout_ms"`
	RateLimit       RateLimitConfig `mapstructure:"rate_limit"`
}

// RateLimitConfig 提交频率限制（仅 Redis 存储驱动下生效）
type RateLimitConfig struct {
	WindowSeconds int `mapstructure:"window_seconds"`
	MaxRequests   int `mapstructure:"max_requests"`
}

// PaymentMethodConfig 支付方式定义
type PaymentMethodConfig struct {
	Key      string `mapstructure:"key"`
	Name     string `mapstructure:"name"`
	Number   string `mapstructure:"number"`
	QRImage  string `mapstructure:"qr_image"`
	Logo     string `mapstructure:"logo"`
	DeepLink string `mapstructure:"deep_link"`
	Color    string `mapstructure:"color"`
}

// PaymentConfig 支付方式配置
type PaymentConfig struct {
	Methods []PaymentMethodConfig `mapstructure:"methods"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowedOrigins   []string `mapstructure:"allowed_origins"`
	AllowedMethods   []string `mapstructure:"allowed_methods"`
	AllowedHeaders   []string `mapstructure:"allowed_headers"`
	AllowCredentials bool     `mapstructure:"allow_credentials"`
	MaxAge           int      `mapstructure:"max_age"`
}

// ShopConfig 店铺信息配置
type ShopConfig struct {
	Name     string `mapstructure:"name"`
	Currency string `mapstructure:"currency"`
}

// Load 从 config.yml 加载配置
func Load() *Config {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")     // 从当前目录查找
	viper.AddConfigPath("../")   // 如果从 cmd/server 运行
	viper.AddConfigPath("./etc") // etc 文件夹

	viper.SetDefault("server.host", "0.0.0.0")
	viper.SetDefault("server.port", "8080")
	viper.SetDefault("server.mode", "debug")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.dir", "")
	viper.SetDefault("log.filename", "storefront.log")
	viper.SetDefault("log.max_size_mb", 50)
	viper.SetDefault("log.max_backups", 5)
	viper.SetDefault("log.max_age_days", 14)
	viper.SetDefault("log.compress", true)
	viper.SetDefault("store.driver", "sqlite")
	viper.SetDefault("store.dsn", "./db/storefront.db")
	viper.SetDefault("store.pool.max_open_conns", 1)
	viper.SetDefault("store.pool.max_idle_conns", 1)
	viper.SetDefault("store.pool.conn_max_lifetime_seconds", 0)
	viper.SetDefault("store.pool.conn_max_idle_time_seconds", 0)
	viper.SetDefault("store.redis.host", "127.0.0.1")
	viper.SetDefault("store.redis.port", 6379)
	viper.SetDefault("store.redis.password", "")
	viper.SetDefault("store.redis.db", 0)
	viper.SetDefault("store.redis.prefix", "gp")
	viper.SetDefault("upload.provider", "script")
	viper.SetDefault("upload.script.endpoint", "")
	viper.SetDefault("upload.s3.endpoint", "")
	viper.SetDefault("upload.s3.access_key", "")
	viper.SetDefault("upload.s3.secret_key", "")
	viper.SetDefault("upload.s3.bucket", "receipts")
	viper.SetDefault("upload.s3.use_ssl", true)
	viper.SetDefault("upload.s3.public_url", "")
	viper.SetDefault("notify.provider", "emailjs")
	viper.SetDefault("notify.emailjs.endpoint", "https://api.emailjs.com/api/v1.0/email/send")
	viper.SetDefault("notify.emailjs.service_id", "")
	viper.SetDefault("notify.emailjs.user_id", "")
	viper.SetDefault("notify.smtp.host", "")
	viper.SetDefault("notify.smtp.port", 587)
	viper.SetDefault("notify.smtp.username", "")
	viper.SetDefault("notify.smtp.password", "")
	viper.SetDefault("notify.smtp.from", "")
	viper.SetDefault("notify.smtp.from_name", "")
	viper.SetDefault("notify.smtp.use_tls", true)
	viper.SetDefault("notify.templates.vendor_order", "template_vendor_order")
	viper.SetDefault("notify.templates.customer_order", "template_customer_order")
	viper.SetDefault("notify.vendor.name", "GoldenPolis")
	viper.SetDefault("notify.vendor.email", "")
	viper.SetDefault("checkout.upload_timeout_ms", 15000)
	viper.SetDefault("checkout.notify_timeout_ms", 10000)
	viper.SetDefault("checkout.rate_limit.window_seconds", 60)
	viper.SetDefault("checkout.rate_limit.max_requests", 5)
	viper.SetDefault("payment.methods", []map[string]interface{}{})
	viper.SetDefault("cors.allowed_origins", []string{"*"})
	viper.SetDefault("cors.allowed_methods", []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"})
	viper.SetDefault("cors.allowed_headers", []string{
		"Content-Type",
		"Content-Length",
		"Accept-Encoding",
		"Cache-Control",
		"X-Requested-With",
	})
	viper.SetDefault("cors.allow_credentials", true)
	viper.SetDefault("cors.max_age", 600)
	viper.SetDefault("shop.name", "GoldenPolis")
	viper.SetDefault("shop.currency", "COP")

	// 环境变量支持
	viper.AutomaticEnv()                                   // 自动读取环境变量
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_")) // 将 . 替换为 _ (例如 server.port -> SERVER_PORT)

	if err := viper.ReadInConfig(); err != nil {
		logger.Warnw("config_file_read_failed",
			"error", err,
			"fallback", "env_or_defaults",
		)
	} else {
		logger.Infow("config_file_loaded", "file", viper.ConfigFileUsed())
	}

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		logger.Errorw("config_unmarshal_failed", "error", err)
		panic(fmt.Errorf("配置解析失败: %w", err))
	}

	return &cfg
}
