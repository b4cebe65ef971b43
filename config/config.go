package config

import (
	"time"

	"github.com/gotify/configor"
)

var Conf *Configuration

type Configuration struct {
	App struct {
		ListenAddr   string `default:"" env:"APP_HOST"`
		Port         int    `default:"8080"  env:"APP_PORT"`
		BodyLimitMB  int    `default:"20" env:"APP_BODY_LIMIT_MB"`
		SeedDemoData *bool  `default:"false" env:"APP_SEED_DEMO_DATA"`
		SwaggerFile  string `default:"./docs/swagger.json" env:"APP_SWAGGER_FILE"`
	}
	Log struct {
		Level      string `default:"info" env:"LOG_LEVEL"`
		HTTPBodies *bool  `default:"false" env:"LOG_HTTP_BODIES"`
	}
	Database struct {
		Enabled        *bool  `default:"true" env:"DB_ENABLED"`
		Host           string `default:"127.0.0.1" env:"DB_HOST"`
		Port           string `default:"5432" env:"DB_PORT"`
		Name           string `default:"ats" env:"DB_NAME"`
		User           string `default:"postgres" env:"DB_USER"`
		Password       string `default:"postgres" env:"DB_PASSWORD"`
		MigrateOnStart *bool  `default:"true" env:"DB_MIGRATE_ON_START"`
		DebugMode      *bool  `default:"false" env:"DB_DEBUG_MODE"`
	}
	S3 struct {
		Enabled         *bool  `default:"false" env:"S3_ENABLED"`
		Endpoint        string `default:"127.0.0.1:9000" env:"S3_ENDPOINT"`
		AccessKeyID     string `default:"" env:"S3_ACCESS_KEY_ID"`
		SecretAccessKey string `default:"" env:"S3_SECRET_ACCESS_KEY"`
		UseSSL          *bool  `default:"false" env:"S3_USE_SSL"`
		BucketName      string `default:"ats-documents" env:"S3_BUCKET_NAME"`
	}
	Smtp struct {
		User       string `default:"" env:"SMTP_USER"`
		Password   string `default:"" env:"SMTP_PASSWORD"`
		Host       string `default:"" env:"SMTP_HOST"`
		Port       string `default:"" env:"SMTP_PORT"`
		TLSEnabled *bool  `default:"true" env:"SMTP_TLS_ENABLED"`
		Sender     string `default:"" env:"SMTP_SENDER"`
	}
	Redis struct {
		URL string        `default:"" env:"REDIS_URL"`
		TTL time.Duration `default:"10m" env:"REDIS_TTL"`
	}
	Rabbit struct {
		URI      string `default:"" env:"RABBIT_URI"`
		Exchange string `default:"ats.events" env:"RABBIT_EXCHANGE"`
	}
	Auth struct {
		Enabled   *bool         `default:"true" env:"AUTH_ENABLED"`
		JWTSecret string        `default:"change-me" env:"AUTH_JWT_SECRET"`
		TokenTTL  time.Duration `default:"24h" env:"AUTH_TOKEN_TTL"`
		UserID    string        `default:"1" env:"AUTH_USER_ID"`
		UserName  string        `default:"Sarah Johnson" env:"AUTH_USER_NAME"`
		UserEmail string        `default:"sarah.johnson@company.com" env:"AUTH_USER_EMAIL"`
		Password  string        `default:"demo" env:"AUTH_USER_PASSWORD"`
	}
	Reminder struct {
		Enabled  *bool         `default:"true" env:"REMINDER_ENABLED"`
		Interval time.Duration `default:"5m" env:"REMINDER_INTERVAL"`
		LeadTime time.Duration `default:"24h" env:"REMINDER_LEAD_TIME"`
		Location string        `default:"UTC" env:"REMINDER_TIMEZONE"`
	}
}

func configFiles() []string {
	return []string{"config.yml"}
}

func InitConfig() {
	if Conf != nil {
		return
	}
	conf := new(Configuration)
	err := configor.New(&configor.Config{}).Load(conf, configFiles()...)
	if err != nil {
		panic(err)
	}
	Conf = conf
}
