package config

import (
	"log"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort  string `mapstructure:"APP_PORT"`
	Env      string `mapstructure:"ENV"`
	LogLevel string `mapstructure:"LOG_LEVEL"`

	// DynamoDB configuration.
	AWSRegion          string `mapstructure:"AWS_REGION"`
	AWSAccessKeyID     string `mapstructure:"AWS_ACCESS_KEY_ID"`
	AWSSecretAccessKey string `mapstructure:"AWS_SECRET_ACCESS_KEY"`
	DynamoDBEndpoint   string `mapstructure:"DYNAMODB_ENDPOINT"`

	InvoicesTable    string `mapstructure:"INVOICES_TABLE"`
	PaymentsTable    string `mapstructure:"PAYMENTS_TABLE"`
	CountersTable    string `mapstructure:"INVOICE_COUNTERS_TABLE"`
	TimeEntriesTable string `mapstructure:"TIME_ENTRIES_TABLE"`
	ExpensesTable    string `mapstructure:"EXPENSES_TABLE"`
	ClientsTable     string `mapstructure:"CLIENTS_TABLE"`
	ProjectsTable    string `mapstructure:"PROJECTS_TABLE"`

	// Redis configuration (report cache + notification channel).
	RedisAddr           string `mapstructure:"REDIS_ADDR"`
	RedisPassword       string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB        int    `mapstructure:"REDIS_CACHE_DB"`
	ReportCacheTTLSecs  int    `mapstructure:"REPORT_CACHE_TTL_SECONDS"`
	NotificationChannel string `mapstructure:"NOTIFICATION_CHANNEL"`

	// Mercado Pago webhook collaborator.
	MercadoPagoAccessToken string `mapstructure:"MERCADOPAGO_ACCESS_TOKEN"`
	PaymentGatewayMock     bool   `mapstructure:"PAYMENT_GATEWAY_MOCK"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("AWS_REGION", "us-east-1")
	// Local DynamoDB does not validate credentials, but the AWS SDK requires them.
	viper.SetDefault("AWS_ACCESS_KEY_ID", "local")
	viper.SetDefault("AWS_SECRET_ACCESS_KEY", "local")
	viper.SetDefault("INVOICES_TABLE", "invoices")
	viper.SetDefault("PAYMENTS_TABLE", "payments")
	viper.SetDefault("INVOICE_COUNTERS_TABLE", "invoice_counters")
	viper.SetDefault("TIME_ENTRIES_TABLE", "time_entries")
	viper.SetDefault("EXPENSES_TABLE", "expenses")
	viper.SetDefault("CLIENTS_TABLE", "clients")
	viper.SetDefault("PROJECTS_TABLE", "projects")
	viper.SetDefault("REDIS_ADDR", "")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REPORT_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("NOTIFICATION_CHANNEL", "billing:events")

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}
