package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type MongoDBConfig struct {
	DBHost string
	DBPort string
	DBName string
}

type KafkaConfig struct {
	BrokerAddress   string
	BrokerTopic     string
	BrokerPartition int
}

type JWTConfig struct {
	SellerSecret string
	UserSecret   string
	AdminSecret  string
}

type SMTPConfig struct {
	Host     string
	Port     int
	Sender   string
	Password string
}

type TracingConfig struct {
	CollectorHost string
}

type Config struct {
	ServicePort          string
	MetricsPort          string
	Environment          string
	MongoDBConfig        MongoDBConfig
	KafkaConfig          KafkaConfig
	JWTConfig            JWTConfig
	SMTPConfig           SMTPConfig
	TracingConfig        TracingConfig
	LowStockSweepMinutes int
}

func CreateNewConfig() *Config {
	godotenv.Load(".env")

	conf := Config{
		ServicePort: os.Getenv("SERVICE_PORT"),
		MetricsPort: os.Getenv("METRICS_PORT"),
		Environment: os.Getenv("ENVIRONMENT"),
		MongoDBConfig: MongoDBConfig{
			DBHost: os.Getenv("DB_HOST"),
			DBPort: os.Getenv("DB_PORT"),
			DBName: os.Getenv("DB_NAME"),
		},
		KafkaConfig: KafkaConfig{
			BrokerAddress: os.Getenv("BROKER_ADDRESS"),
			BrokerTopic:   os.Getenv("BROKER_TOPIC"),
		},
		JWTConfig: JWTConfig{
			SellerSecret: os.Getenv("SELLER_JWT_SECRET"),
			UserSecret:   os.Getenv("USER_JWT_SECRET"),
			AdminSecret:  os.Getenv("ADMIN_JWT_SECRET"),
		},
		SMTPConfig: SMTPConfig{
			Host:     os.Getenv("SMTP_HOST"),
			Sender:   os.Getenv("SMTP_SENDER"),
			Password: os.Getenv("SMTP_PASSWORD"),
		},
		TracingConfig: TracingConfig{
			CollectorHost: os.Getenv("COLLECTOR_HOST"),
		},
	}

	if brokerPartition, err := strconv.Atoi(os.Getenv("BROKER_PARTITION")); err == nil {
		conf.KafkaConfig.BrokerPartition = brokerPartition
	}

	if smtpPort, err := strconv.Atoi(os.Getenv("SMTP_PORT")); err == nil {
		conf.SMTPConfig.Port = smtpPort
	}

	conf.LowStockSweepMinutes = 15
	if sweepMinutes, err := strconv.Atoi(os.Getenv("LOW_STOCK_SWEEP_MINUTES")); err == nil {
		conf.LowStockSweepMinutes = sweepMinutes
	}

	if conf.MongoDBConfig.DBName == "" {
		conf.MongoDBConfig.DBName = "smartraw"
	}

	return &conf
}
