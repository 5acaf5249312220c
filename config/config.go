package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port    string
	GinMode string

	MongoURI string
	DBName   string

	JWTSecret string
	JWTTTL    time.Duration

	AWSRegion    string
	AWSAccessKey string
	AWSSecretKey string
	S3Bucket     string
	S3Endpoint   string
	S3PresignTTL time.Duration
	MaxUploadMB  int64

	SendGridAPIKey string
	MailFrom       string
	MailFromName   string

	FirebaseCredentialsFile string
	FirebaseProjectID       string

	KafkaBrokers    []string
	KafkaOrderTopic string

	RedisAddr string

	NotifyWorkers int
	NotifyQueue   int

	DocsUser     string
	DocsPassword string

	AllowOrigins []string
}

// LoadEnv reads .env into the process environment. A missing file is not an error.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}
}

func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func Load() Config {
	return Config{
		Port:    GetEnv("PORT", "5000"),
		GinMode: GetEnv("GIN_MODE", "debug"),

		MongoURI: GetEnv("MONGO_URI", "mongodb://localhost:27017"),
		DBName:   GetEnv("DB_NAME", "storefront"),

		JWTSecret: os.Getenv("JWT_SECRET"),
		JWTTTL:    getDuration("JWT_TTL", 7*24*time.Hour),

		AWSRegion:    GetEnv("AWS_REGION", "ap-south-1"),
		AWSAccessKey: os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:     os.Getenv("S3_BUCKET"),
		S3Endpoint:   os.Getenv("S3_ENDPOINT"),
		S3PresignTTL: getDuration("S3_PRESIGN_TTL", 24*time.Hour),
		MaxUploadMB:  int64(getInt("MAX_UPLOAD_MB", 5)),

		SendGridAPIKey: os.Getenv("SENDGRID_API_KEY"),
		MailFrom:       GetEnv("MAIL_FROM", "no-reply@storefront.app"),
		MailFromName:   GetEnv("MAIL_FROM_NAME", "Storefront"),

		FirebaseCredentialsFile: os.Getenv("FIREBASE_CREDENTIALS_FILE"),
		FirebaseProjectID:       os.Getenv("FIREBASE_PROJECT_ID"),

		KafkaBrokers:    splitCSV(os.Getenv("KAFKA_BROKERS")),
		KafkaOrderTopic: GetEnv("KAFKA_ORDER_TOPIC", "storefront.orders"),

		RedisAddr: os.Getenv("REDIS_ADDR"),

		NotifyWorkers: getInt("NOTIFY_WORKERS", 2),
		NotifyQueue:   getInt("NOTIFY_QUEUE", 256),

		DocsUser:     GetEnv("DOCS_USER", "admin"),
		DocsPassword: os.Getenv("DOCS_PASSWORD"),

		AllowOrigins: splitCSV(GetEnv("ALLOW_ORIGINS", "*")),
	}
}

func getInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	i, err := strconv.Atoi(v)
	if err != nil || i <= 0 {
		log.Printf("invalid %s=%q, using %d", key, v, def)
		return def
	}
	return i
}

func getDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("invalid %s=%q, using %s", key, v, def)
		return def
	}
	return d
}

func splitCSV(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}
