package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	MongoURI            string
	Port                string
	DBName              string
	UsersCollection     string
	CompaniesCollection string
	PlansCollection     string
	AdminsCollection    string
	DrugsCollection     string
	CountersCollection  string
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	RedisAddr           string
	CacheTTL            time.Duration
	CORSOrigins         []string
}

func LoadConfig() (*Config, error) {
	mongoURI := os.Getenv("MONGO_URI")
	if mongoURI == "" {
		mongoURI = "mongodb://localhost:27017"
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	cfg := &Config{
		MongoURI:            mongoURI,
		Port:                port,
		DBName:              getEnv("DB_NAME", "magic_pill_db"),
		UsersCollection:     getEnv("COLLECTION_USERS", "users"),
		CompaniesCollection: getEnv("COLLECTION_COMPANIES", "insurance_companies"),
		PlansCollection:     getEnv("COLLECTION_PLANS", "magic_pill_plans"),
		AdminsCollection:    getEnv("COLLECTION_ADMINS", "admins"),
		DrugsCollection:     getEnv("COLLECTION_DRUGS", "drugs"),
		CountersCollection:  getEnv("COLLECTION_COUNTERS", "counters"),
		ReadTimeout:         getEnvDuration("SERVER_READ_TIMEOUT", 10*time.Second),
		WriteTimeout:        getEnvDuration("SERVER_WRITE_TIMEOUT", 10*time.Second),
		RedisAddr:           os.Getenv("REDIS_ADDR"), // empty disables the catalog cache
		CacheTTL:            getEnvDuration("CACHE_TTL", 5*time.Minute),
		CORSOrigins:         getEnvList("CORS_ORIGINS", []string{"http://localhost:3000"}),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoURI == "" {
		return fmt.Errorf("MONGO_URI is required")
	}
	if c.DBName == "" {
		return fmt.Errorf("DB_NAME is required")
	}
	return nil
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvList(key string, fallback []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	valStr := os.Getenv(key)
	if valStr == "" {
		return fallback
	}
	val, err := strconv.Atoi(valStr)
	if err != nil {
		// Accept duration strings, e.g. "10s"
		d, err := time.ParseDuration(valStr)
		if err == nil {
			return d
		}
		return fallback
	}
	return time.Duration(val) * time.Second
}
