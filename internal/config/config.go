package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

type R2 struct {
	AccountID string
	Bucket    string
	AccessKey string
	SecretKey string
}

type Config struct {
	LogMode string

	// API
	HTTPAddr       string
	CatalogPath    string
	CareerDataPath string

	// Worker
	DBURL       string
	RabbitMQURL string
	Workers     int
	R2          R2

	// When set, reference data comes from the R2 bucket instead of the
	// local paths.
	CatalogObjectKey    string
	CareerDataObjectKey string
}

// LoadAPI reads the API process configuration. Reference data paths have
// local defaults so the service runs out of the repo checkout.
func LoadAPI() Config {
	_ = godotenv.Load()
	return Config{
		LogMode:        getenv("LOG_MODE", "dev"),
		HTTPAddr:       getenv("HTTP_ADDR", ":8080"),
		CatalogPath:    getenv("CATALOG_PATH", "data/catalog.json"),
		CareerDataPath: getenv("CAREER_DATA_PATH", "data/career_data.json"),
	}
}

// LoadWorker reads the worker process configuration. Queue, database, and
// object-storage settings have no sane defaults, so missing ones error.
func LoadWorker() (Config, error) {
	_ = godotenv.Load()
	cfg := Config{
		LogMode:             getenv("LOG_MODE", "dev"),
		CatalogPath:         getenv("CATALOG_PATH", "data/catalog.json"),
		CareerDataPath:      getenv("CAREER_DATA_PATH", "data/career_data.json"),
		CatalogObjectKey:    os.Getenv("CATALOG_OBJECT_KEY"),
		CareerDataObjectKey: os.Getenv("CAREER_DATA_OBJECT_KEY"),
		Workers:             3,
	}

	var err error
	if cfg.DBURL, err = require("DB_URL"); err != nil {
		return cfg, err
	}
	if cfg.RabbitMQURL, err = require("RABBITMQ_URL"); err != nil {
		return cfg, err
	}
	if cfg.R2.AccountID, err = require("R2_ACCOUNT_ID"); err != nil {
		return cfg, err
	}
	if cfg.R2.Bucket, err = require("R2_BUCKET"); err != nil {
		return cfg, err
	}
	if cfg.R2.AccessKey, err = require("R2_ACCESS_KEY"); err != nil {
		return cfg, err
	}
	if cfg.R2.SecretKey, err = require("R2_SECRET_KEY"); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func getenv(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func require(k string) (string, error) {
	v := os.Getenv(k)
	if v == "" {
		return "", fmt.Errorf("empty %s in environment", k)
	}
	return v, nil
}
