package config

import (
	"os"
	"strconv"

	"mediavault/models"

	"go.uber.org/zap"
)

var Env = GetDefaultConfig()

func LoadEnv() error {
	if value := os.Getenv("CACHING"); value != "" {
		if caching, err := strconv.ParseBool(value); err == nil {
			Env.Caching = caching
		} else {
			zap.S().Fatal("CACHING env is not a valid boolean")
		}
	}
	if Env.Caching {
		if value := os.Getenv("DB_HOST"); value != "" {
			Env.DBHost = value
		} else {
			zap.S().Fatalf("DB_HOST env is not set")
		}
		if value := os.Getenv("DB_PORT"); value != "" {
			if port, err := strconv.Atoi(value); err == nil {
				Env.DBPort = port
			} else {
				zap.S().Fatal("DB_PORT env is not a valid integer")
			}
		} else {
			zap.S().Fatalf("DB_PORT env is not set")
		}
		if value := os.Getenv("DB_NAME"); value != "" {
			Env.DBName = value
		} else {
			zap.S().Fatal("DB_NAME env is not set")
		}
		if value := os.Getenv("DB_USER"); value != "" {
			Env.DBUser = value
		} else {
			zap.S().Fatalf("DB_USER env is not set")
		}
		if value := os.Getenv("DB_PASSWORD"); value != "" {
			Env.DBPassword = value
		} else {
			zap.S().Fatalf("DB_PASSWORD env is not set")
		}
	}
	if value := os.Getenv("MAX_FILE_SIZE"); value != "" {
		if size, err := strconv.ParseInt(value, 10, 64); err == nil {
			Env.MaxFileSize = size
		} else {
			zap.S().Fatal("MAX_FILE_SIZE env is not a valid integer")
		}
	}
	if value := os.Getenv("DOWNLOADS_DIR"); value != "" {
		Env.DownloadsDirectory = value
	}
	if value := os.Getenv("HTTP_PROXY"); value != "" {
		Env.HTTPProxy = value
	}
	if value := os.Getenv("HTTPS_PROXY"); value != "" {
		Env.HTTPSProxy = value
	}
	if value := os.Getenv("NO_PROXY"); value != "" {
		Env.NoProxy = value
	}
	if value := os.Getenv("LOG_LEVEL"); value != "" {
		Env.LogLevel = value
	}
	return nil
}

func GetDefaultConfig() *models.EnvConfig {
	return &models.EnvConfig{
		DBHost: "localhost",
		DBPort: 3306,
		DBName: "mediavault",
		DBUser: "mediavault",

		Caching: true,

		// whole-object payloads only, tens of megabytes at most
		MaxFileSize: 64 << 20,

		DownloadsDirectory: "downloads",

		LogLevel: "info",
	}
}
