package configs

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type ENV struct {
	DBHost     string
	DBUser     string
	DBPassword string
	DBName     string
	DBPort     string
	Port       string

	AppAuthKey string
	AppEncKey  string
	CSRFKey    string

	KhaltiBaseURL   string
	KhaltiSecretKey string
	KhaltiPublicKey string

	AppURL string
	AppEnv string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("Warning: No .env file found")
	}

	return ENV{
		DBHost:     os.Getenv("DB_HOST"),
		DBUser:     os.Getenv("DB_USER"),
		DBPassword: os.Getenv("DB_PASSWORD"),
		DBName:     os.Getenv("DB_NAME"),
		DBPort:     os.Getenv("DB_PORT"),
		Port:       os.Getenv("APP_PORT"),

		AppAuthKey: os.Getenv("APP_AUTH_KEY"),
		AppEncKey:  os.Getenv("APP_ENC_KEY"),
		CSRFKey:    os.Getenv("CSRF_KEY"),

		KhaltiBaseURL:   os.Getenv("KHALTI_BASE_URL"),
		KhaltiSecretKey: os.Getenv("KHALTI_SECRET_KEY"),
		KhaltiPublicKey: os.Getenv("KHALTI_PUBLIC_KEY"),

		AppURL: os.Getenv("APP_URL"),
		AppEnv: os.Getenv("APP_ENV"),
	}
}

var LoadENV = LoadEnv()
