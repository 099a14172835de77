package configs

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type ENV struct {
	DBHost              string
	DBUser              string
	DBPassword          string
	DBName              string
	DBPort              string
	Port                string
	AppEnv              string
	AppURL              string
	SessionKey          string
	AppAuthKey          string
	AppEncKey           string
	CSRFKey             string
	MidtransServerKey   string
	MidtransClientKey   string
	MidtransMerchantKey string
}

func LoadEnv() ENV {
	if err := godotenv.Load(".env"); err != nil {
		logrus.Warn("No .env file found, relying on process environment")
	}

	return ENV{
		DBHost:              os.Getenv("DB_HOST"),
		DBUser:              os.Getenv("DB_USER"),
		DBPassword:          os.Getenv("DB_PASSWORD"),
		DBName:              os.Getenv("DB_NAME"),
		DBPort:              os.Getenv("DB_PORT"),
		Port:                os.Getenv("APP_PORT"),
		AppEnv:              os.Getenv("APP_ENV"),
		AppURL:              os.Getenv("APP_URL"),
		SessionKey:          os.Getenv("SESSION_KEY"),
		AppAuthKey:          os.Getenv("APP_AUTH_KEY"),
		AppEncKey:           os.Getenv("APP_ENC_KEY"),
		CSRFKey:             os.Getenv("CSRF_KEY"),
		MidtransServerKey:   os.Getenv("MIDTRANS_SERVER_KEY"),
		MidtransClientKey:   os.Getenv("MIDTRANS_CLIENT_KEY"),
		MidtransMerchantKey: os.Getenv("MIDTRANS_MERCHANT_KEY"),
	}
}

var LoadENV = LoadEnv()
