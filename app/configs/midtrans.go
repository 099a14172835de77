package configs

import (
	"github.com/midtrans/midtrans-go"
	"github.com/midtrans/midtrans-go/snap"
	"github.com/sirupsen/logrus"
)

var MidtransClient snap.Client

func InitMidtransClient() {
	env := midtrans.Sandbox
	if LoadENV.AppEnv == "production" {
		env = midtrans.Production
	}

	MidtransClient.New(LoadENV.MidtransServerKey, env)
	midtrans.ClientKey = LoadENV.MidtransClientKey
	midtrans.ServerKey = LoadENV.MidtransServerKey
	midtrans.Environment = env

	logrus.Info("midtrans snap client initialized")
}
