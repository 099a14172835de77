package main

import (
	"net/http"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/volthome/storefront/app/cmd"
	"github.com/volthome/storefront/app/configs"
	"github.com/volthome/storefront/app/routes"
)

func main() {
	env := configs.LoadEnv()

	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	configs.InitMidtransClient()

	db, err := configs.OpenConnection()
	if err != nil {
		logrus.WithError(err).Fatal("database connection failed")
	}
	logrus.Info("database connected")

	router := routes.NewRouter(db)

	addr := env.Port
	if addr == "" {
		addr = ":8080"
	}

	server := http.Server{
		Addr:    addr,
		Handler: router,
	}

	logrus.WithField("addr", server.Addr).Info("server starting")
	if err := server.ListenAndServe(); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
