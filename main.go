package main

import (
	"encoding/base64"
	"log"
	"net/http"
	"os"

	"github.com/ssapkota/hamropasal/app/cmd"
	"github.com/ssapkota/hamropasal/app/configs"
	"github.com/ssapkota/hamropasal/app/routes"
)

func main() {
	if len(os.Args) > 1 {
		cmd.RunCli()
		return
	}

	keys, err := configs.LoadSessionKeysFromEnv()
	if err != nil {
		log.Fatal("Session keys: ", err)
	}
	csrfKey, err := base64.URLEncoding.DecodeString(configs.LoadENV.CSRFKey)
	if err != nil || len(csrfKey) != 32 {
		log.Fatal("CSRF_KEY must be 32 bytes of Base64; run generate-keys")
	}

	db, err := configs.OpenConnection()
	if err != nil {
		log.Fatal("DB connection failed: ", err)
	}
	log.Println("Database connected")

	router := routes.NewRouter(db, keys, csrfKey)

	server := http.Server{
		Addr:    configs.LoadENV.Port,
		Handler: router,
	}

	log.Printf("Server starting on %s", server.Addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal("Server stopped: ", err)
	}
}
