package main

import (
	"fmt"

	"github.com/rs/zerolog/log"

	"smartraw-backend/config"
	"smartraw-backend/internal/app"
	"smartraw-backend/internal/infrastructure/database/mongodb"
)

func main() {
	conf := config.CreateNewConfig()

	db, err := mongodb.ConnectToMongoDB(
		fmt.Sprintf("mongodb://%s:%s", conf.MongoDBConfig.DBHost, conf.MongoDBConfig.DBPort),
		conf.MongoDBConfig.DBName,
	)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to MongoDB")
	}

	application := app.App{
		DB:     db,
		Config: conf,
	}

	application.Start()
}
