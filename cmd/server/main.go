package main

import (
	"os"

	"github.com/blogicum/blogicum/server"
	. "github.com/blogicum/blogicum/utils"
	"github.com/blogicum/blogicum/utils/dotenv"
	. "github.com/blogicum/blogicum/utils/log"
)

func main() {
	if err := dotenv.LoadDotEnvs(); err != nil {
		panic(err)
	}

	db, err := GetDBConnection()
	if err != nil {
		Log.Fatal("cannot connect to DB: ", err)
	}
	DatabaseSetupAndMigration(db)

	router := server.NewRouter(db)

	addr := ":8080"
	if port := os.Getenv("PORT"); port != "" {
		addr = ":" + port
	}

	Log.Info("api server starts up on ", addr)
	if err := router.Run(addr); err != nil {
		Log.Fatal("api server exited: ", err)
	}
}
