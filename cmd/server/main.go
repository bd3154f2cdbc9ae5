package main

import (
	"log"

	"github.com/iffanyt/ChugCheck/config"
	"github.com/iffanyt/ChugCheck/routes"
	"github.com/iffanyt/ChugCheck/services"
	"github.com/iffanyt/ChugCheck/utils"
)

func main() {
	config.InitDB()
	utils.InitMailer()

	rt := services.NewRealtimeHub()
	ps, err := services.NewPushService(config.DB)
	if err != nil {
		log.Printf("push service unavailable: %v", err)
		ps = nil
	}
	services.InitCelebrationDeps(config.DB, rt, ps)

	r := routes.SetupRouter(rt, ps)
	r.Run(":8080")
}
