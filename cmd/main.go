package main

import (
	"github.com/zakariamer/fitnessWebsite/config"
	"github.com/zakariamer/fitnessWebsite/routes"
	"github.com/zakariamer/fitnessWebsite/utils"
)

func main() {
	config.InitDB()
	utils.InitS3()
	r := routes.SetupRouter()
	r.Run(":8080")
}
