package main

import (
	"TravelPro/FiberConfig"
	"TravelPro/Models"
	"log"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(".env"); err != nil {
		log.Println("No .env file found, using process environment")
	}

	Models.Connect()
	FiberConfig.FiberConfig()
}
