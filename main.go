package main

import (
	"DocuKeeper/CronJobs"
	"DocuKeeper/FiberConfig"
	"DocuKeeper/Models"
	"log"
	"os"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment defaults")
	}

	setupLogging()

	Models.Connect()

	if os.Getenv("EXPIRATION_CRON_ENABLED") != "false" {
		checker := CronJobs.NewExpirationChecker(Models.DB, true)
		if err := checker.Start(); err != nil {
			log.Printf("Failed to start expiration checker: %v", err)
		}
	}

	FiberConfig.FiberConfig()
}

func setupLogging() {
	if err := os.MkdirAll("logs", 0755); err != nil {
		log.Printf("Error creating logs directory: %v\n", err)
		return
	}

	logFile, err := os.OpenFile("logs/application.log",
		os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0666)

	if err != nil {
		log.Printf("Error opening log file: %v\n", err)
		return
	}

	log.SetOutput(logFile)
	log.SetFlags(log.Ldate | log.Ltime)
}
