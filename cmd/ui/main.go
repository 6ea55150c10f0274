package main

import (
	"log"
	"os"

	"policycraft/ui"
)

func main() {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	app, err := ui.NewApp(ui.Config{Port: port})
	if err != nil {
		log.Fatal("Failed to create workbench:", err)
	}

	log.Printf("Starting PolicyCraft workbench on http://localhost:%s", port)
	log.Fatal(app.Start(":" + port))
}
