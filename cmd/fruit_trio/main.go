package main

import (
	"log"

	"fruit_trio/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatalf("failed to run app: %v", err)
	}
}
