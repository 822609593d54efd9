package main

import (
	"os"

	"github.com/fitplanpro/workout-backend/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}
