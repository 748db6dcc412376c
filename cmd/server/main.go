package main

import (
	"log"

	"github.com/gkratosBR/Glitch-Arena/internal/app"
)

func main() {
	a := app.NewApp()
	if err := a.Run(); err != nil {
		log.Fatal(err)
	}
}
