package main

import (
	"log"
	"os"

	"InkPad/internal/config"
	"InkPad/internal/ui"
)

func main() {
	path := ""
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	cfg := config.Load(path)
	log.Println("Starting InkPad")
	ui.RunApp(cfg)
}
