package main

import (
	"os"

	"github.com/imgajeed76/pomo/internal/colorcli"
)

func main() {
	if err := colorcli.Execute(); err != nil {
		os.Exit(1)
	}
}
