package main

import (
	"os"

	"github.com/GoSettings-Admin/GoSettings-Admin/app"
)

func main() {
	err := app.Execute()
	if err != nil {
		os.Exit(1)
	}
}
