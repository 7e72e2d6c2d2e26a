package main

import (
	"os"

	"github.com/fkie-cad/fspath/app"
)

func main() {
	app.RunApp(os.Args)
}
