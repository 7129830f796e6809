package main

import (
	"go-cuts-api/app"
)

func main() {
	app.Run()
}
