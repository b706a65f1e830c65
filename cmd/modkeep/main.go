package main

import "modkeep/internal/app"

func main() {
	app.Run()
}
