package main

import "devconnector_backend/internal/app"

func main() {
	app.Run()
}
