package main

import "servis_backend/internal/app"

func main() {
	app.Run()
}
