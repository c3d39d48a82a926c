package main

import (
	"embed"
	"log"

	"property-listings/internal/app"
)

//go:embed web/templates
var webFiles embed.FS

// @title Property Listings API
// @version 1.0
// @description Read-mostly property listing service with Redis-backed queryset and response caching.
// @BasePath /
func main() {
	if err := app.Run(webFiles); err != nil {
		log.Fatal(err)
	}
}
