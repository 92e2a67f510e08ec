// @title           Travel API
// @version         1.0
// @description     Public site, review moderation and back-office API for the travel agency.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import (
	_ "travel_backend/docs"
	"travel_backend/internal/app"
)

func main() {
	app.Run()
}
