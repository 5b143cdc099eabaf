package main

import (
	"os"

	"atlas-hotel/cmd/cli"

	"github.com/gin-gonic/gin"
)

func init() {
	// Never expose debug output because of a missing setting
	gin.SetMode(gin.ReleaseMode)

	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
}

// @title           Hotel Atlas API
// @version         1.0
// @description     Booking funnel, inquiries, payments and admin dashboard of Hotel Atlas.

// @BasePath  /api
// @schemes http https
// @securityDefinitions.apikey AdminToken
// @in header
// @name X-Admin-Token
func main() {
	cli.Execute()
}
