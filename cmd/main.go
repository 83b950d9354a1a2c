package main

import (
	"github.com/Dhaneyl/course-platform/internal/app"
	"github.com/Dhaneyl/course-platform/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()
	gin.SetMode(gin.ReleaseMode)
	cfg := config.MustLoad()
	app.Run(cfg)
}
