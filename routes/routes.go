package routes

import (
	"net/http"

	"github.com/vatsala281203/food-logger/controllers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(logs *controllers.LogController, predict *controllers.PredictController, webDir string) *gin.Engine {
	r := gin.Default()
	r.Use(cors.Default())

	api := r.Group("/api")
	{
		api.POST("/predict", predict.Predict)
		api.POST("/logs", logs.LogMeal)
		api.GET("/logs", logs.ListLogs)
		api.GET("/logs/today", logs.TodaySummary)
		api.GET("/logs/summary", logs.SummaryByDate)
		api.GET("/logs/history", logs.History)
		api.DELETE("/logs", logs.ClearLogs)
	}

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// The browser client lives at the root.
	if webDir != "" {
		r.NoRoute(gin.WrapH(http.FileServer(http.Dir(webDir))))
	}

	return r
}
