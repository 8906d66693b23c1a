package routers

import (
	"github.com/gin-gonic/gin"

	"github.com/cocoozhong/logistics-calculator-v2/internal/server/handlers/profit"
	"github.com/cocoozhong/logistics-calculator-v2/internal/server/handlers/quote"
	"github.com/cocoozhong/logistics-calculator-v2/internal/server/middlewares"
	"github.com/cocoozhong/logistics-calculator-v2/pkg/logger"
)

// SetupRoutes 配置所有路由，使用 Route Group 分类
func SetupRoutes(
	quoteHandler *quote.QuoteHandler,
	profitHandler *profit.ProfitHandler,
	log logger.Logger,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())

	r.Use(middlewares.CORS())
	r.Use(middlewares.Logger(log))
	r.Use(middlewares.ErrorHandler())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "logistics-calculator",
			"message": "Service is running",
		})
	})

	v1 := r.Group("/api/v1")
	{
		quotes := v1.Group("/quotes")
		{
			quotes.POST("", quoteHandler.Calculate)
		}

		locations := v1.Group("/locations")
		{
			locations.POST("/match", quoteHandler.Match)
		}

		profits := v1.Group("/profit")
		{
			profits.POST("/npoint", profitHandler.NPoint)
			profits.POST("/point", profitHandler.Point)
			profits.GET("/history", profitHandler.History)
			profits.DELETE("/history", profitHandler.ClearHistory)
		}
	}

	return r
}
