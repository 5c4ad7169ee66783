package routes

import (
	"net/http"

	"github.com/adobe/commerce-cif-cart-abandonment/controllers"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RegisterActionRoutes sets up the two integration action endpoints.
func RegisterActionRoutes(r *gin.Engine, logger *zap.Logger) {
	getCart := controllers.NewGetCartController(logger, nil)
	abandonment := controllers.NewAbandonmentController(logger, nil)

	actions := r.Group("/actions")
	{
		actions.POST("/get-cart", getCart.Handle)
		actions.POST("/cart-abandonment", abandonment.Handle)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
}
