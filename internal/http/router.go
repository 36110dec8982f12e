package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func NewRouter(handler *Handler, authMiddleware gin.HandlerFunc, environment string, allowOrigins []string) *gin.Engine {
	if environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowOrigins = allowOrigins
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	router.POST("/login", handler.login)
	router.GET("/contracts", handler.listContracts)
	router.GET("/contracts_with_points", handler.listContractSummaries)
	router.GET("/get_points/:contractId", handler.getPoints)

	protected := router.Group("/")
	protected.Use(authMiddleware)
	protected.POST("/add_contract", handler.addContract)
	protected.PUT("/update_contract/:id", handler.updateContract)
	protected.DELETE("/delete_contract/:id", handler.deleteContract)
	protected.POST("/add_point", handler.addPoint)
	protected.PUT("/update_point/:id", handler.updatePoint)
	protected.DELETE("/delete_point/:id", handler.deletePoint)
	protected.POST("/invoices/export", handler.exportInvoice)
	protected.POST("/invoices/export/pdf", handler.exportInvoicePDF)

	return router
}
