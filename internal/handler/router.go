package handler

import (
	"address-book-api/internal/middleware"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// NewRouter wires the HTTP routes onto a gin engine.
func NewRouter(addresses *AddressHandler, nearby *NearbyHandler, db Pinger) *gin.Engine {
	r := gin.New()
	r.Use(middleware.RequestLogger(), gin.Recovery())

	r.GET("/health", Health(db))
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	g := r.Group("/addresses")
	g.POST("/", addresses.CreateAddress)
	g.GET("/", addresses.ListAddresses)
	// registered with and without the trailing slash so "nearby" is never read as an id
	g.GET("/nearby/", nearby.FindNearby)
	g.GET("/nearby", nearby.FindNearby)
	g.GET("/:id", addresses.GetAddress)
	g.PUT("/:id", addresses.UpdateAddress)
	g.DELETE("/:id", addresses.DeleteAddress)

	return r
}
