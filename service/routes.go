package service

import (
	"github.com/gin-gonic/gin"
)

func (server *Server) SetupRoutes() *gin.Engine {
	routes := gin.Default()

	routes.GET("/activity/:username", server.GetActivity)

	cachedRoutes := routes.Group("/")
	{
		cachedRoutes.Use(server.CacheUserRequest)

		cachedRoutes.PUT("/book", server.CreateBook)
		cachedRoutes.GET("/book/:isbn", server.GetBookByIsbn)
		cachedRoutes.GET("/search", server.SearchBooks)
		cachedRoutes.GET("/inventory", server.ListInventory)
		cachedRoutes.GET("/availability", server.Availability)
		cachedRoutes.POST("/report", server.Report)
		cachedRoutes.GET("/loans", server.ListLoans)
		cachedRoutes.POST("/loans", server.BorrowBook)
		cachedRoutes.POST("/returns", server.ReturnBook)
		cachedRoutes.GET("/notifications/:recipient", server.ListNotifications)
	}

	return routes
}
