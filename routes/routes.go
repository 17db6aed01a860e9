package routes

import (
	"Gin_postgres_redis_toolshare/app"
	"Gin_postgres_redis_toolshare/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, a *app.App) {
	s := controllers.GetSrv(a)
	stateCtl := controllers.NewStateController(s)
	circleCtl := controllers.NewCircleController(s)
	itemCtl := controllers.NewItemController(s)
	reqCtl := controllers.NewRequestController(s)

	actorMW := app.WithActor(a.Keeper)

	api := r.Group("/api", actorMW)
	{
		// Snapshot + consistency report
		api.GET("/state", stateCtl.GetState)
		api.GET("/state/invariants", stateCtl.Invariants)

		// Circles & friends
		api.POST("/circles", circleCtl.Create)
		api.POST("/circles/join", circleCtl.Join)
		api.GET("/circles/:id/items", itemCtl.CircleItems) // ?q=&category=
		api.GET("/circles/:id/categories", itemCtl.Categories)
		api.POST("/friends", circleCtl.AddFriend)

		// Items (owner only for mutations)
		api.POST("/items", itemCtl.Create)
		api.PUT("/items/:id", itemCtl.Update)
		api.DELETE("/items/:id", itemCtl.Delete)

		// Lending lifecycle
		api.POST("/items/:id/requests", reqCtl.Create)
		api.GET("/requests", reqCtl.List) // incoming + outgoing, ?q=&category=
		api.POST("/requests/:id/approve", reqCtl.Approve)
		api.POST("/requests/:id/decline", reqCtl.Decline)

		api.GET("/loans", reqCtl.ListLoans) // ?status=active|returned
		api.POST("/loans/:id/return", reqCtl.Return)
	}
}
