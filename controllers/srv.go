package controllers

import (
	"errors"
	"net/http"

	"Gin_postgres_redis_toolshare/app"
	"Gin_postgres_redis_toolshare/engine"
	"Gin_postgres_redis_toolshare/store"

	"github.com/gin-gonic/gin"
)

// Srv bundles what every controller needs.
type Srv struct {
	Keeper *store.Keeper
	Cfg    app.Config
}

func GetSrv(a *app.App) *Srv {
	return &Srv{Keeper: a.Keeper, Cfg: a.Config}
}

// --- helpers ---

func actorID(c *gin.Context) string {
	v, _ := c.Get("actorID")
	id, _ := v.(string)
	return id
}

// writeErr maps engine errors onto status codes.
func writeErr(c *gin.Context, err error) {
	switch {
	case errors.Is(err, engine.ErrValidation):
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
	case errors.Is(err, engine.ErrAuthorization):
		c.JSON(http.StatusForbidden, app.H{"error": err.Error()})
	case errors.Is(err, engine.ErrNotFound):
		c.JSON(http.StatusNotFound, app.H{"error": err.Error()})
	case errors.Is(err, engine.ErrState):
		c.JSON(http.StatusConflict, app.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, app.H{"error": err.Error()})
	}
}
