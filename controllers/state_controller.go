package controllers

import (
	"net/http"

	"Gin_postgres_redis_toolshare/app"
	"Gin_postgres_redis_toolshare/engine"

	"github.com/gin-gonic/gin"
)

type StateController struct{ *Srv }

func NewStateController(s *Srv) *StateController { return &StateController{Srv: s} }

// GetState dumps the whole snapshot. The frontend boots from this.
func (sc *StateController) GetState(c *gin.Context) {
	c.JSON(http.StatusOK, sc.Keeper.Current())
}

// Invariants reports known consistency gaps (orphaned loans, double
// bookings) without fixing them.
func (sc *StateController) Invariants(c *gin.Context) {
	vs := engine.CheckInvariants(sc.Keeper.Current())
	if vs == nil {
		vs = []engine.Violation{}
	}
	c.JSON(http.StatusOK, app.H{"violations": vs})
}
