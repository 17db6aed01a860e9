package controllers

import (
	"net/http"

	"Gin_postgres_redis_toolshare/app"
	"Gin_postgres_redis_toolshare/engine"
	"Gin_postgres_redis_toolshare/models"

	"github.com/gin-gonic/gin"
)

type CircleController struct{ *Srv }

func NewCircleController(s *Srv) *CircleController { return &CircleController{Srv: s} }

func (cc *CircleController) Create(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	var created models.Circle
	err := cc.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, circle, err := engine.CreateCircle(s, actorID(c), in.Name)
		created = circle
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// Join adds a member by invite code. memberId defaults to the actor.
func (cc *CircleController) Join(c *gin.Context) {
	var in struct {
		Code     string `json:"code" binding:"required"`
		MemberID string `json:"memberId"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	if in.MemberID == "" {
		in.MemberID = actorID(c)
	}
	var joined models.Circle
	err := cc.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, circle, err := engine.JoinCircle(s, in.Code, in.MemberID)
		joined = circle
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, joined)
}

func (cc *CircleController) AddFriend(c *gin.Context) {
	var in struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	var created models.Friend
	err := cc.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, f, err := engine.AddFriend(s, actorID(c), in.Name)
		created = f
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}
