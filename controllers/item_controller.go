package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"strconv"

	"Gin_postgres_redis_toolshare/app"
	"Gin_postgres_redis_toolshare/engine"
	"Gin_postgres_redis_toolshare/models"
	"Gin_postgres_redis_toolshare/photos"
	"Gin_postgres_redis_toolshare/views"

	"github.com/gin-gonic/gin"
)

type ItemController struct{ *Srv }

func NewItemController(s *Srv) *ItemController { return &ItemController{Srv: s} }

// readItemForm pulls the item fields plus photo uploads out of a multipart
// form. Photos are encoded to data URLs here, before any state changes.
func readItemForm(c *gin.Context) (engine.ItemInput, error) {
	in := engine.ItemInput{
		CircleID:     c.PostForm("circleId"),
		Title:        c.PostForm("title"),
		Category:     c.PostForm("category"),
		Note:         c.PostForm("note"),
		Availability: c.PostForm("avail"),
	}
	if rv := c.PostForm("rv"); rv != "" {
		v, err := strconv.ParseFloat(rv, 64)
		if err != nil {
			return in, fmt.Errorf("%w: bad replacement value %q", engine.ErrValidation, rv)
		}
		in.ReplacementValue = v
	}

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["photos"]
	}
	if len(files) > models.MaxItemPhotos {
		files = files[:models.MaxItemPhotos]
	}
	if len(files) > 0 {
		encoded, err := photos.EncodeFiles(files)
		if err != nil {
			return in, fmt.Errorf("%w: %v", engine.ErrValidation, err)
		}
		in.Photos = encoded
	}
	return in, nil
}

func (ic *ItemController) Create(c *gin.Context) {
	in, err := readItemForm(c)
	if err != nil {
		writeErr(c, err)
		return
	}
	var created models.Item
	err = ic.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, it, err := engine.CreateItem(s, actorID(c), in)
		created = it
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

func (ic *ItemController) Update(c *gin.Context) {
	itemID := c.Param("id")
	in, err := readItemForm(c)
	if err != nil {
		writeErr(c, err)
		return
	}
	var updated models.Item
	err = ic.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, it, err := engine.UpdateItem(s, actorID(c), itemID, in)
		updated = it
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

func (ic *ItemController) Delete(c *gin.Context) {
	itemID := c.Param("id")
	err := ic.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		return engine.DeleteItem(s, actorID(c), itemID)
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// CircleItems renders the circle screen: members with their (filtered)
// items.
func (ic *ItemController) CircleItems(c *gin.Context) {
	s := ic.Keeper.Current()
	f := views.Filter{Search: c.Query("q"), Category: c.Query("category")}
	members := views.CircleItemsByOwner(s, c.Param("id"), f)
	if members == nil {
		c.JSON(http.StatusNotFound, app.H{"error": "circle not found"})
		return
	}
	c.JSON(http.StatusOK, app.H{"members": members})
}

func (ic *ItemController) Categories(c *gin.Context) {
	s := ic.Keeper.Current()
	c.JSON(http.StatusOK, app.H{"categories": views.Categories(s, c.Param("id"))})
}
