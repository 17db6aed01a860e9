package controllers

import (
	"fmt"
	"mime/multipart"
	"net/http"
	"time"

	"Gin_postgres_redis_toolshare/app"
	"Gin_postgres_redis_toolshare/engine"
	"Gin_postgres_redis_toolshare/models"
	"Gin_postgres_redis_toolshare/photos"
	"Gin_postgres_redis_toolshare/views"

	"github.com/gin-gonic/gin"
)

type RequestController struct{ *Srv }

func NewRequestController(s *Srv) *RequestController { return &RequestController{Srv: s} }

func (rc *RequestController) Create(c *gin.Context) {
	itemID := c.Param("id")
	var in struct {
		StartDate string `json:"startDate"`
		EndDate   string `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, app.H{"error": err.Error()})
		return
	}
	var created models.Request
	err := rc.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, req, err := engine.CreateRequest(s, actorID(c), itemID, in.StartDate, in.EndDate)
		created = req
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, created)
}

// List returns the pending requests split by direction for the actor.
func (rc *RequestController) List(c *gin.Context) {
	s := rc.Keeper.Current()
	f := views.Filter{Search: c.Query("q"), Category: c.Query("category")}
	c.JSON(http.StatusOK, views.PendingRequests(s, actorID(c), f))
}

func (rc *RequestController) Approve(c *gin.Context) {
	requestID := c.Param("id")
	var loan models.Loan
	err := rc.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, l, err := engine.Approve(s, actorID(c), requestID)
		loan = l
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusCreated, loan)
}

func (rc *RequestController) Decline(c *gin.Context) {
	requestID := c.Param("id")
	err := rc.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		return engine.Decline(s, actorID(c), requestID)
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, app.H{"ok": true})
}

// ListLoans serves both the active screen and the history screen.
// ?status=active (default) computes overdue flags; ?status=returned lists
// the audit trail.
func (rc *RequestController) ListLoans(c *gin.Context) {
	s := rc.Keeper.Current()
	f := views.Filter{Search: c.Query("q"), Category: c.Query("category")}
	switch c.DefaultQuery("status", "active") {
	case "returned":
		c.JSON(http.StatusOK, app.H{"loans": views.LoanHistory(s, f)})
	default:
		c.JSON(http.StatusOK, app.H{"loans": views.ActiveLoans(s, f, time.Now().UTC())})
	}
}

// Return completes a loan: multipart form with optional "notes" plus up to
// three "photos" files, encoded before the transition runs.
func (rc *RequestController) Return(c *gin.Context) {
	loanID := c.Param("id")
	notes := c.PostForm("notes")

	var files []*multipart.FileHeader
	if form, err := c.MultipartForm(); err == nil && form != nil {
		files = form.File["photos"]
	}
	if len(files) > models.MaxItemPhotos {
		files = files[:models.MaxItemPhotos]
	}
	var encoded []string
	if len(files) > 0 {
		var err error
		encoded, err = photos.EncodeFiles(files)
		if err != nil {
			writeErr(c, fmt.Errorf("%w: %v", engine.ErrValidation, err))
			return
		}
	}

	var returned models.Loan
	err := rc.Keeper.Update(c.Request.Context(), func(s models.State) (models.State, error) {
		next, l, err := engine.MarkReturned(s, actorID(c), loanID, notes, encoded)
		returned = l
		return next, err
	})
	if err != nil {
		writeErr(c, err)
		return
	}
	c.JSON(http.StatusOK, returned)
}
