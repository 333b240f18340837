package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"studio/auth"
	"studio/db"
	"studio/models"
)

type ReviewRequest struct {
	ClientName string `form:"client_name" binding:"required,max=100"`
	Text       string `form:"text" binding:"required"`
}

func AdminReviewList(c *gin.Context, admin *models.User) {
	var reviews []models.Review
	if err := db.Instance.Order("date DESC").Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []ReviewInfo{}
	for _, r := range reviews {
		result = append(result, ReviewInfo{ID: r.ID, ClientName: r.ClientName, Text: r.Text, Date: r.Date})
	}
	c.JSON(http.StatusOK, gin.H{
		"reviews": result,
		"flashes": auth.LoadSession(c).TakeFlashes(),
	})
}

func ReviewAdd(c *gin.Context, admin *models.User) {
	session := auth.LoadSession(c)
	r := ReviewRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/reviews")
		return
	}
	review := models.Review{
		ClientName: r.ClientName,
		Text:       r.Text,
		Date:       time.Now().Unix(),
	}
	if err := db.Instance.Create(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Review added.")
	c.Redirect(http.StatusFound, "/admin/reviews")
}

func ReviewEditForm(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var review models.Review
	if db.Instance.First(&review, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"review": ReviewInfo{
		ID: review.ID, ClientName: review.ClientName, Text: review.Text, Date: review.Date,
	}})
}

func ReviewEdit(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var review models.Review
	if db.Instance.First(&review, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	session := auth.LoadSession(c)
	r := ReviewRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/reviews")
		return
	}
	review.ClientName = r.ClientName
	review.Text = r.Text
	if err := db.Instance.Save(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Review updated.")
	c.Redirect(http.StatusFound, "/admin/reviews")
}

func ReviewDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var review models.Review
	if db.Instance.First(&review, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := db.Instance.Delete(&review).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Review deleted.")
	c.Redirect(http.StatusFound, "/admin/reviews")
}
