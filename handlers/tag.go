package handlers

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"studio/auth"
	"studio/db"
	"studio/models"
	"studio/storage"
)

type TagRequest struct {
	Name string `form:"name" binding:"required,max=50"`
}

type TagInfo struct {
	ID   uint64 `json:"id"`
	Name string `json:"name"`
}

func TagList(c *gin.Context, admin *models.User) {
	var tags []models.PhotoTag
	if err := db.Instance.Order("name ASC").Find(&tags).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []TagInfo{}
	for _, tag := range tags {
		result = append(result, TagInfo{ID: tag.ID, Name: tag.Name})
	}
	c.JSON(http.StatusOK, gin.H{
		"tags":    result,
		"flashes": auth.LoadSession(c).TakeFlashes(),
	})
}

func TagAdd(c *gin.Context, admin *models.User) {
	session := auth.LoadSession(c)
	r := TagRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/tags")
		return
	}
	tag := models.PhotoTag{Name: strings.ToLower(strings.TrimSpace(r.Name))}
	if err := db.Instance.Create(&tag).Error; err != nil {
		// Unique index violation on the normalized name
		session.Flash("error", "A tag with this name already exists.")
		c.Redirect(http.StatusFound, "/admin/tags")
		return
	}
	session.Flash("success", "Tag added.")
	c.Redirect(http.StatusFound, "/admin/tags")
}

func TagEditForm(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var tag models.PhotoTag
	if db.Instance.First(&tag, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"tag": TagInfo{ID: tag.ID, Name: tag.Name}})
}

func TagEdit(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var tag models.PhotoTag
	if db.Instance.First(&tag, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	session := auth.LoadSession(c)
	r := TagRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/tags")
		return
	}
	tag.Name = strings.ToLower(strings.TrimSpace(r.Name))
	if err := db.Instance.Save(&tag).Error; err != nil {
		session.Flash("error", "A tag with this name already exists.")
		c.Redirect(http.StatusFound, "/admin/tags")
		return
	}
	session.Flash("success", "Tag updated.")
	c.Redirect(http.StatusFound, "/admin/tags")
}

func TagDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var tag models.PhotoTag
	if db.Instance.First(&tag, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := tag.DeletePlan().Execute(db.Instance, storage.Instance); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Tag deleted.")
	c.Redirect(http.StatusFound, "/admin/tags")
}
