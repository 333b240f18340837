package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"studio/auth"
	"studio/db"
	"studio/models"
	"studio/storage"
)

type GalleryRequest struct {
	Name        string `form:"name" binding:"required,max=100"`
	Description string `form:"description" binding:"max=500"`
}

type GalleryInfo struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	CreatedAt   int64  `json:"created_at"`
	Owner       uint64 `json:"owner"`
}

func galleryInfo(g *models.Gallery) GalleryInfo {
	return GalleryInfo{
		ID:          g.ID,
		Name:        g.Name,
		Description: g.Description,
		CreatedAt:   g.CreatedAt,
		Owner:       g.UserID,
	}
}

func GalleryList(c *gin.Context, admin *models.User) {
	var galleries []models.Gallery
	if err := db.Instance.Find(&galleries).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []GalleryInfo{}
	for i := range galleries {
		result = append(result, galleryInfo(&galleries[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"galleries": result,
		"flashes":   auth.LoadSession(c).TakeFlashes(),
	})
}

func GalleryAdd(c *gin.Context, admin *models.User) {
	session := auth.LoadSession(c)
	r := GalleryRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/galleries")
		return
	}
	gallery := models.Gallery{
		Name:        r.Name,
		Description: r.Description,
		UserID:      admin.ID,
		CreatedAt:   time.Now().Unix(),
	}
	if err := db.Instance.Create(&gallery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Gallery added.")
	c.Redirect(http.StatusFound, "/admin/galleries")
}

func GalleryEditForm(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var gallery models.Gallery
	if db.Instance.First(&gallery, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"gallery": galleryInfo(&gallery)})
}

func GalleryEdit(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var gallery models.Gallery
	if db.Instance.First(&gallery, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	session := auth.LoadSession(c)
	r := GalleryRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/galleries")
		return
	}
	gallery.Name = r.Name
	gallery.Description = r.Description
	if err := db.Instance.Save(&gallery).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Gallery updated.")
	c.Redirect(http.StatusFound, "/admin/galleries")
}

func GalleryDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var gallery models.Gallery
	if db.Instance.First(&gallery, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	plan, err := gallery.DeletePlan(db.Instance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if err := plan.Execute(db.Instance, storage.Instance); err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Gallery deleted.")
	c.Redirect(http.StatusFound, "/admin/galleries")
}
