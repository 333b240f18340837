package handlers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"

	"studio/auth"
	"studio/db"
	"studio/models"
	"studio/storage"
	"studio/utils"
)

type PortfolioRequest struct {
	Title       string `form:"title" binding:"required,max=200"`
	Description string `form:"description" binding:"max=500"`
	CategoryID  uint64 `form:"category_id" binding:"required"`
	GalleryID   string `form:"gallery_id"` // empty selection means no gallery
	Tags        string `form:"tags" binding:"max=200"`
}

func AdminPortfolioList(c *gin.Context, admin *models.User) {
	var items []models.PortfolioItem
	if err := db.Instance.Preload("Category").Preload("Gallery").Preload("Tags").
		Order("created_at DESC").Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []PortfolioItemInfo{}
	for i := range items {
		result = append(result, portfolioItemInfo(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":   result,
		"flashes": auth.LoadSession(c).TakeFlashes(),
	})
}

// resolveItemRefs checks the category exists and coerces the free-form
// gallery selection to a reference (empty string means no gallery).
func resolveItemRefs(r *PortfolioRequest) (*uint64, string, bool) {
	var category models.Category
	if db.Instance.First(&category, r.CategoryID).Error != nil {
		return nil, "Unknown category.", false
	}
	if r.GalleryID == "" || r.GalleryID == "0" {
		return nil, "", true
	}
	galleryID, err := strconv.ParseUint(r.GalleryID, 10, 64)
	if err != nil {
		return nil, "Unknown gallery.", false
	}
	if db.Instance.First(&models.Gallery{}, galleryID).Error != nil {
		return nil, "Unknown gallery.", false
	}
	return &galleryID, "", true
}

func AdminPortfolioAdd(c *gin.Context, admin *models.User) {
	session := auth.LoadSession(c)
	r := PortfolioRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/portfolio")
		return
	}
	header, err := c.FormFile("image")
	if err != nil {
		session.Flash("error", "An image is required.")
		c.Redirect(http.StatusFound, "/admin/portfolio")
		return
	}
	galleryID, msg, ok := resolveItemRefs(&r)
	if !ok {
		session.Flash("error", msg)
		c.Redirect(http.StatusFound, "/admin/portfolio")
		return
	}
	filename, err := saveUpload(header)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	item := models.PortfolioItem{
		Title:         r.Title,
		Description:   r.Description,
		CategoryID:    r.CategoryID,
		GalleryID:     galleryID,
		ImageFilename: filename,
		CreatedAt:     time.Now().Unix(),
	}
	err = db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&item).Error; err != nil {
			return err
		}
		return item.ReplaceTags(tx, utils.NormalizeTags(r.Tags))
	})
	if err != nil {
		removeUpload(filename)
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Portfolio item added.")
	c.Redirect(http.StatusFound, "/admin/portfolio")
}

func AdminPortfolioEditForm(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var item models.PortfolioItem
	if db.Instance.Preload("Category").Preload("Tags").First(&item, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	info := portfolioItemInfo(&item)
	c.JSON(http.StatusOK, gin.H{
		"item": info,
		// Pre-populated free-text tags field
		"tags_field": strings.Join(info.Tags, ", "),
	})
}

func AdminPortfolioEdit(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var item models.PortfolioItem
	if db.Instance.First(&item, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	session := auth.LoadSession(c)
	r := PortfolioRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/portfolio")
		return
	}
	galleryID, msg, ok := resolveItemRefs(&r)
	if !ok {
		session.Flash("error", msg)
		c.Redirect(http.StatusFound, "/admin/portfolio")
		return
	}
	if header, err := c.FormFile("image"); err == nil {
		removeUpload(item.ImageFilename)
		filename, saveErr := saveUpload(header)
		if saveErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
			return
		}
		item.ImageFilename = filename
	}
	item.Title = r.Title
	item.Description = r.Description
	item.CategoryID = r.CategoryID
	item.GalleryID = galleryID
	err := db.Instance.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		// Full replace of the tag set, not a merge
		return item.ReplaceTags(tx, utils.NormalizeTags(r.Tags))
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Portfolio item updated.")
	c.Redirect(http.StatusFound, "/admin/portfolio")
}

func AdminPortfolioDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var item models.PortfolioItem
	if db.Instance.First(&item, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := item.DeletePlan().Execute(db.Instance, storage.Instance); err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Portfolio item deleted.")
	c.Redirect(http.StatusFound, "/admin/portfolio")
}
