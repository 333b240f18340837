package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"studio/auth"
	"studio/db"
	"studio/models"
	"studio/storage"
)

type CategoryRequest struct {
	Name        string `form:"name" binding:"required,max=100"`
	Description string `form:"description" binding:"required"`
	Duration    string `form:"duration" binding:"max=50"`
	Price       string `form:"price" binding:"max=50"`
}

func CategoryList(c *gin.Context, admin *models.User) {
	var categories []models.Category
	if err := db.Instance.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []CategoryInfo{}
	for i := range categories {
		result = append(result, categoryInfo(&categories[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"categories": result,
		"flashes":    auth.LoadSession(c).TakeFlashes(),
	})
}

func CategoryAdd(c *gin.Context, admin *models.User) {
	session := auth.LoadSession(c)
	r := CategoryRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}
	filename := ""
	if header, err := c.FormFile("image"); err == nil {
		var saveErr error
		if filename, saveErr = saveUpload(header); saveErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
			return
		}
	}
	category := models.Category{
		Name:          r.Name,
		Description:   r.Description,
		Duration:      r.Duration,
		Price:         r.Price,
		ImageFilename: filename,
	}
	if err := db.Instance.Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Category added.")
	c.Redirect(http.StatusFound, "/admin/categories")
}

func CategoryEditForm(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var category models.Category
	if db.Instance.First(&category, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	c.JSON(http.StatusOK, gin.H{"category": categoryInfo(&category)})
}

func CategoryEdit(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var category models.Category
	if db.Instance.First(&category, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	session := auth.LoadSession(c)
	r := CategoryRequest{}
	if err := c.ShouldBindWith(&r, binding.FormMultipart); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/admin/categories")
		return
	}
	if header, err := c.FormFile("image"); err == nil {
		// The replaced file goes away first
		removeUpload(category.ImageFilename)
		filename, saveErr := saveUpload(header)
		if saveErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": saveErr.Error()})
			return
		}
		category.ImageFilename = filename
	}
	category.Name = r.Name
	category.Description = r.Description
	category.Duration = r.Duration
	category.Price = r.Price
	if err := db.Instance.Save(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Category updated.")
	c.Redirect(http.StatusFound, "/admin/categories")
}

func CategoryDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var category models.Category
	if db.Instance.First(&category, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	plan, err := category.DeletePlan(db.Instance)
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if err := plan.Execute(db.Instance, storage.Instance); err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Category deleted.")
	c.Redirect(http.StatusFound, "/admin/categories")
}
