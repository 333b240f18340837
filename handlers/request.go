package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/auth"
	"studio/db"
	"studio/models"
)

type RequestInfo struct {
	ID           uint64 `json:"id"`
	ClientName   string `json:"client_name"`
	Phone        string `json:"phone"`
	CategoryName string `json:"category_name"`
	Message      string `json:"message"`
	CreatedAt    int64  `json:"created_at"`
}

func requestInfo(r *models.Request) RequestInfo {
	info := RequestInfo{
		ID:         r.ID,
		ClientName: r.ClientName,
		Phone:      r.Phone,
		Message:    r.Message,
		CreatedAt:  r.CreatedAt,
	}
	if r.Category != nil {
		info.CategoryName = r.Category.Name
	}
	return info
}

func AdminRequestList(c *gin.Context, admin *models.User) {
	var requests []models.Request
	if err := db.Instance.Preload("Category").Order("created_at DESC").Find(&requests).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []RequestInfo{}
	for i := range requests {
		result = append(result, requestInfo(&requests[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"requests": result,
		"flashes":  auth.LoadSession(c).TakeFlashes(),
	})
}

func RequestDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var request models.Request
	if db.Instance.First(&request, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := db.Instance.Delete(&request).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Request deleted.")
	c.Redirect(http.StatusFound, "/admin/requests")
}
