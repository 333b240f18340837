package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/auth"
	"studio/db"
	"studio/models"
)

type RatingInfo struct {
	ID              uint64 `json:"id"`
	Score           int    `json:"score"`
	UserIP          string `json:"user_ip"`
	PortfolioItemID uint64 `json:"portfolio_item_id"`
	ItemTitle       string `json:"item_title"`
}

func AdminRatingList(c *gin.Context, admin *models.User) {
	var ratings []models.Rating
	if err := db.Instance.Preload("PortfolioItem").Order("score DESC").Find(&ratings).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []RatingInfo{}
	for _, rating := range ratings {
		result = append(result, RatingInfo{
			ID:              rating.ID,
			Score:           rating.Score,
			UserIP:          rating.UserIP,
			PortfolioItemID: rating.PortfolioItemID,
			ItemTitle:       rating.PortfolioItem.Title,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"ratings": result,
		"flashes": auth.LoadSession(c).TakeFlashes(),
	})
}

func RatingDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var rating models.Rating
	if db.Instance.First(&rating, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := db.Instance.Delete(&rating).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Rating deleted.")
	c.Redirect(http.StatusFound, "/admin/ratings")
}
