package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"studio/auth"
	"studio/db"
	"studio/models"
)

type CommentInfo struct {
	ID              uint64 `json:"id"`
	AuthorName      string `json:"author_name"`
	Text            string `json:"text"`
	CreatedAt       int64  `json:"created_at"`
	PortfolioItemID uint64 `json:"portfolio_item_id"`
	ItemTitle       string `json:"item_title"`
}

func AdminCommentList(c *gin.Context, admin *models.User) {
	var comments []models.Comment
	if err := db.Instance.Preload("PortfolioItem").Order("created_at DESC").Find(&comments).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []CommentInfo{}
	for _, comment := range comments {
		result = append(result, CommentInfo{
			ID:              comment.ID,
			AuthorName:      comment.AuthorName,
			Text:            comment.Text,
			CreatedAt:       comment.CreatedAt,
			PortfolioItemID: comment.PortfolioItemID,
			ItemTitle:       comment.PortfolioItem.Title,
		})
	}
	c.JSON(http.StatusOK, gin.H{
		"comments": result,
		"flashes":  auth.LoadSession(c).TakeFlashes(),
	})
}

func CommentDelete(c *gin.Context, admin *models.User) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var comment models.Comment
	if db.Instance.First(&comment, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	if err := db.Instance.Delete(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session := auth.LoadSession(c)
	session.Flash("success", "Comment deleted.")
	c.Redirect(http.StatusFound, "/admin/comments")
}
