package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"

	"studio/db"
	"studio/models"
)

func TestGalleryCRUD(t *testing.T) {
	tc := setupTest(t)
	admin := tc.login(t)

	rr := tc.postForm(t, "/admin/galleries/add", url.Values{
		"name":        {"Weddings 2026"},
		"description": {"Selected wedding work"},
	})
	assert.Equal(t, http.StatusFound, rr.Code)

	var gallery models.Gallery
	assert.NoError(t, db.Instance.First(&gallery).Error)
	assert.Equal(t, admin.ID, gallery.UserID, "owned by the logged-in admin")

	rr = tc.postForm(t, "/admin/galleries/edit/"+fmt.Sprint(gallery.ID), url.Values{
		"name": {"Weddings"},
	})
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.NoError(t, db.Instance.First(&gallery, gallery.ID).Error)
	assert.Equal(t, "Weddings", gallery.Name)
}

func TestGalleryDeleteRemovesPhotos(t *testing.T) {
	tc := setupTest(t)
	admin := tc.login(t)
	category := makeCategory(t, "Portrait")
	gallery := models.Gallery{Name: "Studio", UserID: admin.ID}
	assert.NoError(t, db.Instance.Create(&gallery).Error)

	inGallery := makeItem(t, category.ID, "In", "in.jpg", 0)
	assert.NoError(t, db.Instance.Model(inGallery).Update("gallery_id", gallery.ID).Error)
	outside := makeItem(t, category.ID, "Out", "out.jpg", 0)
	writeStoredFile(t, "in.jpg")
	writeStoredFile(t, "out.jpg")

	rr := tc.postForm(t, "/admin/galleries/delete/"+fmt.Sprint(gallery.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)

	var remaining []models.PortfolioItem
	assert.NoError(t, db.Instance.Find(&remaining).Error)
	assert.Len(t, remaining, 1)
	assert.Equal(t, outside.ID, remaining[0].ID)
	assert.EqualValues(t, 0, countRows(t, &models.Gallery{}))
}

func TestTagDuplicateRejected(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)

	rr := tc.postForm(t, "/admin/tags/add", url.Values{"name": {"Studio"}})
	assert.Equal(t, http.StatusFound, rr.Code)

	var tag models.PhotoTag
	assert.NoError(t, db.Instance.First(&tag).Error)
	assert.Equal(t, "studio", tag.Name, "stored lower-cased")

	// Same name, different case: unique on the normalized name
	rr = tc.postForm(t, "/admin/tags/add", url.Values{"name": {"STUDIO"}})
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.EqualValues(t, 1, countRows(t, &models.PhotoTag{}))
}

func TestTagDeleteKeepsPhotos(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)
	category := makeCategory(t, "Portrait")
	item := makeItem(t, category.ID, "One", "one.jpg", 0)
	assert.NoError(t, item.ReplaceTags(db.Instance, []string{"studio", "portrait"}))

	var tag models.PhotoTag
	assert.NoError(t, db.Instance.First(&tag, "name = ?", "studio").Error)
	rr := tc.postForm(t, "/admin/tags/delete/"+fmt.Sprint(tag.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)

	assert.EqualValues(t, 1, countRows(t, &models.PortfolioItem{}))
	assert.ElementsMatch(t, []string{"portrait"}, itemTags(t, item))
}

func TestReviewCRUD(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)

	rr := tc.postForm(t, "/admin/reviews/add", url.Values{
		"client_name": {"Anna"},
		"text":        {"Wonderful photos, thank you!"},
	})
	assert.Equal(t, http.StatusFound, rr.Code)

	var review models.Review
	assert.NoError(t, db.Instance.First(&review).Error)

	rr = tc.postForm(t, "/admin/reviews/edit/"+fmt.Sprint(review.ID), url.Values{
		"client_name": {"Anna K."},
		"text":        {"Wonderful photos!"},
	})
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.NoError(t, db.Instance.First(&review, review.ID).Error)
	assert.Equal(t, "Anna K.", review.ClientName)

	rr = tc.postForm(t, "/admin/reviews/delete/"+fmt.Sprint(review.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Review{}))
}

func TestDashboardCounts(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)
	category := makeCategory(t, "Portrait")
	makeItem(t, category.ID, "One", "one.jpg", 0)
	assert.NoError(t, db.Instance.Create(&models.Request{ClientName: "Anna", Phone: "555"}).Error)
	assert.NoError(t, db.Instance.Create(&models.Review{ClientName: "Anna", Text: "Great"}).Error)

	rr := tc.get(t, "/admin/dashboard")
	assert.Equal(t, http.StatusOK, rr.Code)
	payload := struct {
		TotalRequests  int64         `json:"total_requests"`
		TotalPortfolio int64         `json:"total_portfolio"`
		TotalReviews   int64         `json:"total_reviews"`
		RecentRequests []RequestInfo `json:"recent_requests"`
	}{}
	assert.NoError(t, json.Unmarshal(rr.Body.Bytes(), &payload))
	assert.EqualValues(t, 1, payload.TotalRequests)
	assert.EqualValues(t, 1, payload.TotalPortfolio)
	assert.EqualValues(t, 1, payload.TotalReviews)
	assert.Len(t, payload.RecentRequests, 1)
}

func TestRequestListAndDelete(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)
	assert.NoError(t, db.Instance.Create(&models.Request{ClientName: "Anna", Phone: "555"}).Error)

	rr := tc.get(t, "/admin/requests")
	assert.Equal(t, http.StatusOK, rr.Code)

	var lead models.Request
	assert.NoError(t, db.Instance.First(&lead).Error)
	rr = tc.postForm(t, "/admin/requests/delete/"+fmt.Sprint(lead.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Request{}))
}

func TestCommentAndRatingAdminDelete(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)
	category := makeCategory(t, "Portrait")
	item := makeItem(t, category.ID, "One", "one.jpg", 0)
	comment := models.Comment{AuthorName: "Anna", Text: "Nice", PortfolioItemID: item.ID}
	assert.NoError(t, db.Instance.Create(&comment).Error)
	rating := models.Rating{Score: 4, UserIP: "203.0.113.5", PortfolioItemID: item.ID}
	assert.NoError(t, db.Instance.Create(&rating).Error)

	rr := tc.postForm(t, "/admin/comments/delete/"+fmt.Sprint(comment.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Comment{}))

	rr = tc.postForm(t, "/admin/ratings/delete/"+fmt.Sprint(rating.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.EqualValues(t, 0, countRows(t, &models.Rating{}))
}
