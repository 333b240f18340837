package handlers

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"studio/db"
	"studio/models"
	"studio/storage"
)

func TestCategoryAddAndEdit(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)

	rr := tc.postMultipart(t, "/admin/categories/add", map[string]string{
		"name":        "Portrait",
		"description": "Studio portrait sessions",
		"duration":    "1-2 hours",
		"price":       "from $100",
	}, "portrait.jpg", []byte("jpeg-bytes"))
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/admin/categories", rr.Header().Get("Location"))

	var category models.Category
	assert.NoError(t, db.Instance.First(&category).Error)
	assert.Equal(t, "Portrait", category.Name)
	assert.True(t, storage.Instance.Exists(category.ImageFilename))
	oldFile := category.ImageFilename

	rr = tc.postMultipart(t, "/admin/categories/edit/"+fmt.Sprint(category.ID), map[string]string{
		"name":        "Portrait session",
		"description": "Studio portrait sessions",
	}, "better.jpg", []byte("better-jpeg"))
	assert.Equal(t, http.StatusFound, rr.Code)

	assert.NoError(t, db.Instance.First(&category, category.ID).Error)
	assert.Equal(t, "Portrait session", category.Name)
	assert.NotEqual(t, oldFile, category.ImageFilename)
	assert.False(t, storage.Instance.Exists(oldFile), "replaced image removed from disk")
}

func TestCategoryValidationAbortsMutation(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)

	// Missing required description
	rr := tc.postMultipart(t, "/admin/categories/add", map[string]string{
		"name": "Portrait",
	}, "", nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/admin/categories", rr.Header().Get("Location"))
	assert.EqualValues(t, 0, countRows(t, &models.Category{}))
}

func TestCategoryDeleteCascades(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)
	category := makeCategory(t, "Portrait")
	keep := makeCategory(t, "Wedding")

	first := makeItem(t, category.ID, "One", "one.jpg", 0)
	second := makeItem(t, category.ID, "Two", "two.jpg", 0)
	kept := makeItem(t, keep.ID, "Keep", "keep.jpg", 0)
	for _, name := range []string{"one.jpg", "two.jpg", "keep.jpg"} {
		writeStoredFile(t, name)
	}
	assert.NoError(t, db.Instance.Create(&models.Comment{
		AuthorName: "Anna", Text: "Nice", PortfolioItemID: first.ID,
	}).Error)

	rr := tc.postForm(t, "/admin/categories/delete/"+fmt.Sprint(category.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)

	// No dangling references to the deleted category
	var remaining []models.PortfolioItem
	assert.NoError(t, db.Instance.Find(&remaining).Error)
	assert.Len(t, remaining, 1)
	assert.Equal(t, kept.ID, remaining[0].ID)
	assert.EqualValues(t, 0, countRows(t, &models.Comment{}))

	assert.False(t, storage.Instance.Exists("one.jpg"))
	assert.False(t, storage.Instance.Exists("two.jpg"))
	assert.True(t, storage.Instance.Exists("keep.jpg"))
	_ = second
}

func TestCategoryDeleteMissingFileTolerated(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)
	category := makeCategory(t, "Portrait")
	makeItem(t, category.ID, "One", "never-written.jpg", 0)

	rr := tc.postForm(t, "/admin/categories/delete/"+fmt.Sprint(category.ID), nil)
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.EqualValues(t, 0, countRows(t, &models.PortfolioItem{}))
}

func TestCategoryEditNotFound(t *testing.T) {
	tc := setupTest(t)
	tc.login(t)

	rr := tc.get(t, "/admin/categories/edit/12345")
	assert.Equal(t, http.StatusNotFound, rr.Code)
}
