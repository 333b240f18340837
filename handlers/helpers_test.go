package handlers

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"studio/config"
	"studio/db"
	"studio/forms"
	"studio/models"
	"studio/storage"
)

// testClient drives the handler stack through httptest, carrying the
// session cookie between requests.
type testClient struct {
	router  *gin.Engine
	cookies []*http.Cookie
	remote  string
}

func setupTest(t *testing.T) *testClient {
	t.Helper()
	gin.SetMode(gin.TestMode)
	config.LOGIN_RATE_LIMIT = false // exercised separately in auth tests

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	instance, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	db.Instance = instance
	models.Init()
	storage.Instance = storage.NewDiskStorage(t.TempDir())
	forms.Init()

	router := gin.New()
	router.Use(sessions.Sessions("token", cookie.NewStore([]byte("test-session-key"))))
	Register(router)
	return &testClient{router: router, remote: "198.51.100.7:1234"}
}

func (tc *testClient) request(t *testing.T, method, path, contentType string, body *bytes.Buffer) *httptest.ResponseRecorder {
	t.Helper()
	if body == nil {
		body = &bytes.Buffer{}
	}
	req := httptest.NewRequest(method, path, body)
	req.RemoteAddr = tc.remote
	if contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}
	for _, c := range tc.cookies {
		req.AddCookie(c)
	}
	rr := httptest.NewRecorder()
	tc.router.ServeHTTP(rr, req)
	// A handler can save the session more than once per request; keep only
	// the last Set-Cookie per name, like a browser jar would
	for _, got := range rr.Result().Cookies() {
		replaced := false
		for i := range tc.cookies {
			if tc.cookies[i].Name == got.Name {
				tc.cookies[i] = got
				replaced = true
			}
		}
		if !replaced {
			tc.cookies = append(tc.cookies, got)
		}
	}
	return rr
}

func (tc *testClient) get(t *testing.T, path string) *httptest.ResponseRecorder {
	return tc.request(t, http.MethodGet, path, "", nil)
}

func (tc *testClient) postForm(t *testing.T, path string, form url.Values) *httptest.ResponseRecorder {
	body := bytes.NewBufferString(form.Encode())
	return tc.request(t, http.MethodPost, path, "application/x-www-form-urlencoded", body)
}

// postMultipart posts form fields plus an optional file under the "image"
// field. The file content doesn't have to be a decodable image, a failed
// thumbnail is tolerated.
func (tc *testClient) postMultipart(t *testing.T, path string, fields map[string]string, imageName string, imageContent []byte) *httptest.ResponseRecorder {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	for key, value := range fields {
		_ = writer.WriteField(key, value)
	}
	if imageName != "" {
		part, err := writer.CreateFormFile("image", imageName)
		if err != nil {
			t.Fatalf("multipart: %v", err)
		}
		_, _ = part.Write(imageContent)
	}
	writer.Close()
	return tc.request(t, http.MethodPost, path, writer.FormDataContentType(), body)
}

func (tc *testClient) login(t *testing.T) *models.User {
	t.Helper()
	user, err := models.UserCreate("admin", "Sup3r$ecret")
	assert.NoError(t, err)
	rr := tc.postForm(t, "/admin", url.Values{
		"username": {"admin"},
		"password": {"Sup3r$ecret"},
	})
	assert.Equal(t, http.StatusFound, rr.Code)
	assert.Equal(t, "/admin/dashboard", rr.Header().Get("Location"))
	return &user
}

func makeCategory(t *testing.T, name string) *models.Category {
	t.Helper()
	category := models.Category{Name: name, Description: name + " sessions"}
	assert.NoError(t, db.Instance.Create(&category).Error)
	return &category
}

func makeItem(t *testing.T, categoryID uint64, title, filename string, createdAt int64) *models.PortfolioItem {
	t.Helper()
	if createdAt == 0 {
		createdAt = time.Now().Unix()
	}
	item := models.PortfolioItem{
		Title:         title,
		CategoryID:    categoryID,
		ImageFilename: filename,
		CreatedAt:     createdAt,
	}
	assert.NoError(t, db.Instance.Create(&item).Error)
	return &item
}

func writeStoredFile(t *testing.T, name string) {
	t.Helper()
	_, err := storage.Instance.Save(name, bytes.NewBufferString("image-bytes"))
	assert.NoError(t, err)
}

func countRows(t *testing.T, model any) int64 {
	t.Helper()
	var count int64
	assert.NoError(t, db.Instance.Model(model).Count(&count).Error)
	return count
}
