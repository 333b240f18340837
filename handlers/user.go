package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"

	"studio/auth"
	"studio/config"
	"studio/db"
	"studio/models"
)

// Process-wide login limiter (5 attempts/minute per client address).
var loginLimiter = auth.NewLoginLimiter(5, time.Minute)

type LoginRequest struct {
	Username string `form:"username" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type RegisterRequest struct {
	Username        string `form:"username" binding:"required,min=4,max=20"`
	Password        string `form:"password" binding:"required,min=8,password"`
	ConfirmPassword string `form:"confirm_password" binding:"required,eqfield=Password"`
}

func AdminLoginForm(c *gin.Context) {
	session := auth.LoadSession(c)
	c.JSON(http.StatusOK, gin.H{
		"logged_in":     session.Admin().ID != 0,
		"failed_logins": session.FailedLogins(c.ClientIP()),
		"flashes":       session.TakeFlashes(),
	})
}

func AdminLogin(c *gin.Context) {
	session := auth.LoadSession(c)
	if config.LOGIN_RATE_LIMIT && !loginLimiter.Allow(c.ClientIP()) {
		c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many login attempts"})
		return
	}
	r := LoginRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Invalid username or password")
		c.Redirect(http.StatusFound, loginPath)
		return
	}
	user, success := models.UserLogin(r.Username, r.Password)
	if !success {
		session.RecordFailedLogin(c.ClientIP())
		session.Flash("error", "Invalid username or password")
		c.Redirect(http.StatusFound, loginPath)
		return
	}
	session.ClearFailedLogins(c.ClientIP())
	session.LoginAdmin(user.ID)
	c.Redirect(http.StatusFound, "/admin/dashboard")
}

func RegisterForm(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flashes": auth.LoadSession(c).TakeFlashes()})
}

func RegisterSubmit(c *gin.Context) {
	session := auth.LoadSession(c)
	r := RegisterRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Registration failed: "+err.Error())
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if models.UsernameExists(r.Username) {
		session.Flash("error", "This username is already taken.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	if _, err := models.UserCreate(r.Username, r.Password); err != nil {
		// Concurrent registration can still trip the unique index
		session.Flash("error", "This username is already taken.")
		c.Redirect(http.StatusFound, "/register")
		return
	}
	session.Flash("success", "Registration successful! You can now log in.")
	c.Redirect(http.StatusFound, loginPath)
}

func AdminLogout(c *gin.Context, admin *models.User) {
	session := auth.LoadSession(c)
	session.Logout()
	session.Flash("success", "You have been logged out.")
	c.Redirect(http.StatusFound, loginPath)
}

func AdminDashboard(c *gin.Context, admin *models.User) {
	var totalRequests, totalPortfolio, totalReviews int64
	if db.Instance.Model(&models.Request{}).Count(&totalRequests).Error != nil ||
		db.Instance.Model(&models.PortfolioItem{}).Count(&totalPortfolio).Error != nil ||
		db.Instance.Model(&models.Review{}).Count(&totalReviews).Error != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	var recent []models.Request
	if err := db.Instance.Preload("Category").Order("created_at DESC").Limit(5).Find(&recent).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	recentInfo := []RequestInfo{}
	for i := range recent {
		recentInfo = append(recentInfo, requestInfo(&recent[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"total_requests":  totalRequests,
		"total_portfolio": totalPortfolio,
		"total_reviews":   totalReviews,
		"recent_requests": recentInfo,
		"flashes":         auth.LoadSession(c).TakeFlashes(),
	})
}
