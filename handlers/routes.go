package handlers

import (
	"github.com/gin-gonic/gin"

	"studio/auth"
)

// Register wires the public and admin route tables.
func Register(router *gin.Engine) {
	// Public pages
	router.GET("/", Index)
	router.GET("/services", Services)
	router.GET("/portfolio", Portfolio)
	router.GET("/about", About)
	router.GET("/contacts", Contacts)
	router.POST("/contacts", ContactsSubmit)
	router.POST("/submit_request", SubmitRequest)
	router.POST("/portfolio/:id/comments", CommentCreate)
	router.POST("/portfolio/:id/rate", RateItem)
	router.GET("/api/portfolio/filter/:category_id", PortfolioFilterAPI)
	router.GET("/uploads/*filepath", ServeUpload)

	// Login and registration
	router.GET(loginPath, AdminLoginForm)
	router.POST(loginPath, AdminLogin)
	router.GET("/register", RegisterForm)
	router.POST("/register", RegisterSubmit)

	// Back-office, gated by the session principal
	authRouter := &auth.Router{Base: router, LoginPath: loginPath}
	authRouter.GET("/admin/logout", AdminLogout)
	authRouter.GET("/admin/dashboard", AdminDashboard)

	authRouter.GET("/admin/categories", CategoryList)
	authRouter.POST("/admin/categories/add", CategoryAdd)
	authRouter.GET("/admin/categories/edit/:id", CategoryEditForm)
	authRouter.POST("/admin/categories/edit/:id", CategoryEdit)
	authRouter.POST("/admin/categories/delete/:id", CategoryDelete)

	authRouter.GET("/admin/portfolio", AdminPortfolioList)
	authRouter.POST("/admin/portfolio/add", AdminPortfolioAdd)
	authRouter.GET("/admin/portfolio/edit/:id", AdminPortfolioEditForm)
	authRouter.POST("/admin/portfolio/edit/:id", AdminPortfolioEdit)
	authRouter.POST("/admin/portfolio/delete/:id", AdminPortfolioDelete)

	authRouter.GET("/admin/galleries", GalleryList)
	authRouter.POST("/admin/galleries/add", GalleryAdd)
	authRouter.GET("/admin/galleries/edit/:id", GalleryEditForm)
	authRouter.POST("/admin/galleries/edit/:id", GalleryEdit)
	authRouter.POST("/admin/galleries/delete/:id", GalleryDelete)

	authRouter.GET("/admin/tags", TagList)
	authRouter.POST("/admin/tags/add", TagAdd)
	authRouter.GET("/admin/tags/edit/:id", TagEditForm)
	authRouter.POST("/admin/tags/edit/:id", TagEdit)
	authRouter.POST("/admin/tags/delete/:id", TagDelete)

	authRouter.GET("/admin/reviews", AdminReviewList)
	authRouter.POST("/admin/reviews/add", ReviewAdd)
	authRouter.GET("/admin/reviews/edit/:id", ReviewEditForm)
	authRouter.POST("/admin/reviews/edit/:id", ReviewEdit)
	authRouter.POST("/admin/reviews/delete/:id", ReviewDelete)

	authRouter.GET("/admin/comments", AdminCommentList)
	authRouter.POST("/admin/comments/delete/:id", CommentDelete)
	authRouter.GET("/admin/ratings", AdminRatingList)
	authRouter.POST("/admin/ratings/delete/:id", RatingDelete)
	authRouter.GET("/admin/requests", AdminRequestList)
	authRouter.POST("/admin/requests/delete/:id", RequestDelete)
}
