package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"gorm.io/gorm"

	"studio/auth"
	"studio/db"
	"studio/models"
	"studio/storage"
)

const portfolioPageSize = 12

type PortfolioItemInfo struct {
	ID           uint64   `json:"id"`
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	ImageURL     string   `json:"image_url"`
	ThumbURL     string   `json:"thumb_url"`
	CategoryID   uint64   `json:"category_id"`
	CategoryName string   `json:"category_name"`
	GalleryID    *uint64  `json:"gallery_id"`
	Tags         []string `json:"tags"`
	CreatedAt    int64    `json:"created_at"`
}

type CategoryInfo struct {
	ID          uint64 `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Duration    string `json:"duration"`
	Price       string `json:"price"`
	ImageURL    string `json:"image_url"`
}

func categoryInfo(c *models.Category) CategoryInfo {
	return CategoryInfo{
		ID:          c.ID,
		Name:        c.Name,
		Description: c.Description,
		Duration:    c.Duration,
		Price:       c.Price,
		ImageURL:    imageURL(c.ImageFilename),
	}
}

func portfolioItemInfo(item *models.PortfolioItem) PortfolioItemInfo {
	tags := []string{}
	for _, tag := range item.Tags {
		tags = append(tags, tag.Name)
	}
	return PortfolioItemInfo{
		ID:           item.ID,
		Title:        item.Title,
		Description:  item.Description,
		ImageURL:     imageURL(item.ImageFilename),
		ThumbURL:     imageURL(storage.ThumbName(item.ImageFilename)),
		CategoryID:   item.CategoryID,
		CategoryName: item.Category.Name,
		GalleryID:    item.GalleryID,
		Tags:         tags,
		CreatedAt:    item.CreatedAt,
	}
}

func Index(c *gin.Context) {
	var categories []models.Category
	if err := db.Instance.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	var items []models.PortfolioItem
	if err := db.Instance.Preload("Category").Preload("Tags").
		Order("created_at DESC").Limit(6).Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	featured := []CategoryInfo{}
	allCategories := []CategoryInfo{}
	for i := range categories {
		info := categoryInfo(&categories[i])
		allCategories = append(allCategories, info)
		if len(featured) < 3 {
			featured = append(featured, info)
		}
	}
	portfolio := []PortfolioItemInfo{}
	for i := range items {
		portfolio = append(portfolio, portfolioItemInfo(&items[i]))
	}
	c.JSON(http.StatusOK, gin.H{
		"categories":      featured,
		"all_categories":  allCategories, // quick-request form choices
		"portfolio_items": portfolio,
		"flashes":         auth.LoadSession(c).TakeFlashes(),
	})
}

func Services(c *gin.Context) {
	var categories []models.Category
	if err := db.Instance.Find(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []CategoryInfo{}
	for i := range categories {
		result = append(result, categoryInfo(&categories[i]))
	}
	c.JSON(http.StatusOK, gin.H{"categories": result})
}

// portfolioQuery applies the optional AND-combined filters. An absent
// filter means no constraint on that dimension.
func portfolioQuery(categoryID, galleryID uint64, tagName string) *gorm.DB {
	tx := db.Instance.Model(&models.PortfolioItem{})
	if categoryID > 0 {
		tx = tx.Where("portfolio_items.category_id = ?", categoryID)
	}
	if galleryID > 0 {
		tx = tx.Where("portfolio_items.gallery_id = ?", galleryID)
	}
	if tagName != "" {
		tx = tx.
			Joins("JOIN portfolio_item_tags ON portfolio_item_tags.portfolio_item_id = portfolio_items.id").
			Joins("JOIN photo_tags ON photo_tags.id = portfolio_item_tags.photo_tag_id").
			Where("photo_tags.name LIKE ?", "%"+tagName+"%").
			Distinct("portfolio_items.*")
	}
	return tx
}

func Portfolio(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	if page < 1 {
		page = 1
	}
	categoryID, _ := strconv.ParseUint(c.Query("category_id"), 10, 64)
	galleryID, _ := strconv.ParseUint(c.Query("gallery_id"), 10, 64)
	tagName := c.Query("tag")

	var total int64
	// The tag join can yield one row per matching tag; counting distinct ids
	// keeps the total right (COUNT(DISTINCT *) is not valid SQL)
	if err := portfolioQuery(categoryID, galleryID, tagName).
		Distinct("portfolio_items.id").Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	var items []models.PortfolioItem
	err := portfolioQuery(categoryID, galleryID, tagName).
		Preload("Category").Preload("Tags").
		Order("portfolio_items.created_at DESC").
		Limit(portfolioPageSize).
		Offset((page - 1) * portfolioPageSize).
		Find(&items).Error
	if err != nil {
		c.JSON(http.StatusInternalServerError, DBError2Response)
		return
	}
	result := []PortfolioItemInfo{}
	for i := range items {
		result = append(result, portfolioItemInfo(&items[i]))
	}
	pages := int((total + portfolioPageSize - 1) / portfolioPageSize)
	c.JSON(http.StatusOK, gin.H{
		"items":            result,
		"page":             page,
		"pages":            pages,
		"total":            total,
		"current_category": categoryID,
		"current_gallery":  galleryID,
		"current_tag":      tagName,
	})
}

type ReviewInfo struct {
	ID         uint64 `json:"id"`
	ClientName string `json:"client_name"`
	Text       string `json:"text"`
	Date       int64  `json:"date"`
}

func About(c *gin.Context) {
	var reviews []models.Review
	if err := db.Instance.Order("date DESC").Limit(6).Find(&reviews).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []ReviewInfo{}
	for _, r := range reviews {
		result = append(result, ReviewInfo{ID: r.ID, ClientName: r.ClientName, Text: r.Text, Date: r.Date})
	}
	c.JSON(http.StatusOK, gin.H{"reviews": result})
}

type ContactRequest struct {
	ClientName string `form:"client_name" binding:"required,min=2,max=100"`
	Message    string `form:"message" binding:"required"`
}

func Contacts(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"flashes": auth.LoadSession(c).TakeFlashes()})
}

func ContactsSubmit(c *gin.Context) {
	session := auth.LoadSession(c)
	r := ContactRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/contacts")
		return
	}
	lead := models.Request{
		ClientName: r.ClientName,
		Phone:      "",
		Message:    r.Message,
		CreatedAt:  time.Now().Unix(),
	}
	if err := db.Instance.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Thank you for your message! We will contact you shortly.")
	c.Redirect(http.StatusFound, "/contacts")
}

type QuickRequest struct {
	ClientName string `form:"client_name" binding:"required,min=2,max=100"`
	Phone      string `form:"phone" binding:"required,min=5,max=20"`
	CategoryID uint64 `form:"category_id" binding:"required"`
}

func SubmitRequest(c *gin.Context) {
	session := auth.LoadSession(c)
	r := QuickRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	var category models.Category
	if db.Instance.First(&category, r.CategoryID).Error != nil {
		session.Flash("error", "Please fill in all required fields.")
		c.Redirect(http.StatusFound, "/")
		return
	}
	lead := models.Request{
		ClientName: r.ClientName,
		Phone:      r.Phone,
		CategoryID: &category.ID,
		CreatedAt:  time.Now().Unix(),
	}
	if err := db.Instance.Create(&lead).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	session.Flash("success", "Your request has been sent! We will contact you shortly.")
	c.Redirect(http.StatusFound, "/")
}

type FilterItemInfo struct {
	ID           uint64 `json:"id"`
	Title        string `json:"title"`
	ImageURL     string `json:"image_url"`
	CategoryName string `json:"category_name"`
}

// PortfolioFilterAPI backs the front-end category filter. Category id 0
// means unfiltered.
func PortfolioFilterAPI(c *gin.Context) {
	categoryID, err := strconv.ParseUint(c.Param("category_id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	tx := db.Instance.Preload("Category")
	if categoryID > 0 {
		tx = tx.Where("category_id = ?", categoryID)
	}
	var items []models.PortfolioItem
	if err := tx.Find(&items).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	result := []FilterItemInfo{}
	for _, item := range items {
		result = append(result, FilterItemInfo{
			ID:           item.ID,
			Title:        item.Title,
			ImageURL:     imageURL(item.ImageFilename),
			CategoryName: item.Category.Name,
		})
	}
	c.JSON(http.StatusOK, result)
}

type CommentRequest struct {
	AuthorName string `form:"author_name" binding:"required,max=100"`
	Text       string `form:"text" binding:"required,max=500"`
}

func CommentCreate(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var item models.PortfolioItem
	if db.Instance.First(&item, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	r := CommentRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	comment := models.Comment{
		AuthorName:      r.AuthorName,
		Text:            r.Text,
		PortfolioItemID: item.ID,
		CreatedAt:       time.Now().Unix(),
	}
	if err := db.Instance.Create(&comment).Error; err != nil {
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "id": comment.ID})
}

type RateRequest struct {
	Score int `form:"score" binding:"required,min=1,max=5"`
}

// One vote per client address per item.
func RateItem(c *gin.Context) {
	id, ok := idParam(c)
	if !ok {
		return
	}
	var item models.PortfolioItem
	if db.Instance.First(&item, id).Error != nil {
		c.JSON(http.StatusNotFound, NotFoundResponse)
		return
	}
	r := RateRequest{}
	if err := c.ShouldBindWith(&r, binding.Form); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	rating := models.Rating{
		PortfolioItemID: item.ID,
		UserIP:          c.ClientIP(),
	}
	result := db.Instance.Where(rating).Attrs(models.Rating{Score: r.Score}).FirstOrCreate(&rating)
	if result.Error != nil {
		// Two concurrent first votes can race past the lookup into the
		// unique index; the loser is just another duplicate
		if isDuplicateKey(result.Error) {
			c.JSON(http.StatusConflict, gin.H{"error": "already rated"})
			return
		}
		c.JSON(http.StatusInternalServerError, DBError1Response)
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusConflict, gin.H{"error": "already rated"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"error": "", "score": rating.Score})
}

// ServeUpload streams files from the uploads area.
func ServeUpload(c *gin.Context) {
	path := c.Param("filepath")
	if len(path) > 0 && path[0] == '/' {
		path = path[1:]
	}
	storage.Instance.Serve(path, c.Request, c.Writer)
}
