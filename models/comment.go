package models

type Comment struct {
	ID              uint64 `gorm:"primaryKey"`
	AuthorName      string `gorm:"type:varchar(100);not null"`
	Text            string `gorm:"type:varchar(500);not null"`
	CreatedAt       int64
	PortfolioItemID uint64        `gorm:"not null;index"`
	PortfolioItem   PortfolioItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
