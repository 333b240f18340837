package models

// One rating per client address per item, backed by the unique index.
type Rating struct {
	ID              uint64        `gorm:"primaryKey"`
	Score           int           `gorm:"not null"` // 1-5
	UserIP          string        `gorm:"type:varchar(45);index:uniq_item_ip,unique,priority:2"`
	PortfolioItemID uint64        `gorm:"not null;index:uniq_item_ip,unique,priority:1"`
	PortfolioItem   PortfolioItem `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
}
