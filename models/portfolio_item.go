package models

import (
	"gorm.io/gorm"
)

type PortfolioItem struct {
	ID            uint64     `gorm:"primaryKey"`
	Title         string     `gorm:"type:varchar(200);not null"`
	Description   string     `gorm:"type:varchar(500)"`
	CategoryID    uint64     `gorm:"not null;index"`
	Category      Category   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;"`
	GalleryID     *uint64    `gorm:"index"`
	Gallery       *Gallery   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	ImageFilename string     `gorm:"type:varchar(200);not null"`
	CreatedAt     int64      `gorm:"index"`
	Tags          []PhotoTag `gorm:"many2many:portfolio_item_tags;"`
}

// ReplaceTags clears the item's tag set and rebuilds it from the given
// normalized names, creating tags that don't exist yet. Full replace, not
// a merge.
func (item *PortfolioItem) ReplaceTags(tx *gorm.DB, names []string) error {
	tags := make([]PhotoTag, 0, len(names))
	for _, name := range names {
		tag, err := FindOrCreateTag(tx, name)
		if err != nil {
			return err
		}
		tags = append(tags, tag)
	}
	return tx.Model(item).Association("Tags").Replace(tags)
}
