package models

import (
	"strings"

	"gorm.io/gorm"
)

// PhotoTag names are stored lower-cased; uniqueness is on the normalized name.
type PhotoTag struct {
	ID   uint64 `gorm:"primaryKey"`
	Name string `gorm:"type:varchar(50);index:uniq_tag_name,unique"`
}

func FindOrCreateTag(tx *gorm.DB, name string) (tag PhotoTag, err error) {
	name = strings.ToLower(strings.TrimSpace(name))
	err = tx.Where("name = ?", name).FirstOrCreate(&tag, PhotoTag{Name: name}).Error
	return
}
