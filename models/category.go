package models

type Category struct {
	ID            uint64 `gorm:"primaryKey"`
	Name          string `gorm:"type:varchar(100);not null"`
	Description   string `gorm:"type:text;not null"`
	Duration      string `gorm:"type:varchar(50)"`
	Price         string `gorm:"type:varchar(50)"`
	ImageFilename string `gorm:"type:varchar(200)"`
}
