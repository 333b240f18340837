package models

type Review struct {
	ID         uint64 `gorm:"primaryKey"`
	ClientName string `gorm:"type:varchar(100);not null"`
	Text       string `gorm:"type:text;not null"`
	Date       int64  `gorm:"index"`
}
