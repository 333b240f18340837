package models

// Request is an inbound lead from the quick-request or contact form.
type Request struct {
	ID         uint64 `gorm:"primaryKey"`
	ClientName string `gorm:"type:varchar(100);not null"`
	Phone      string `gorm:"type:varchar(20);not null"`
	CategoryID *uint64
	Category   *Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;"`
	Message    string    `gorm:"type:text"`
	CreatedAt  int64     `gorm:"index"`
}
