package models

import (
	"studio/db"
)

func Init() {
	db.Instance.AutoMigrate(&User{})
	db.Instance.AutoMigrate(&Category{})
	db.Instance.AutoMigrate(&Gallery{})
	db.Instance.AutoMigrate(&PhotoTag{})
	db.Instance.AutoMigrate(&PortfolioItem{})
	db.Instance.AutoMigrate(&Review{})
	db.Instance.AutoMigrate(&Comment{})
	db.Instance.AutoMigrate(&Rating{})
	db.Instance.AutoMigrate(&Request{})
}
