package models

import (
	"studio/db"

	"golang.org/x/crypto/bcrypt"
)

type User struct {
	ID           uint64 `gorm:"primaryKey"`
	CreatedAt    int64
	Username     string `gorm:"type:varchar(80);index:uniq_username,unique"`
	PasswordHash string `gorm:"type:varchar(120)"`
	IsAdmin      bool   `gorm:"not null;default:false"`
	Galleries    []Gallery
}

func (u *User) SetPassword(plainTextPassword string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plainTextPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

func (u *User) CheckPassword(plainTextPassword string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plainTextPassword)) == nil
}

func UserCreate(username, plainTextPassword string) (u User, err error) {
	u.Username = username
	if err = u.SetPassword(plainTextPassword); err != nil {
		return
	}
	return u, db.Instance.Create(&u).Error
}

func UserLogin(username, plainTextPassword string) (u User, success bool) {
	result := db.Instance.First(&u, "username = ?", username)
	if result.Error != nil {
		return User{}, false
	}
	if !u.CheckPassword(plainTextPassword) {
		return User{}, false
	}
	return u, true
}

func UsernameExists(username string) bool {
	var count int64
	db.Instance.Model(&User{}).Where("username = ?", username).Count(&count)
	return count > 0
}
