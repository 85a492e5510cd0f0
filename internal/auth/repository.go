package auth

import (
	"gorm.io/gorm"
)

type Repository interface {
	Create(user *User) error
	FindByEmail(email string) (*User, error)
	FindByID(userID uint) (*User, error)
	Update(user *User) error
}

type repository struct{ db *gorm.DB }

func NewRepository(db *gorm.DB) Repository {
	return &repository{db}
}

func (r *repository) Create(user *User) error {
	return r.db.Create(user).Error
}

func (r *repository) FindByEmail(email string) (*User, error) {
	var u User
	err := r.db.Where("email = ?", email).First(&u).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) FindByID(userID uint) (*User, error) {
	var u User
	err := r.db.First(&u, userID).Error
	if err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *repository) Update(user *User) error {
	return r.db.Save(user).Error
}
