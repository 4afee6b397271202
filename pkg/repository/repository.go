// Package repository is the data-access layer over the relational store.
// Every operation works against an explicitly injected handle; there is no
// package-level database state.
package repository

import (
	"errors"

	"bookshelf/pkg/models"
	"bookshelf/pkg/validation"

	"gorm.io/gorm"
)

// ErrNotFound is returned when a referenced user or book does not exist.
var ErrNotFound = errors.New("record not found")

type Repository struct {
	db *gorm.DB
}

func New(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Users() ([]models.User, error) {
	var users []models.User
	if err := r.db.Find(&users).Error; err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser inserts the user and lets the store assign the id.
func (r *Repository) CreateUser(u *models.User) error {
	return r.db.Create(u).Error
}

func (r *Repository) UserByID(id uint) (models.User, error) {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return models.User{}, asNotFound(err)
	}
	return user, nil
}

// UserWithBooks loads the user together with its owned books.
func (r *Repository) UserWithBooks(id uint) (models.User, error) {
	var user models.User
	if err := r.db.Preload("Books").First(&user, id).Error; err != nil {
		return models.User{}, asNotFound(err)
	}
	return user, nil
}

// EmailTaken reports whether any user already has the given address.
func (r *Repository) EmailTaken(email string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.User{}).Where("email = ?", email).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// UpdateUser merges the non-empty fields over the stored row. Empty strings
// leave the stored value untouched; there is no way to clear a field here.
func (r *Repository) UpdateUser(id uint, firstName, lastName, email string) error {
	var user models.User
	if err := r.db.First(&user, id).Error; err != nil {
		return asNotFound(err)
	}
	if firstName != "" {
		user.FirstName = firstName
	}
	if lastName != "" {
		user.LastName = lastName
	}
	if email != "" {
		user.Email = email
	}
	return r.db.Save(&user).Error
}

// DeleteUser removes the user and all books referencing it. Both deletes run
// in one transaction so a failure leaves the ownership invariant intact.
func (r *Repository) DeleteUser(id uint) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			return asNotFound(err)
		}
		if err := tx.Where("user_id = ?", id).Delete(&models.Book{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}

// BooksByUser returns the user's books, failing if the user itself is gone.
func (r *Repository) BooksByUser(userID uint) ([]models.Book, error) {
	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return nil, asNotFound(err)
	}
	var books []models.Book
	if err := r.db.Where("user_id = ?", userID).Find(&books).Error; err != nil {
		return nil, err
	}
	return books, nil
}

// AddBook persists the book as owned by the given user.
func (r *Repository) AddBook(b *models.Book, userID uint) error {
	var user models.User
	if err := r.db.First(&user, userID).Error; err != nil {
		return asNotFound(err)
	}
	b.UserID = &user.ID
	return r.db.Create(b).Error
}

func (r *Repository) BookByID(id uint) (models.Book, error) {
	var book models.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return models.Book{}, asNotFound(err)
	}
	return book, nil
}

// BookByIDForUser looks the book up scoped to its owning user.
func (r *Repository) BookByIDForUser(id, userID uint) (models.Book, error) {
	var book models.Book
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&book).Error; err != nil {
		return models.Book{}, asNotFound(err)
	}
	return book, nil
}

// UpdateBookReview overwrites the book's review and rating. The rating bounds
// are enforced here and nowhere on the creation path.
func (r *Repository) UpdateBookReview(id uint, review string, rating int) error {
	if err := validation.Rating(rating); err != nil {
		return err
	}
	var book models.Book
	if err := r.db.First(&book, id).Error; err != nil {
		return asNotFound(err)
	}
	book.Review = review
	book.Rating = rating
	return r.db.Save(&book).Error
}

// DeleteBook removes the book only when it matches both the id and the owner.
func (r *Repository) DeleteBook(id, userID uint) error {
	book, err := r.BookByIDForUser(id, userID)
	if err != nil {
		return err
	}
	return r.db.Delete(&book).Error
}

func asNotFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
