package models

import (
	"time"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	FirstName string    `gorm:"size:80;not null" json:"firstName"`
	LastName  string    `gorm:"size:80;not null" json:"lastName"`
	Email     string    `gorm:"size:120;not null;uniqueIndex" json:"email"`
	Password  string    `gorm:"not null" json:"password"`
	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`

	Books []Book `gorm:"foreignKey:UserID" json:"-"`
}

type Book struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Title           string    `gorm:"not null" json:"title"`
	Author          string    `gorm:"not null" json:"author"`
	PublicationYear int       `json:"publicationYear"`
	Rating          int       `json:"rating"`
	Review          string    `json:"review"`
	UserID          *uint     `json:"userId"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

// AddBook appends a book to the user's loaded collection. It only touches the
// in-memory slice; persisting the relation is the repository's job.
func (u *User) AddBook(b Book) {
	u.Books = append(u.Books, b)
}
