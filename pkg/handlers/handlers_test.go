package handlers

import (
	"testing"

	"bookshelf/pkg/models"
	"bookshelf/pkg/repository"

	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupRouter(t *testing.T) (*gin.Engine, *gorm.DB) {
	gin.SetMode(gin.TestMode)
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect test database: %v", err)
	}
	if err := db.AutoMigrate(&models.User{}, &models.Book{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}
	r := gin.New()
	Register(r, repository.New(db))
	return r, db
}

func seedUser(t *testing.T, db *gorm.DB, email string) models.User {
	user := models.User{
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     email,
		Password:  "hashed",
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to seed user: %v", err)
	}
	return user
}

func seedBook(t *testing.T, db *gorm.DB, userID uint, title string) models.Book {
	book := models.Book{
		Title:           title,
		Author:          "Author",
		PublicationYear: 2020,
		UserID:          &userID,
	}
	if err := db.Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book: %v", err)
	}
	return book
}
