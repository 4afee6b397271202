package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/pkg/models"
	"bookshelf/pkg/repository"
	"bookshelf/pkg/validation"

	"github.com/gin-gonic/gin"
)

type BookHandler struct {
	repo *repository.Repository
}

func NewBookHandler(repo *repository.Repository) *BookHandler {
	return &BookHandler{repo: repo}
}

type bookRequest struct {
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publicationYear"`
	Rating          int    `json:"rating"`
	Review          string `json:"review"`
}

type reviewRequest struct {
	Review string `json:"review"`
	Rating int    `json:"rating"`
}

// Create adds a book to the collection of the user named in the query.
// The rating is accepted as-is here; bounds apply only on review updates.
func (h *BookHandler) Create(c *gin.Context) {
	userID, err := strconv.Atoi(c.Query("userId"))
	if err != nil {
		c.String(http.StatusBadRequest, "userId is required")
		return
	}

	var req bookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "request body required")
		return
	}

	book := models.Book{
		Title:           req.Title,
		Author:          req.Author,
		PublicationYear: req.PublicationYear,
		Rating:          req.Rating,
		Review:          req.Review,
	}
	if err := h.repo.AddBook(&book, uint(userID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "Book added successfully")
}

// ListByUser returns the user's books projected to DTOs.
func (h *BookHandler) ListByUser(c *gin.Context) {
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.String(http.StatusNotFound, "user not found")
		return
	}

	books, err := h.repo.BooksByUser(uint(userID))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.NewBookDTOs(books))
}

// Delete removes a book, but only when it belongs to the named user.
func (h *BookHandler) Delete(c *gin.Context) {
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		c.String(http.StatusNotFound, "book not found")
		return
	}
	userID, err := strconv.Atoi(c.Param("userId"))
	if err != nil {
		c.String(http.StatusNotFound, "book not found")
		return
	}

	if err := h.repo.DeleteBook(uint(bookID), uint(userID)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "book not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "Book deleted successfully")
}

// UpdateReview overwrites a book's review and rating.
func (h *BookHandler) UpdateReview(c *gin.Context) {
	bookID, err := strconv.Atoi(c.Param("bookId"))
	if err != nil {
		c.String(http.StatusNotFound, "book not found")
		return
	}

	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "request body required")
		return
	}

	if err := h.repo.UpdateBookReview(uint(bookID), req.Review, req.Rating); err != nil {
		switch {
		case errors.Is(err, validation.ErrRatingOutOfRange):
			c.String(http.StatusBadRequest, err.Error())
		case errors.Is(err, repository.ErrNotFound):
			c.String(http.StatusNotFound, "book not found")
		default:
			c.String(http.StatusInternalServerError, err.Error())
		}
		return
	}
	c.String(http.StatusOK, "Book review updated successfully")
}

// Get returns the full stored book row.
func (h *BookHandler) Get(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "book not found")
		return
	}

	book, err := h.repo.BookByID(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "book not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, book)
}
