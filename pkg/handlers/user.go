package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"bookshelf/pkg/models"
	"bookshelf/pkg/repository"
	"bookshelf/pkg/validation"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
)

type UserHandler struct {
	repo *repository.Repository
}

func NewUserHandler(repo *repository.Repository) *UserHandler {
	return &UserHandler{repo: repo}
}

type createUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type updateUserRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// List returns every user without the password column.
func (h *UserHandler) List(c *gin.Context) {
	users, err := h.repo.Users()
	if err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	items := make([]gin.H, len(users))
	for i, u := range users {
		items[i] = gin.H{
			"id":        u.ID,
			"firstName": u.FirstName,
			"lastName":  u.LastName,
			"email":     u.Email,
		}
	}
	c.JSON(http.StatusOK, items)
}

// Create validates the payload, hashes the password and inserts the user.
// The created row is echoed back with the hash in place of the plaintext.
func (h *UserHandler) Create(c *gin.Context) {
	var req createUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "request body required")
		return
	}

	if err := validation.NewUser(req.FirstName, req.LastName, req.Email, req.Password, h.repo.EmailTaken); err != nil {
		if validation.IsViolation(err) {
			c.String(http.StatusBadRequest, err.Error())
		} else {
			c.String(http.StatusInternalServerError, err.Error())
		}
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		c.String(http.StatusInternalServerError, "failed to hash password")
		return
	}

	user := models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  string(hash),
	}
	if err := h.repo.CreateUser(&user); err != nil {
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusCreated, user)
}

// Update merges the provided fields over the stored user. Empty fields are
// left as they are.
func (h *UserHandler) Update(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "user not found")
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.String(http.StatusBadRequest, "request body required")
		return
	}

	if err := h.repo.UpdateUser(uint(id), req.FirstName, req.LastName, req.Email); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "User updated successfully")
}

// Delete removes the user and cascades to its books.
func (h *UserHandler) Delete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "user not found")
		return
	}

	if err := h.repo.DeleteUser(uint(id)); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.String(http.StatusOK, "User deleted successfully")
}

// WithBooks returns the user projected to a DTO with its books nested.
func (h *UserHandler) WithBooks(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.String(http.StatusNotFound, "user not found")
		return
	}

	user, err := h.repo.UserWithBooks(uint(id))
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			c.String(http.StatusNotFound, "user not found")
			return
		}
		c.String(http.StatusInternalServerError, err.Error())
		return
	}
	c.JSON(http.StatusOK, models.NewUserDTO(user))
}
