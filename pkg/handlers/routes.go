package handlers

import (
	"bookshelf/pkg/repository"

	"github.com/gin-gonic/gin"
)

// Register wires the user and book endpoints onto the router.
func Register(r *gin.Engine, repo *repository.Repository) {
	users := NewUserHandler(repo)
	books := NewBookHandler(repo)

	u := r.Group("/api/user")
	u.GET("", users.List)
	u.POST("", users.Create)
	u.PUT("/:id", users.Update)
	u.DELETE("/:id", users.Delete)
	u.GET("/:id/with-books", users.WithBooks)

	b := r.Group("/api/book")
	b.POST("", books.Create)
	b.GET("/user/:userId", books.ListByUser)
	b.DELETE("/:bookId/user/:userId", books.Delete)
	b.PATCH("/:bookId", books.UpdateReview)
	b.GET("/:id", books.Get)
}
