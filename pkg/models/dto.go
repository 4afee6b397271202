package models

// UserDTO is the response shape for user reads. The password column never
// appears here, no matter what the row holds.
type UserDTO struct {
	ID        uint      `json:"id"`
	FirstName string    `json:"firstName"`
	LastName  string    `json:"lastName"`
	Email     string    `json:"email"`
	Books     []BookDTO `json:"books"`
}

// BookDTO is the response shape for book reads; the userId back-reference is
// dropped because the owning user is already implied by the request path.
type BookDTO struct {
	ID              uint   `json:"id"`
	Title           string `json:"title"`
	Author          string `json:"author"`
	PublicationYear int    `json:"publicationYear"`
	Rating          int    `json:"rating"`
	Review          string `json:"review"`
}

func NewBookDTO(b Book) BookDTO {
	return BookDTO{
		ID:              b.ID,
		Title:           b.Title,
		Author:          b.Author,
		PublicationYear: b.PublicationYear,
		Rating:          b.Rating,
		Review:          b.Review,
	}
}

// NewBookDTOs always returns a non-nil slice so an empty collection
// serializes as [] rather than null.
func NewBookDTOs(books []Book) []BookDTO {
	items := make([]BookDTO, len(books))
	for i, b := range books {
		items[i] = NewBookDTO(b)
	}
	return items
}

func NewUserDTO(u User) UserDTO {
	return UserDTO{
		ID:        u.ID,
		FirstName: u.FirstName,
		LastName:  u.LastName,
		Email:     u.Email,
		Books:     NewBookDTOs(u.Books),
	}
}
