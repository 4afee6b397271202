package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAddBookAppends(t *testing.T) {
	var u User
	assert.Nil(t, u.Books)

	u.AddBook(Book{Title: "T1"})
	u.AddBook(Book{Title: "T2"})
	assert.Len(t, u.Books, 2)
	assert.Equal(t, "T2", u.Books[1].Title)
}

func TestUserDTOProjection(t *testing.T) {
	owner := uint(1)
	u := User{
		ID:        1,
		FirstName: "Ann",
		LastName:  "Lee",
		Email:     "a@x.com",
		Password:  "secret-hash",
		Books: []Book{
			{ID: 2, Title: "T", Author: "A", PublicationYear: 2020, Rating: 3, Review: "ok", UserID: &owner},
		},
	}

	dto := NewUserDTO(u)
	assert.Equal(t, "Ann", dto.FirstName)
	assert.Len(t, dto.Books, 1)
	assert.Equal(t, 3, dto.Books[0].Rating)

	raw, err := json.Marshal(dto)
	assert.NoError(t, err)
	assert.NotContains(t, string(raw), "password")
	assert.NotContains(t, string(raw), "secret-hash")
	assert.NotContains(t, string(raw), "userId")
}

func TestEmptyBooksSerializeAsArray(t *testing.T) {
	dto := NewUserDTO(User{ID: 1, FirstName: "Ann"})

	raw, err := json.Marshal(dto)
	assert.NoError(t, err)
	assert.Contains(t, string(raw), `"books":[]`)
}
