package db

import (
	"context"
	"errors"

	"library/models"
)

const INDEX_NAME = "books"

var ErrBookNotFound = errors.New("book not found")

// Catalog stores book metadata keyed by ISBN. Stock levels are not part of it.
type Catalog interface {
	Index(ctx context.Context, book *models.Book) error
	GetByIsbn(ctx context.Context, isbn string) (*models.Book, error)
	Search(ctx context.Context, title, authorName, genre string) ([]*models.Book, error)
}
