package db

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"library/models"
)

// MemoryCatalog is used when no Elasticsearch cluster is configured.
// Titles and genres match exactly, authors match case-insensitively on a substring.
type MemoryCatalog struct {
	mu    sync.RWMutex
	order []string
	books map[string]models.Book
}

func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{books: make(map[string]models.Book)}
}

func (catalog *MemoryCatalog) Index(_ context.Context, book *models.Book) error {
	catalog.mu.Lock()
	defer catalog.mu.Unlock()

	if _, ok := catalog.books[book.Isbn]; !ok {
		catalog.order = append(catalog.order, book.Isbn)
	}
	catalog.books[book.Isbn] = *book

	return nil
}

func (catalog *MemoryCatalog) GetByIsbn(_ context.Context, isbn string) (*models.Book, error) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	book, ok := catalog.books[isbn]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrBookNotFound, isbn)
	}

	return &book, nil
}

func (catalog *MemoryCatalog) Search(_ context.Context, title, authorName, genre string) ([]*models.Book, error) {
	catalog.mu.RLock()
	defer catalog.mu.RUnlock()

	books := make([]*models.Book, 0)
	for _, isbn := range catalog.order {
		book := catalog.books[isbn]
		if title != "" && book.Title != title {
			continue
		}
		if authorName != "" && !strings.Contains(strings.ToLower(book.AuthorName), strings.ToLower(authorName)) {
			continue
		}
		if genre != "" && book.Genre != genre {
			continue
		}
		books = append(books, &book)
	}

	return books, nil
}
