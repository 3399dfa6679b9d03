package models

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

const (
	GenreComic       = "BD"
	GenreNovel       = "Roman"
	GenreSciFi       = "Science-fiction"
	GenreDocumentary = "Documentaire"
	GenreAudio       = "Audio"
)

const (
	noPageCount = -1
	noNarrator  = ""
)

var displayedGenres = map[string]bool{
	GenreComic:       true,
	GenreNovel:       true,
	GenreSciFi:       true,
	GenreDocumentary: true,
}

type Book struct {
	Isbn         string  `json:"isbn" binding:"required"`
	Title        string  `json:"title" binding:"required"`
	AuthorName   string  `json:"author_name"`
	Genre        string  `json:"genre"`
	Pages        *int    `json:"page_count,omitempty"`
	NarratorName *string `json:"narrator,omitempty"`
}

func NewBook(isbn, title, authorName, genre string) *Book {
	return &Book{Isbn: isbn, Title: title, AuthorName: authorName, Genre: genre}
}

// NewPrintedBook creates a book that has pages and no narrator.
func NewPrintedBook(isbn, title, authorName, genre string, pages int) *Book {
	book := NewBook(isbn, title, authorName, genre)
	book.Pages = &pages
	return book
}

// NewAudioBook creates a book that has a narrator and no pages.
func NewAudioBook(isbn, title, authorName, narrator string) *Book {
	book := NewBook(isbn, title, authorName, GenreAudio)
	book.NarratorName = &narrator
	return book
}

// ValidateIsbn only checks the length once hyphens are stripped, checksums are not verified.
func (book *Book) ValidateIsbn() error {
	length := utf8.RuneCountInString(strings.ReplaceAll(book.Isbn, "-", ""))
	if length != 10 && length != 13 {
		return fmt.Errorf("%w: %q has %d characters", ErrInvalidIsbn, book.Isbn, length)
	}
	return nil
}

func (book *Book) LongDisplayFormat() string {
	if displayedGenres[book.Genre] {
		return fmt.Sprintf("%s – %s (%s, ISBN: %s)", book.Title, book.AuthorName, book.Genre, book.Isbn)
	}
	return fmt.Sprintf("%s – %s (ISBN: %s)", book.Title, book.AuthorName, book.Isbn)
}

// PageCount returns -1 for books without pages (audio books).
func (book *Book) PageCount() int {
	if book.Pages == nil {
		return noPageCount
	}
	return *book.Pages
}

// Narrator returns an empty string for books that are not audio books.
func (book *Book) Narrator() string {
	if book.NarratorName == nil {
		return noNarrator
	}
	return *book.NarratorName
}
