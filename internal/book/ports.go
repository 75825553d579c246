package book

import (
	"context"
)

//go:generate mockgen -source=ports.go -destination=mock_repository.go -package=book

// Repository defines the contract for book data storage.
type Repository interface {
	// FindAll returns one page of books and the total number of books.
	FindAll(ctx context.Context, req PageRequest) ([]Book, int, error)
	// FindByTitle returns one page of books whose title contains title,
	// ignoring case, and the total number of matches.
	FindByTitle(ctx context.Context, title string, req PageRequest) ([]Book, int, error)
	// FindByID returns ErrNotFound when no book has the id.
	FindByID(ctx context.Context, id int64) (Book, error)
	// Save inserts b when b.ID is zero and updates it otherwise.
	Save(ctx context.Context, b Book) (Book, error)
	Delete(ctx context.Context, b Book) error
}
