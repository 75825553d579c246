package book

import (
	"context"
	"sort"
	"strings"
	"sync"
)

// MemoryRepo provides an in-memory implementation of Repository.
type MemoryRepo struct {
	mu     sync.RWMutex
	books  map[int64]Book
	nextID int64
}

// NewMemoryRepo constructs a MemoryRepo seeded with the provided books.
// Seed books keep their ids; new books get ids after the largest one.
func NewMemoryRepo(seed ...Book) *MemoryRepo {
	repo := &MemoryRepo{
		books:  make(map[int64]Book, len(seed)),
		nextID: 1,
	}

	for _, b := range seed {
		if b.ID == 0 {
			b.ID = repo.nextID
		}
		repo.books[b.ID] = b
		if b.ID >= repo.nextID {
			repo.nextID = b.ID + 1
		}
	}

	return repo
}

// Ping always succeeds.
func (r *MemoryRepo) Ping(_ context.Context) error {
	return nil
}

func (r *MemoryRepo) FindAll(_ context.Context, req PageRequest) ([]Book, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.pageOf(func(Book) bool { return true }, req), r.count(func(Book) bool { return true }), nil
}

func (r *MemoryRepo) FindByTitle(_ context.Context, title string, req PageRequest) ([]Book, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	needle := strings.ToLower(title)
	match := func(b Book) bool {
		return strings.Contains(strings.ToLower(b.Title), needle)
	}
	return r.pageOf(match, req), r.count(match), nil
}

func (r *MemoryRepo) FindByID(_ context.Context, id int64) (Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	b, ok := r.books[id]
	if !ok {
		return Book{}, ErrNotFound
	}
	return b, nil
}

func (r *MemoryRepo) Save(_ context.Context, b Book) (Book, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if b.ID == 0 {
		b.ID = r.nextID
		r.nextID++
	} else if _, ok := r.books[b.ID]; !ok {
		return Book{}, ErrNotFound
	}

	r.books[b.ID] = b
	return b, nil
}

func (r *MemoryRepo) Delete(_ context.Context, b Book) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.books[b.ID]; !ok {
		return ErrNotFound
	}

	delete(r.books, b.ID)
	return nil
}

func (r *MemoryRepo) count(match func(Book) bool) int {
	n := 0
	for _, b := range r.books {
		if match(b) {
			n++
		}
	}
	return n
}

// pageOf must be called with r.mu held.
func (r *MemoryRepo) pageOf(match func(Book) bool, req PageRequest) []Book {
	result := make([]Book, 0, len(r.books))
	for _, b := range r.books {
		if match(b) {
			result = append(result, b)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		if result[i].Title != result[j].Title {
			if req.Descending() {
				return result[i].Title > result[j].Title
			}
			return result[i].Title < result[j].Title
		}
		return result[i].ID < result[j].ID
	})

	start := req.Offset()
	if start < 0 || start >= len(result) {
		return []Book{}
	}
	end := len(result)
	if req.Size < end-start {
		end = start + req.Size
	}
	return result[start:end]
}
