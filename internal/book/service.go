package book

import (
	"context"
	"log"
)

// Service provides book-related business logic.
type Service struct {
	repo  Repository
	links Linker
}

// NewService creates a new book service.
func NewService(repo Repository, links Linker) *Service {
	return &Service{repo: repo, links: links}
}

// List returns one page of books. The page link always describes the
// ascending listing with the same page number and size.
func (s *Service) List(ctx context.Context, req PageRequest) (Page, error) {
	log.Printf("book: finding all books page=%d size=%d direction=%s", req.Page, req.Size, req.Direction)

	books, total, err := s.repo.FindAll(ctx, req)
	if err != nil {
		return Page{}, err
	}
	return s.page(books, total, req, s.links.List(req.Page, req.Size, DirectionAsc)), nil
}

// FindByTitle returns one page of books whose title matches title.
func (s *Service) FindByTitle(ctx context.Context, title string, req PageRequest) (Page, error) {
	log.Printf("book: finding books by title title=%q page=%d size=%d", title, req.Page, req.Size)

	books, total, err := s.repo.FindByTitle(ctx, title, req)
	if err != nil {
		return Page{}, err
	}
	return s.page(books, total, req, s.links.FindByTitle(title, req.Page, req.Size, DirectionAsc)), nil
}

// FindByID returns the book with the given id.
func (s *Service) FindByID(ctx context.Context, id int64) (BookView, error) {
	log.Printf("book: finding one book id=%d", id)

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return BookView{}, err
	}
	return s.view(b), nil
}

// Create stores a new book. Any key carried by v is ignored.
func (s *Service) Create(ctx context.Context, v *BookView) (BookView, error) {
	if v == nil {
		return BookView{}, ErrRequiredValueMissing
	}

	log.Printf("book: creating one book title=%q", v.Title)

	saved, err := s.repo.Save(ctx, FromView(*v))
	if err != nil {
		return BookView{}, err
	}
	return s.view(saved), nil
}

// Update overwrites author, launch date, price and title of the book
// identified by v.Key. The key itself is never changed.
func (s *Service) Update(ctx context.Context, v *BookView) (BookView, error) {
	if v == nil {
		return BookView{}, ErrRequiredValueMissing
	}

	log.Printf("book: updating one book id=%d", v.Key)

	b, err := s.repo.FindByID(ctx, v.Key)
	if err != nil {
		return BookView{}, err
	}

	b.Author = v.Author
	b.LaunchDate = v.LaunchDate
	b.Price = v.Price
	b.Title = v.Title

	saved, err := s.repo.Save(ctx, b)
	if err != nil {
		return BookView{}, err
	}
	return s.view(saved), nil
}

// Delete removes the book with the given id.
func (s *Service) Delete(ctx context.Context, id int64) error {
	log.Printf("book: deleting one book id=%d", id)

	b, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return err
	}
	return s.repo.Delete(ctx, b)
}

func (s *Service) view(b Book) BookView {
	v := ToView(b)
	v.AddLink(s.links.Book(v.Key))
	return v
}

func (s *Service) page(books []Book, total int, req PageRequest, link Link) Page {
	content := make([]BookView, 0, len(books))
	for _, b := range books {
		content = append(content, s.view(b))
	}
	return Page{
		Content: content,
		Link:    link,
		Meta:    newPageMeta(req, total),
	}
}
