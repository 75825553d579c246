package book

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrNotFound is returned when no book exists for the requested id.
	ErrNotFound = errors.New("no records found for this id")
	// ErrRequiredValueMissing is returned when create or update receives no book.
	ErrRequiredValueMissing = errors.New("it is not allowed to persist a null object")
)

// Book represents a persisted book entity.
type Book struct {
	ID         int64
	Author     string
	LaunchDate time.Time
	Price      float64
	Title      string
}

// Link is a hypermedia link attached to a view.
type Link struct {
	Rel  string `json:"rel"`
	Href string `json:"href"`
}

// BookView is the externally visible representation of a book.
type BookView struct {
	Key        int64     `json:"id"`
	Author     string    `json:"author"`
	LaunchDate time.Time `json:"launch_date"`
	Price      float64   `json:"price"`
	Title      string    `json:"title"`
	Links      []Link    `json:"links,omitempty"`
}

// AddLink appends l to the view's links.
func (v *BookView) AddLink(l Link) {
	v.Links = append(v.Links, l)
}

// SelfLink returns the first link with rel "self".
func (v BookView) SelfLink() (Link, bool) {
	for _, l := range v.Links {
		if l.Rel == RelSelf {
			return l, true
		}
	}
	return Link{}, false
}

// ToView converts an entity into a view without links.
func ToView(b Book) BookView {
	return BookView{
		Key:        b.ID,
		Author:     b.Author,
		LaunchDate: b.LaunchDate,
		Price:      b.Price,
		Title:      b.Title,
	}
}

// FromView converts a view into an entity. The key is dropped; identity is
// assigned by the store.
func FromView(v BookView) Book {
	return Book{
		Author:     v.Author,
		LaunchDate: v.LaunchDate,
		Price:      v.Price,
		Title:      v.Title,
	}
}

// Sort directions accepted by PageRequest.
const (
	DirectionAsc  = "asc"
	DirectionDesc = "desc"
)

// MaxPage bounds PageRequest.Page so that Offset cannot overflow.
const MaxPage = 10_000_000

// PageRequest selects one page of books ordered by title.
type PageRequest struct {
	Page      int    `validate:"gte=0,lte=10000000"`
	Size      int    `validate:"gte=1,lte=100"`
	Direction string `validate:"oneof=asc desc"`
}

// Offset is the number of rows skipped before the page starts. It
// saturates at math.MaxInt instead of overflowing.
func (p PageRequest) Offset() int {
	if p.Size > 0 && p.Page > math.MaxInt/p.Size {
		return math.MaxInt
	}
	return p.Page * p.Size
}

// Descending reports whether the page is sorted in descending title order.
func (p PageRequest) Descending() bool {
	return p.Direction == DirectionDesc
}

// PageMeta describes where a page sits in the full result set.
type PageMeta struct {
	Size          int `json:"size"`
	TotalElements int `json:"total_elements"`
	TotalPages    int `json:"total_pages"`
	Number        int `json:"number"`
}

// Page is one page of book views plus a page-level link.
type Page struct {
	Content []BookView `json:"content"`
	Link    Link       `json:"link"`
	Meta    PageMeta   `json:"page"`
}

func newPageMeta(req PageRequest, total int) PageMeta {
	pages := 0
	if req.Size > 0 {
		pages = (total + req.Size - 1) / req.Size
	}
	return PageMeta{
		Size:          req.Size,
		TotalElements: total,
		TotalPages:    pages,
		Number:        req.Page,
	}
}
