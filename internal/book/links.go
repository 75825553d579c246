package book

import (
	"net/url"
	"strconv"
	"strings"
)

// RelSelf is the relation name of a resource's own link.
const RelSelf = "self"

const booksPath = "/books"

// Linker builds hrefs for the book routes relative to a public base URL.
type Linker struct {
	baseURL string
}

// NewLinker returns a Linker rooted at baseURL. An empty baseURL yields
// root-relative hrefs such as "/books/1".
func NewLinker(baseURL string) Linker {
	return Linker{baseURL: strings.TrimRight(baseURL, "/")}
}

// Book returns the self link of the book with the given id.
func (l Linker) Book(id int64) Link {
	return Link{Rel: RelSelf, Href: l.baseURL + booksPath + "/" + strconv.FormatInt(id, 10)}
}

// List returns the link of the paged book listing.
func (l Linker) List(page, size int, direction string) Link {
	return Link{Rel: RelSelf, Href: l.baseURL + booksPath + "?" + pageQuery(page, size, direction)}
}

// FindByTitle returns the link of the paged title search.
func (l Linker) FindByTitle(title string, page, size int, direction string) Link {
	return Link{
		Rel:  RelSelf,
		Href: l.baseURL + booksPath + "/findByTitle/" + url.PathEscape(title) + "?" + pageQuery(page, size, direction),
	}
}

func pageQuery(page, size int, direction string) string {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))
	q.Set("direction", direction)
	return q.Encode()
}
