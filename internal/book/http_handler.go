package book

import (
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"bookservice/internal/httpx"
)

const (
	defaultPageSize     = 12
	notFoundMessage     = "No records found for this ID!"
	requiredMissMessage = "It is not allowed to persist a null object!"
)

var errTrailingData = errors.New("request body must contain a single JSON value")

type HTTPHandler struct {
	service *Service
}

func NewHTTPHandler(service *Service) *HTTPHandler {
	return &HTTPHandler{service: service}
}

// Register mounts the book routes on mux.
func (h *HTTPHandler) Register(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.List)
	mux.HandleFunc("GET /books/findByTitle/{title}", h.FindByTitle)
	mux.HandleFunc("GET /books/{id}", h.FindByID)
	mux.HandleFunc("POST /books", h.Create)
	mux.HandleFunc("PUT /books", h.Update)
	mux.HandleFunc("DELETE /books/{id}", h.Delete)
}

// @Summary List books
// @Tags books
// @Produce json
// @Param page query int false "Page number, zero based" default(0)
// @Param size query int false "Items per page" default(12)
// @Param direction query string false "Title sort direction" Enums(asc, desc)
// @Success 200 {object} httpx.SuccessResponse
// @Router /books [get]
func (h *HTTPHandler) List(w http.ResponseWriter, r *http.Request) {
	req, ok := pageRequest(w, r)
	if !ok {
		return
	}

	page, err := h.service.List(r.Context(), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, page, nil)
}

// @Summary Find books by title
// @Tags books
// @Produce json
// @Param title path string true "Part of the title, case insensitive"
// @Success 200 {object} httpx.SuccessResponse
// @Router /books/findByTitle/{title} [get]
func (h *HTTPHandler) FindByTitle(w http.ResponseWriter, r *http.Request) {
	req, ok := pageRequest(w, r)
	if !ok {
		return
	}

	page, err := h.service.FindByTitle(r.Context(), r.PathValue("title"), req)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, page, nil)
}

// @Summary Get book by id
// @Tags books
// @Produce json
// @Param id path int true "Book id"
// @Success 200 {object} httpx.SuccessResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [get]
func (h *HTTPHandler) FindByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	view, err := h.service.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, view, nil)
}

// @Summary Create book
// @Tags books
// @Accept json
// @Produce json
// @Success 201 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Router /books [post]
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeView(w, r)
	if !ok {
		return
	}

	view, err := h.service.Create(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	w.Header().Set("Location", selfHref(view))
	httpx.JSONSuccess(w, r, http.StatusCreated, view, nil)
}

// @Summary Update book
// @Tags books
// @Accept json
// @Produce json
// @Success 200 {object} httpx.SuccessResponse
// @Failure 400 {object} httpx.ErrorResponse
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books [put]
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	in, ok := decodeView(w, r)
	if !ok {
		return
	}

	view, err := h.service.Update(r.Context(), in)
	if err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, http.StatusOK, view, nil)
}

// @Summary Delete book
// @Tags books
// @Param id path int true "Book id"
// @Success 204
// @Failure 404 {object} httpx.ErrorResponse
// @Router /books/{id} [delete]
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		writeError(w, r, err)
		return
	}
	httpx.JSONSuccessNoContent(w)
}

func pageRequest(w http.ResponseWriter, r *http.Request) (PageRequest, bool) {
	query := r.URL.Query()
	req := PageRequest{Page: 0, Size: defaultPageSize, Direction: DirectionAsc}

	if s := query.Get("page"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_PAGE", "page must be an integer", nil)
			return PageRequest{}, false
		}
		req.Page = n
	}
	if s := query.Get("size"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil {
			httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_PAGE", "size must be an integer", nil)
			return PageRequest{}, false
		}
		req.Size = n
	}
	if s := query.Get("direction"); s != "" {
		req.Direction = s
	}

	if details := httpx.ValidateStruct(req); details != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid paging parameters", details)
		return PageRequest{}, false
	}
	return req, true
}

func pathID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil || id < 1 {
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_ID", "id must be a positive integer", nil)
		return 0, false
	}
	return id, true
}

// decodeView reads an optional book from the body. An empty body or a JSON
// null yields a nil view, which the service rejects. Anything after the
// first JSON value is an error.
func decodeView(w http.ResponseWriter, r *http.Request) (*BookView, bool) {
	var in *BookView
	dec := json.NewDecoder(r.Body)
	err := dec.Decode(&in)
	if err == nil {
		if extra := dec.Decode(&struct{}{}); !errors.Is(extra, io.EOF) {
			err = errTrailingData
			if extra != nil {
				err = extra
			}
		}
	} else if errors.Is(err, io.EOF) {
		err = nil
	}
	if err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			httpx.JSONError(w, r, http.StatusRequestEntityTooLarge, "PAYLOAD_TOO_LARGE", "Request body too large", nil)
			return nil, false
		}
		httpx.JSONError(w, r, http.StatusBadRequest, "INVALID_JSON", "Request body is not valid JSON", nil)
		return nil, false
	}
	return in, true
}

func writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", notFoundMessage, nil)
	case errors.Is(err, ErrRequiredValueMissing):
		httpx.JSONError(w, r, http.StatusBadRequest, "REQUIRED_VALUE_MISSING", requiredMissMessage, nil)
	default:
		log.Printf("book: request failed method=%s path=%s request_id=%s error=%v", r.Method, r.URL.Path, httpx.RequestIDFrom(r), err)
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}

func selfHref(v BookView) string {
	if l, ok := v.SelfLink(); ok {
		return l.Href
	}
	return ""
}
