package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nabilsaied15/bibliotheque-api/internal/api/metrics"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

// BookHandler handles HTTP requests for catalogue operations.
type BookHandler struct {
	service ports.BookService
}

func NewBookHandler(service ports.BookService) *BookHandler {
	return &BookHandler{service: service}
}

// List handles GET /api/books.
//
// @Summary      List books
// @Tags         books
// @Produce      json
// @Param        page       query     int     false  "Page number (1-based)"
// @Param        limit      query     int     false  "Page size (max 100)"
// @Param        genre      query     string  false  "Filter by genre"
// @Param        year       query     int     false  "Filter by publication year"
// @Param        available  query     bool    false  "Filter by availability"
// @Param        search     query     string  false  "Full-text search"
// @Success      200        {object}  envelope
// @Router       /books [get]
func (h *BookHandler) List(c echo.Context) error {
	in := ports.ListBooksInput{
		Genre:  c.QueryParam("genre"),
		Search: c.QueryParam("search"),
	}
	in.Page, _ = strconv.Atoi(c.QueryParam("page"))
	in.Limit, _ = strconv.Atoi(c.QueryParam("limit"))
	in.Year, _ = strconv.Atoi(c.QueryParam("year"))
	if raw := c.QueryParam("available"); raw != "" {
		available := raw == "true"
		in.Available = &available
	}

	result, err := h.service.List(c.Request().Context(), in)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", toListBooksData(result))
}

// Get handles GET /api/books/:id.
//
// @Summary      Get a book by id
// @Tags         books
// @Produce      json
// @Param        id   path      string  true  "Book id"
// @Success      200  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /books/{id} [get]
func (h *BookHandler) Get(c echo.Context) error {
	book, err := h.service.Get(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", bookData{Book: toBookResponse(book)})
}

// Create handles POST /api/books. Admin only.
//
// @Summary      Add a book to the catalogue
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      bookRequest  true  "Book details"
// @Success      201   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      409   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /books [post]
func (h *BookHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.service.Create(c.Request().Context(), actor, toBookInput(req))
	if err != nil {
		return err
	}

	metrics.BooksCreatedTotal.WithLabelValues(book.Genre).Inc()
	return respond(c, http.StatusCreated, "book created", bookData{Book: toBookResponse(book)})
}

// Update handles PUT /api/books/:id. Admin only.
//
// @Summary      Update a book
// @Tags         books
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string       true  "Book id"
// @Param        body  body      bookRequest  true  "Book details"
// @Success      200   {object}  envelope
// @Failure      403   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      409   {object}  envelope
// @Router       /books/{id} [put]
func (h *BookHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req bookRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	book, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), toBookInput(req))
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "book updated", bookData{Book: toBookResponse(book)})
}

// Delete handles DELETE /api/books/:id. Admin only.
//
// @Summary      Delete a book
// @Tags         books
// @Security     BearerAuth
// @Param        id  path  string  true  "Book id"
// @Success      204
// @Failure      403  {object}  envelope
// @Failure      404  {object}  envelope
// @Router       /books/{id} [delete]
func (h *BookHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	return c.NoContent(http.StatusNoContent)
}
