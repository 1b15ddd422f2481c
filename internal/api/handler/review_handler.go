package handler

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/nabilsaied15/bibliotheque-api/internal/api/metrics"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/domain"
	"github.com/nabilsaied15/bibliotheque-api/internal/core/ports"
)

// ReviewHandler handles HTTP requests for review operations.
type ReviewHandler struct {
	service ports.ReviewService
}

func NewReviewHandler(service ports.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: service}
}

// ListByBook handles GET /api/reviews/book/:bookId.
//
// @Summary      List reviews for a book
// @Tags         reviews
// @Produce      json
// @Param        bookId  path      string  true   "Book id"
// @Param        page    query     int     false  "Page number (1-based)"
// @Param        limit   query     int     false  "Page size (max 100)"
// @Success      200     {object}  envelope
// @Router       /reviews/book/{bookId} [get]
func (h *ReviewHandler) ListByBook(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	limit, _ := strconv.Atoi(c.QueryParam("limit"))

	result, err := h.service.ListByBook(c.Request().Context(), c.Param("bookId"), page, limit)
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "", toListReviewsData(result))
}

// Create handles POST /api/reviews/book/:bookId.
//
// @Summary      Post a review for a book
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        bookId  path      string         true  "Book id"
// @Param        body    body      reviewRequest  true  "Review"
// @Success      201     {object}  envelope
// @Failure      404     {object}  envelope
// @Failure      409     {object}  envelope
// @Failure      422     {object}  envelope
// @Router       /reviews/book/{bookId} [post]
func (h *ReviewHandler) Create(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.Create(c.Request().Context(), actor, c.Param("bookId"), ports.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	metrics.ReviewsCreatedTotal.Inc()
	return respond(c, http.StatusCreated, "review created", reviewData{Review: toReviewResponse(*detail)})
}

// Update handles PUT /api/reviews/:id. Owner only; a review that exists but
// belongs to someone else responds exactly like a missing one.
//
// @Summary      Update own review
// @Tags         reviews
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Review id"
// @Param        body  body      reviewRequest  true  "Review"
// @Success      200   {object}  envelope
// @Failure      404   {object}  envelope
// @Failure      422   {object}  envelope
// @Router       /reviews/{id} [put]
func (h *ReviewHandler) Update(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	var req reviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.Update(c.Request().Context(), actor, c.Param("id"), ports.ReviewInput{
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return err
	}

	return respond(c, http.StatusOK, "review updated", reviewData{Review: toReviewResponse(*detail)})
}

// Delete handles DELETE /api/reviews/:id. Owner or admin.
//
// @Summary      Delete a review
// @Tags         reviews
// @Security     BearerAuth
// @Param        id  path  string  true  "Review id"
// @Success      204
// @Failure      404  {object}  envelope
// @Router       /reviews/{id} [delete]
func (h *ReviewHandler) Delete(c echo.Context) error {
	actor, err := ctxActor(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), actor, c.Param("id")); err != nil {
		return err
	}

	by := "owner"
	if actor.Role == domain.RoleAdmin {
		by = "admin"
	}
	metrics.ReviewsDeletedTotal.WithLabelValues(by).Inc()

	return c.NoContent(http.StatusNoContent)
}
