package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/middleware"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

type ReviewHandler struct {
	db db.QueryAdapter
}

func NewReviewHandler(adapter db.QueryAdapter) *ReviewHandler {
	return &ReviewHandler{db: adapter}
}

// GET /api/reviews?limit= — approved reviews with reviewer names.
func (h *ReviewHandler) ListPublic(c *gin.Context) {
	query := `
		SELECT r.id, r.rating, r.comment, u.first_name, u.last_name, r.created_at
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		WHERE r.is_approved = ?
		ORDER BY r.created_at DESC`
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}

	rows, err := h.db.Query(c.Request.Context(), query, true)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(&r.ID, &r.Rating, &r.Comment, &r.FirstName, &r.LastName, &r.CreatedAt); err != nil {
			httperr.WriteError(c, err)
			return
		}
		reviews = append(reviews, r)
	}
	httpresp.OK(c, gin.H{"reviews": reviews})
}

type reviewRequest struct {
	Rating  int    `json:"rating" binding:"required"`
	Comment string `json:"comment" binding:"required"`
}

// POST /api/reviews — authenticated users leave an opinion.
func (h *ReviewHandler) Create(c *gin.Context) {
	var req reviewRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Rating < 1 || req.Rating > 5 {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	_, err := h.db.Exec(c.Request.Context(),
		"INSERT INTO reviews (user_id, rating, comment) VALUES (?, ?, ?)",
		middleware.UserID(c), req.Rating, req.Comment,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Opinia została dodana")
}

// GET /api/admin/reviews — every review, reviewer email included.
func (h *ReviewHandler) ListAdmin(c *gin.Context) {
	rows, err := h.db.Query(c.Request.Context(), `
		SELECT r.id, r.rating, r.comment, r.is_approved,
		       u.first_name, u.last_name, u.email, r.created_at
		FROM reviews r
		JOIN users u ON r.user_id = u.id
		ORDER BY r.created_at DESC`)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	defer rows.Close()

	reviews := []models.Review{}
	for rows.Next() {
		var r models.Review
		if err := rows.Scan(
			&r.ID, &r.Rating, &r.Comment, &r.IsApproved,
			&r.FirstName, &r.LastName, &r.Email, &r.CreatedAt,
		); err != nil {
			httperr.WriteError(c, err)
			return
		}
		reviews = append(reviews, r)
	}
	httpresp.OK(c, gin.H{"reviews": reviews})
}

// DELETE /api/admin/reviews/:id
func (h *ReviewHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	if _, err := h.db.Exec(c.Request.Context(), "DELETE FROM reviews WHERE id = ?", id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Opinia została usunięta")
}
