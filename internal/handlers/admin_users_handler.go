package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/audit"
	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/middleware"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

type AdminUsersHandler struct {
	db    db.QueryAdapter
	audit *audit.Dispatcher
}

func NewAdminUsersHandler(adapter db.QueryAdapter, dispatcher *audit.Dispatcher) *AdminUsersHandler {
	return &AdminUsersHandler{db: adapter, audit: dispatcher}
}

// GET /api/admin/users
func (h *AdminUsersHandler) List(c *gin.Context) {
	users, err := h.queryUsers(c.Request.Context(), `
		SELECT id, first_name, last_name, phone, email, is_active, role, created_at,
		       CASE WHEN password_hash = 'manual_account' THEN 'manual' ELSE 'registered' END
		FROM users ORDER BY created_at DESC`)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"users": users})
}

// GET /api/admin/users/search?q= — typeahead for the manual-booking form.
func (h *AdminUsersHandler) Search(c *gin.Context) {
	q := c.Query("q")
	if len(q) < 2 {
		httpresp.OK(c, gin.H{"users": []models.User{}})
		return
	}

	pattern := "%" + q + "%"
	users, err := h.queryUsers(c.Request.Context(), `
		SELECT id, first_name, last_name, phone, email, is_active, role, created_at,
		       CASE WHEN password_hash = 'manual_account' THEN 'manual' ELSE 'registered' END
		FROM users
		WHERE (LOWER(first_name) LIKE LOWER(?) OR LOWER(last_name) LIKE LOWER(?)
		       OR LOWER(email) LIKE LOWER(?) OR phone LIKE ?)
		  AND role != 'admin'
		ORDER BY first_name, last_name
		LIMIT 10`,
		pattern, pattern, pattern, pattern,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"users": users})
}

type activateRequest struct {
	IsActive *bool `json:"is_active" binding:"required"`
}

// PATCH /api/admin/users/:id/activate
func (h *AdminUsersHandler) Activate(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	var req activateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	_, err = h.db.Exec(c.Request.Context(),
		"UPDATE users SET is_active = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		*req.IsActive, id,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	action := "user_deactivated"
	message := "Użytkownik został dezaktywowany"
	if *req.IsActive {
		action = "user_activated"
		message = "Użytkownik został aktywowany"
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  middleware.UserID(c),
		Action:   action,
		Entity:   "user",
		EntityID: &id,
	})
	httpresp.Success(c, message)
}

// DELETE /api/admin/users/:id — cascades to the user's appointments and
// reviews through the schema's foreign keys.
func (h *AdminUsersHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	res, err := h.db.Exec(c.Request.Context(), "DELETE FROM users WHERE id = ?", id)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		httperr.NotFound(c, "Nie znaleziono użytkownika")
		return
	}

	h.audit.Dispatch(audit.Event{
		AdminID:  middleware.UserID(c),
		Action:   "user_deleted",
		Entity:   "user",
		EntityID: &id,
	})
	httpresp.Success(c, "Użytkownik został usunięty")
}

func (h *AdminUsersHandler) queryUsers(ctx context.Context, query string, args ...any) ([]models.User, error) {
	rows, err := h.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.FirstName, &u.LastName, &u.Phone, &u.Email,
			&u.IsActive, &u.Role, &u.CreatedAt, &u.AccountType,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}
	return users, rows.Err()
}
