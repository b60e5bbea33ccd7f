package handlers

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

type ServiceHandler struct {
	db db.QueryAdapter
}

func NewServiceHandler(adapter db.QueryAdapter) *ServiceHandler {
	return &ServiceHandler{db: adapter}
}

// GET /api/services — public price list, active services only.
func (h *ServiceHandler) ListPublic(c *gin.Context) {
	services, err := h.queryServices(c.Request.Context(),
		"WHERE is_active = ? ORDER BY category, name", true)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"services": services})
}

// GET /api/admin/services
func (h *ServiceHandler) ListAdmin(c *gin.Context) {
	services, err := h.queryServices(c.Request.Context(), "ORDER BY category, name")
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.OK(c, gin.H{"services": services})
}

type serviceRequest struct {
	Name        string  `json:"name" binding:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Duration    int     `json:"duration"`
	Category    string  `json:"category" binding:"required"`
	IsActive    *bool   `json:"is_active"`
}

// POST /api/admin/services
func (h *ServiceHandler) Create(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	_, err := h.db.Exec(c.Request.Context(),
		"INSERT INTO services (name, description, price, duration, category) VALUES (?, ?, ?, ?, ?)",
		req.Name, req.Description, req.Price, req.Duration, req.Category,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Usługa została dodana")
}

// PUT /api/admin/services/:id
func (h *ServiceHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	_, err = h.db.Exec(c.Request.Context(), `
		UPDATE services
		SET name = ?, description = ?, price = ?, duration = ?, category = ?,
		    is_active = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		req.Name, req.Description, req.Price, req.Duration, req.Category, isActive, id,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Usługa została zaktualizowana")
}

// DELETE /api/admin/services/:id
func (h *ServiceHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	if _, err := h.db.Exec(c.Request.Context(), "DELETE FROM services WHERE id = ?", id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Usługa została usunięta")
}

func (h *ServiceHandler) queryServices(ctx context.Context, where string, args ...any) ([]models.Service, error) {
	rows, err := h.db.Query(ctx, `
		SELECT id, name, description, price, duration, category, is_active, created_at
		FROM services `+where, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	services := []models.Service{}
	for rows.Next() {
		var (
			s     models.Service
			price priceCol
		)
		if err := rows.Scan(
			&s.ID, &s.Name, &s.Description, &price, &s.Duration,
			&s.Category, &s.IsActive, &s.CreatedAt,
		); err != nil {
			return nil, err
		}
		s.Price = string(price)
		services = append(services, s)
	}
	return services, rows.Err()
}
