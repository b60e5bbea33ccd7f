package handlers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

// AuditLogsHandler exposes the admin action trail recorded by the audit
// dispatcher.
type AuditLogsHandler struct {
	db db.QueryAdapter
}

func NewAuditLogsHandler(adapter db.QueryAdapter) *AuditLogsHandler {
	return &AuditLogsHandler{db: adapter}
}

// GET /api/admin/audit-logs?action=&entity=&limit=
func (h *AuditLogsHandler) List(c *gin.Context) {
	query := `
		SELECT id, admin_id, action, entity, entity_id, metadata, created_at
		FROM audit_logs WHERE 1=1`
	params := []any{}

	if action := c.Query("action"); action != "" {
		query += " AND action = ?"
		params = append(params, action)
	}
	if entity := c.Query("entity"); entity != "" {
		query += " AND entity = ?"
		params = append(params, entity)
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n > 0 && n <= 200 {
			limit = n
		}
	}
	query += " ORDER BY created_at DESC LIMIT " + strconv.Itoa(limit)

	rows, err := h.db.Query(c.Request.Context(), query, params...)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	defer rows.Close()

	logs := []models.AuditLog{}
	for rows.Next() {
		var (
			entry    models.AuditLog
			entity   sql.NullString
			entityID sql.NullInt64
			metadata sql.NullString
		)
		if err := rows.Scan(
			&entry.ID, &entry.AdminID, &entry.Action, &entity, &entityID, &metadata, &entry.CreatedAt,
		); err != nil {
			httperr.WriteError(c, err)
			return
		}
		entry.Entity, entry.Metadata = entity.String, metadata.String
		if entityID.Valid {
			entry.EntityID = &entityID.Int64
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		httperr.WriteError(c, err)
		return
	}

	httpresp.OK(c, gin.H{"logs": logs})
}
