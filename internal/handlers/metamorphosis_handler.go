package handlers

import (
	"database/sql"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
	"github.com/VelvetStudioPL/salon-scheduler/internal/uploads"
)

// MetamorphosisHandler manages the before/after gallery. Images arrive as
// multipart form uploads and are stored on disk under the uploads root.
type MetamorphosisHandler struct {
	db    db.QueryAdapter
	store *uploads.Store
}

func NewMetamorphosisHandler(adapter db.QueryAdapter, store *uploads.Store) *MetamorphosisHandler {
	return &MetamorphosisHandler{db: adapter, store: store}
}

// GET /api/metamorphoses?limit=
func (h *MetamorphosisHandler) List(c *gin.Context) {
	query := `
		SELECT id, treatment_name, before_image, after_image, created_at
		FROM metamorphoses ORDER BY created_at DESC`
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}

	rows, err := h.db.Query(c.Request.Context(), query)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	defer rows.Close()

	gallery := []models.Metamorphosis{}
	for rows.Next() {
		var m models.Metamorphosis
		if err := rows.Scan(&m.ID, &m.TreatmentName, &m.BeforeImage, &m.AfterImage, &m.CreatedAt); err != nil {
			httperr.WriteError(c, err)
			return
		}
		gallery = append(gallery, m)
	}
	httpresp.OK(c, gin.H{"metamorphoses": gallery})
}

// POST /api/admin/metamorphoses — multipart: treatment_name, beforeImage, afterImage.
func (h *MetamorphosisHandler) Create(c *gin.Context) {
	name := c.PostForm("treatmentName")
	before, errB := c.FormFile("beforeImage")
	after, errA := c.FormFile("afterImage")
	if name == "" || errB != nil || errA != nil {
		httperr.BadRequest(c, "Wszystkie pola są wymagane")
		return
	}

	beforePath, err := h.store.Save(before, "metamorphoses")
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	afterPath, err := h.store.Save(after, "metamorphoses")
	if err != nil {
		h.store.Remove(beforePath)
		httperr.WriteError(c, err)
		return
	}

	_, err = h.db.Exec(c.Request.Context(),
		"INSERT INTO metamorphoses (treatment_name, before_image, after_image) VALUES (?, ?, ?)",
		name, beforePath, afterPath,
	)
	if err != nil {
		h.store.Remove(beforePath)
		h.store.Remove(afterPath)
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Metamorfoza została dodana")
}

// PUT /api/admin/metamorphoses/:id — multipart; images are optional and
// replace (and delete) the stored ones when present.
func (h *MetamorphosisHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	var current models.Metamorphosis
	err = h.db.QueryRow(c.Request.Context(),
		"SELECT treatment_name, before_image, after_image FROM metamorphoses WHERE id = ?", id,
	).Scan(&current.TreatmentName, &current.BeforeImage, &current.AfterImage)
	if err == sql.ErrNoRows {
		httperr.NotFound(c, "Metamorfoza nie znaleziona")
		return
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	name := c.PostForm("treatmentName")
	if name == "" {
		name = current.TreatmentName
	}

	beforePath := current.BeforeImage
	var oldBefore, oldAfter string
	if fh, err := c.FormFile("beforeImage"); err == nil {
		if beforePath, err = h.store.Save(fh, "metamorphoses"); err != nil {
			httperr.WriteError(c, err)
			return
		}
		oldBefore = current.BeforeImage
	}

	afterPath := current.AfterImage
	if fh, err := c.FormFile("afterImage"); err == nil {
		if afterPath, err = h.store.Save(fh, "metamorphoses"); err != nil {
			if oldBefore != "" {
				h.store.Remove(beforePath)
			}
			httperr.WriteError(c, err)
			return
		}
		oldAfter = current.AfterImage
	}

	_, err = h.db.Exec(c.Request.Context(), `
		UPDATE metamorphoses
		SET treatment_name = ?, before_image = ?, after_image = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		name, beforePath, afterPath, id,
	)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	// Replaced files are only deleted once the row update went through.
	if oldBefore != "" {
		h.store.Remove(oldBefore)
	}
	if oldAfter != "" {
		h.store.Remove(oldAfter)
	}
	httpresp.Success(c, "Metamorfoza została zaktualizowana")
}

// DELETE /api/admin/metamorphoses/:id — removes the row and both images.
func (h *MetamorphosisHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	var before, after string
	err = h.db.QueryRow(c.Request.Context(),
		"SELECT before_image, after_image FROM metamorphoses WHERE id = ?", id,
	).Scan(&before, &after)
	if err == sql.ErrNoRows {
		httperr.NotFound(c, "Metamorfoza nie znaleziona")
		return
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	if _, err := h.db.Exec(c.Request.Context(), "DELETE FROM metamorphoses WHERE id = ?", id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	h.store.Remove(before)
	h.store.Remove(after)
	httpresp.Success(c, "Metamorfoza została usunięta")
}
