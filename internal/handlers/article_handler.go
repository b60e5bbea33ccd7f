package handlers

import (
	"database/sql"
	"errors"
	"regexp"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httpresp"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
)

type ArticleHandler struct {
	db db.QueryAdapter
}

func NewArticleHandler(adapter db.QueryAdapter) *ArticleHandler {
	return &ArticleHandler{db: adapter}
}

// GET /api/articles?category=&limit= — published articles, excerpt only.
func (h *ArticleHandler) ListPublic(c *gin.Context) {
	query := `
		SELECT id, title, slug, excerpt, image_url, category, created_at
		FROM articles WHERE is_published = ?`
	params := []any{true}

	if category := c.Query("category"); category != "" {
		query += " AND category = ?"
		params = append(params, category)
	}
	query += " ORDER BY created_at DESC"
	if limit, err := strconv.Atoi(c.Query("limit")); err == nil && limit > 0 {
		query += " LIMIT " + strconv.Itoa(limit)
	}

	rows, err := h.db.Query(c.Request.Context(), query, params...)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var (
			a   models.Article
			img sql.NullString
		)
		if err := rows.Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &img, &a.Category, &a.CreatedAt); err != nil {
			httperr.WriteError(c, err)
			return
		}
		a.ImageURL = img.String
		a.IsPublished = true
		articles = append(articles, a)
	}
	httpresp.OK(c, gin.H{"articles": articles})
}

// GET /api/articles/:slug
func (h *ArticleHandler) GetBySlug(c *gin.Context) {
	var (
		a   models.Article
		img sql.NullString
	)
	err := h.db.QueryRow(c.Request.Context(), `
		SELECT id, title, slug, excerpt, content, image_url, category, is_published, created_at
		FROM articles WHERE slug = ? AND is_published = ?`,
		c.Param("slug"), true,
	).Scan(&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &img, &a.Category, &a.IsPublished, &a.CreatedAt)
	if err == sql.ErrNoRows {
		httperr.NotFound(c, "Artykuł nie znaleziony")
		return
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	a.ImageURL = img.String
	httpresp.OK(c, gin.H{"article": a})
}

// GET /api/admin/articles
func (h *ArticleHandler) ListAdmin(c *gin.Context) {
	rows, err := h.db.Query(c.Request.Context(), `
		SELECT id, title, slug, excerpt, content, image_url, category, is_published, created_at
		FROM articles ORDER BY created_at DESC`)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}
	defer rows.Close()

	articles := []models.Article{}
	for rows.Next() {
		var (
			a   models.Article
			img sql.NullString
		)
		if err := rows.Scan(
			&a.ID, &a.Title, &a.Slug, &a.Excerpt, &a.Content, &img,
			&a.Category, &a.IsPublished, &a.CreatedAt,
		); err != nil {
			httperr.WriteError(c, err)
			return
		}
		a.ImageURL = img.String
		articles = append(articles, a)
	}
	httpresp.OK(c, gin.H{"articles": articles})
}

type articleRequest struct {
	Title       string `json:"title" binding:"required"`
	Excerpt     string `json:"excerpt"`
	Content     string `json:"content"`
	ImageURL    string `json:"image_url"`
	Category    string `json:"category"`
	IsPublished bool   `json:"is_published"`
}

// POST /api/admin/articles
func (h *ArticleHandler) Create(c *gin.Context) {
	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	_, err := h.db.Exec(c.Request.Context(), `
		INSERT INTO articles (title, slug, excerpt, content, image_url, category, is_published)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		req.Title, Slugify(req.Title), req.Excerpt, req.Content, req.ImageURL, req.Category, req.IsPublished,
	)
	if err != nil {
		if errors.Is(err, db.ErrConstraint) {
			httperr.Conflict(c, "Artykuł z tym tytułem już istnieje")
			return
		}
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Artykuł został dodany")
}

// PUT /api/admin/articles/:id
func (h *ArticleHandler) Update(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	var req articleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	_, err = h.db.Exec(c.Request.Context(), `
		UPDATE articles
		SET title = ?, slug = ?, excerpt = ?, content = ?, image_url = ?,
		    category = ?, is_published = ?, updated_at = CURRENT_TIMESTAMP
		WHERE id = ?`,
		req.Title, Slugify(req.Title), req.Excerpt, req.Content, req.ImageURL,
		req.Category, req.IsPublished, id,
	)
	if err != nil {
		if errors.Is(err, db.ErrConstraint) {
			httperr.Conflict(c, "Artykuł z tym tytułem już istnieje")
			return
		}
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Artykuł został zaktualizowany")
}

// DELETE /api/admin/articles/:id
func (h *ArticleHandler) Delete(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	if _, err := h.db.Exec(c.Request.Context(), "DELETE FROM articles WHERE id = ?", id); err != nil {
		httperr.WriteError(c, err)
		return
	}
	httpresp.Success(c, "Artykuł został usunięty")
}

var nonSlugChars = regexp.MustCompile(`[^a-z0-9]+`)

// Slugify builds the URL slug for an article title: lowercase, runs of
// anything non-alphanumeric collapse to a single dash.
func Slugify(title string) string {
	slug := nonSlugChars.ReplaceAllString(strings.ToLower(title), "-")
	return strings.Trim(slug, "-")
}
