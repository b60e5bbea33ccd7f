package handlers

import (
	"database/sql"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/VelvetStudioPL/salon-scheduler/internal/config"
	"github.com/VelvetStudioPL/salon-scheduler/internal/db"
	"github.com/VelvetStudioPL/salon-scheduler/internal/httperr"
	"github.com/VelvetStudioPL/salon-scheduler/internal/models"
	"github.com/VelvetStudioPL/salon-scheduler/internal/validators"
)

type AuthHandler struct {
	db     db.QueryAdapter
	config *config.Config
}

func NewAuthHandler(adapter db.QueryAdapter, cfg *config.Config) *AuthHandler {
	return &AuthHandler{db: adapter, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

// Register creates an inactive account pending admin approval.
func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Wszystkie pola są wymagane")
		return
	}
	if req.FirstName == "" || req.LastName == "" || req.Phone == "" || req.Email == "" || req.Password == "" {
		httperr.BadRequest(c, "Wszystkie pola są wymagane")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))
	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "Nieprawidłowy adres email")
		return
	}

	var existing int64
	err := h.db.QueryRow(c.Request.Context(),
		"SELECT id FROM users WHERE email = ?", email,
	).Scan(&existing)
	if err == nil {
		httperr.Conflict(c, "Użytkownik z tym adresem email już istnieje")
		return
	}
	if err != sql.ErrNoRows {
		httperr.WriteError(c, err)
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	_, err = h.db.Exec(c.Request.Context(),
		"INSERT INTO users (first_name, last_name, phone, email, password_hash) VALUES (?, ?, ?, ?, ?)",
		req.FirstName, req.LastName, req.Phone, email, string(hashed),
	)
	if err != nil {
		// Two registrations racing on the same email: the unique constraint
		// decides, the loser gets the same 409 as the checked path.
		if errors.Is(err, db.ErrConstraint) {
			httperr.Conflict(c, "Użytkownik z tym adresem email już istnieje")
			return
		}
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Konto zostało utworzone. Oczekuje na zatwierdzenie przez administratora.",
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "Nieprawidłowe dane")
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	var user models.User
	err := h.db.QueryRow(c.Request.Context(), `
		SELECT id, first_name, last_name, email, password_hash, is_active, role
		FROM users WHERE email = ?`,
		email,
	).Scan(
		&user.ID, &user.FirstName, &user.LastName, &user.Email,
		&user.PasswordHash, &user.IsActive, &user.Role,
	)
	if err == sql.ErrNoRows {
		httperr.Unauthorized(c, "Nieprawidłowy email lub hasło")
		return
	}
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	// Manual accounts carry a sentinel instead of a hash and can never log in.
	if user.IsManual() ||
		bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		httperr.Unauthorized(c, "Nieprawidłowy email lub hasło")
		return
	}

	if !user.IsActive {
		httperr.Forbidden(c, "Konto oczekuje na zatwierdzenie przez administratora")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.WriteError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logowanie pomyślne",
		"token":   token,
		"user": gin.H{
			"id":        user.ID,
			"email":     user.Email,
			"role":      user.Role,
			"firstName": user.FirstName,
			"lastName":  user.LastName,
		},
	})
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"id":        user.ID,
		"email":     user.Email,
		"role":      user.Role,
		"firstName": user.FirstName,
		"lastName":  user.LastName,
		"exp":       time.Now().Add(24 * time.Hour).Unix(),
		"iat":       time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
