package handlers

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/lostpaws/petfinder-api/internal/config"
	userdomain "github.com/lostpaws/petfinder-api/internal/domain/user"
	"github.com/lostpaws/petfinder-api/internal/httperr"
	"github.com/lostpaws/petfinder-api/internal/models"
	"github.com/lostpaws/petfinder-api/internal/validators"
)

type AuthHandler struct {
	users  userdomain.Repository
	config *config.Config
}

func NewAuthHandler(users userdomain.Repository, cfg *config.Config) *AuthHandler {
	return &AuthHandler{users: users, config: cfg}
}

// --------- Requests ---------

type RegisterRequest struct {
	FullName string `json:"fullname" binding:"required,min=2,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6,max=72"`
	Phone    string `json:"phone" binding:"max=20"`
	LineID   string `json:"lineId" binding:"max=45"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// --------- Handlers ---------

func (h *AuthHandler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	if !validators.IsEmailDomainValid(email) {
		httperr.BadRequest(c, "invalid_email_domain", "the email domain does not look valid")
		return
	}

	if _, err := h.users.FindByEmail(c.Request.Context(), email); err == nil {
		httperr.BadRequest(c, "email_already_registered", "email is already registered")
		return
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		httperr.Internal(c, "failed_to_hash_password", "something went wrong")
		return
	}

	user := models.User{
		FullName:     req.FullName,
		Email:        email,
		PasswordHash: string(hashed),
		Phone:        req.Phone,
		LineID:       req.LineID,
		Role:         models.RoleUser,
	}

	if err := h.users.Create(c.Request.Context(), &user); err != nil {
		httperr.Internal(c, "failed_to_create_user", "something went wrong")
		return
	}

	token, err := h.generateToken(&user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "something went wrong")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":  userPayload(&user),
		"token": token,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", err.Error())
		return
	}

	user, err := h.users.FindByEmail(c.Request.Context(), req.Email)
	if err != nil {
		if httperr.IsKind(err, httperr.KindNotFound) {
			httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
			return
		}
		httperr.WriteError(c, err)
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		httperr.Unauthorized(c, "invalid_credentials", "invalid email or password")
		return
	}

	token, err := h.generateToken(user)
	if err != nil {
		httperr.Internal(c, "failed_to_generate_token", "something went wrong")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":  userPayload(user),
		"token": token,
	})
}

func userPayload(user *models.User) gin.H {
	return gin.H{
		"id":       user.ID,
		"fullname": user.FullName,
		"email":    user.Email,
		"phone":    user.Phone,
		"lineId":   user.LineID,
		"role":     user.Role,
	}
}

// --------- JWT ---------

func (h *AuthHandler) generateToken(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      user.ID,
		"role":     string(user.Role),
		"email":    user.Email,
		"fullname": user.FullName,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(h.config.JWTSecret))
}
