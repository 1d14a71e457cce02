package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/farellandr/eventportal/internal/helpers"
	"github.com/farellandr/eventportal/internal/middleware"
	"github.com/farellandr/eventportal/internal/models"
	"github.com/farellandr/eventportal/internal/session"
)

type RegisterRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Phone    string `json:"phone"`
	FullName string `json:"fullName"`
	Role     string `json:"role"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

type AuthResponse struct {
	Token    string `json:"token"`
	UserID   uint   `json:"userId"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
	Message  string `json:"message"`
}

func issueAuthResponse(c *gin.Context, status int, user models.User, message string) {
	settings := middleware.GetSettings(c)
	if settings.JWTSecret == "" {
		helpers.RespondWithError(c, http.StatusInternalServerError, "JWT_SECRET not configured.")
		return
	}

	token, err := session.Issue(settings.JWTSecret, settings.JWTTTL, session.Session{
		UserID:   int64(user.ID),
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role.Name,
	})
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(status, AuthResponse{
		Token:    token,
		UserID:   user.ID,
		Username: user.Username,
		Email:    user.Email,
		Role:     user.Role.Name,
		Message:  message,
	})
}

func Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	roleName := strings.ToUpper(strings.TrimSpace(req.Role))
	if roleName == "" {
		roleName = models.RoleParticipant
	}
	if roleName != models.RoleParticipant && roleName != models.RoleOrganizer {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid role.")
		return
	}

	var role models.Role
	if err := gormDB.Where("name = ?", roleName).First(&role).Error; err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid role.")
		return
	}

	var existingUser models.User
	if result := gormDB.Where("username = ?", req.Username).First(&existingUser); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "Username already taken.")
		return
	}
	if result := gormDB.Where("email = ?", req.Email).First(&existingUser); result.Error == nil {
		helpers.RespondWithError(c, http.StatusConflict, "User already exists.")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Phone:    req.Phone,
		FullName: req.FullName,
		RoleID:   role.ID,
		Role:     role,
	}

	if err := gormDB.Create(&user).Error; err != nil {
		middleware.GetLogger(c).Error("failed to create user", zap.Error(err))
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	issueAuthResponse(c, http.StatusCreated, user, "User registered successfully.")
}

// Login accepts either the username or the email as identifier.
func Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid input. Please check your fields.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var user models.User
	err := gormDB.Preload("Role").Where("username = ? OR email = ?", req.Username, req.Username).First(&user).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials.")
		return
	}

	issueAuthResponse(c, http.StatusOK, user, "Login successful.")
}

func GetProfile(c *gin.Context) {
	s := middleware.GetSession(c)
	if s == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "User not authenticated.")
		return
	}

	gormDB := middleware.GetDB(c)
	if gormDB == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}

	var user models.User
	if err := gormDB.Preload("Role").Where("id = ?", s.UserID).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			helpers.RespondWithError(c, http.StatusNotFound, "User not found.")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving user.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"id":       user.ID,
		"username": user.Username,
		"email":    user.Email,
		"phone":    user.Phone,
		"fullName": user.FullName,
		"role":     user.Role.Name,
	})
}
