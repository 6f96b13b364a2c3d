package stub

import (
	"crypto/rand"
	"errors"
	"fmt"
	"log"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"salonhub/internal/domain"
)

const resetCodeTTL = 10 * time.Minute

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

func (s *Server) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and password are required")
		return
	}

	var user userRow
	err := s.db.Where("email = ?", normalizeEmail(req.Email)).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusUnauthorized, "invalid email or password")
			return
		}
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)) != nil {
		respondError(c, http.StatusUnauthorized, "invalid email or password")
		return
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondOK(c, http.StatusOK, gin.H{
		"token": token,
		"user":  user.toDomain(),
	})
}

type registerRequest struct {
	Name     string `json:"name" binding:"required,min=2"`
	Email    string `json:"email" binding:"required,email"`
	Phone    string `json:"phone"`
	Password string `json:"password" binding:"required,min=6"`
}

func (s *Server) register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid registration details")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	user := userRow{
		ID:           uuid.NewString(),
		Name:         req.Name,
		Email:        normalizeEmail(req.Email),
		Phone:        req.Phone,
		PasswordHash: string(hash),
		Role:         string(domain.RoleSalonOwner),
	}
	if err := s.db.Create(&user).Error; err != nil {
		if isDuplicate(err) {
			respondError(c, http.StatusConflict, "email already registered")
			return
		}
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	token, err := s.jwt.GenerateToken(user.ID, user.Role)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondOK(c, http.StatusCreated, gin.H{
		"token": token,
		"user":  user.toDomain(),
	})
}

func (s *Server) me(c *gin.Context) {
	var user userRow
	if err := s.db.Where("id = ?", c.GetString("userID")).First(&user).Error; err != nil {
		respondError(c, http.StatusNotFound, "user not found")
		return
	}
	respondOK(c, http.StatusOK, user.toDomain())
}

func (s *Server) logout(c *gin.Context) {
	// The stub issues stateless tokens; logout is an acknowledgement.
	respondOK(c, http.StatusOK, nil)
}

type emailRequest struct {
	Email string `json:"email" binding:"required,email"`
}

func (s *Server) forgotPassword(c *gin.Context) {
	var req emailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "a valid email is required")
		return
	}
	email := normalizeEmail(req.Email)

	var user userRow
	if err := s.db.Where("email = ?", email).First(&user).Error; err != nil {
		// Do not reveal whether the address exists.
		respondOK(c, http.StatusOK, nil)
		return
	}

	code, err := generateResetCode()
	if err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	row := resetCodeRow{
		Email:     email,
		Code:      code,
		Verified:  false,
		ExpiresAt: time.Now().Add(resetCodeTTL),
	}
	if err := s.db.Where("email = ?", email).Delete(&resetCodeRow{}).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	if err := s.db.Create(&row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	log.Printf("[DEV-EMAIL] password reset code email=%s code=%s", email, code)
	respondOK(c, http.StatusOK, nil)
}

type verifyOTPRequest struct {
	Email string `json:"email" binding:"required,email"`
	OTP   string `json:"otp" binding:"required"`
}

func (s *Server) verifyResetOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "email and code are required")
		return
	}

	row, ok := s.activeResetCode(normalizeEmail(req.Email), req.OTP)
	if !ok {
		respondError(c, http.StatusBadRequest, "invalid or expired code")
		return
	}

	if err := s.db.Model(&resetCodeRow{}).Where("email = ?", row.Email).Update("verified", true).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, nil)
}

type resetPasswordRequest struct {
	Email       string `json:"email" binding:"required,email"`
	OTP         string `json:"otp" binding:"required"`
	NewPassword string `json:"newPassword" binding:"required,min=6"`
}

func (s *Server) resetPassword(c *gin.Context) {
	var req resetPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid reset details")
		return
	}
	email := normalizeEmail(req.Email)

	row, ok := s.activeResetCode(email, req.OTP)
	if !ok || !row.Verified {
		respondError(c, http.StatusBadRequest, "invalid or expired code")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	if err := s.db.Model(&userRow{}).Where("email = ?", email).Update("password_hash", string(hash)).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	if err := s.db.Where("email = ?", email).Delete(&resetCodeRow{}).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, nil)
}

func (s *Server) notificationSettings(c *gin.Context) {
	var row notificationSettingsRow
	err := s.db.Where("user_id = ?", c.GetString("userID")).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondOK(c, http.StatusOK, domain.DefaultNotificationSettings())
			return
		}
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

func (s *Server) updateNotificationSettings(c *gin.Context) {
	var settings domain.NotificationSettings
	if err := c.ShouldBindJSON(&settings); err != nil {
		respondError(c, http.StatusBadRequest, "invalid settings")
		return
	}
	row := notificationSettingsRow{
		UserID:         c.GetString("userID"),
		EmailEnabled:   settings.EmailEnabled,
		SMSEnabled:     settings.SMSEnabled,
		BookingAlerts:  settings.BookingAlerts,
		ReminderHours:  settings.ReminderHours,
		MarketingMails: settings.MarketingMails,
	}
	if err := s.db.Save(&row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

func (s *Server) activeResetCode(email, code string) (*resetCodeRow, bool) {
	var row resetCodeRow
	if err := s.db.Where("email = ?", email).First(&row).Error; err != nil {
		return nil, false
	}
	if row.Code != code || time.Now().After(row.ExpiresAt) {
		return nil, false
	}
	return &row, true
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func generateResetCode() (string, error) {
	n, err := rand.Int(rand.Reader, big.NewInt(1000000))
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%06d", n.Int64()), nil
}

// isDuplicate recognizes unique-constraint violations from both backing
// stores.
func isDuplicate(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
