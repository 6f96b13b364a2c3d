package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salonhub/internal/domain"
)

func (s *Server) adminUsers(c *gin.Context) {
	page, limit, offset := pageParams(c, 10)

	query := s.db.Model(&userRow{})
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR email LIKE ?", like, like)
	}
	if role := c.Query("role"); role != "" {
		query = query.Where("role = ?", role)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	var rows []userRow
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	users := make([]domain.User, 0, len(rows))
	for _, row := range rows {
		users = append(users, row.toDomain())
	}
	respondList(c, users, int(total), page, totalPages(total, limit))
}

type updateUserRequest struct {
	Name       string `json:"name"`
	Phone      string `json:"phone"`
	IsVerified *bool  `json:"isVerified"`
}

func (s *Server) adminUpdateUser(c *gin.Context) {
	row, ok := s.findUser(c)
	if !ok {
		return
	}

	var req updateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid user details")
		return
	}
	if req.Name != "" {
		row.Name = req.Name
	}
	if req.Phone != "" {
		row.Phone = req.Phone
	}
	if req.IsVerified != nil {
		row.IsVerified = *req.IsVerified
	}
	if err := s.db.Save(row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

type updateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

func (s *Server) adminUpdateUserRole(c *gin.Context) {
	row, ok := s.findUser(c)
	if !ok {
		return
	}
	if row.ID == c.GetString("userID") {
		respondError(c, http.StatusConflict, "you cannot change your own role")
		return
	}

	var req updateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "role is required")
		return
	}
	role := domain.Role(req.Role)
	if !role.Valid() {
		respondError(c, http.StatusBadRequest, "unknown role")
		return
	}

	row.Role = string(role)
	if err := s.db.Save(row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

func (s *Server) adminDeleteUser(c *gin.Context) {
	row, ok := s.findUser(c)
	if !ok {
		return
	}
	if row.ID == c.GetString("userID") {
		respondError(c, http.StatusConflict, "you cannot delete your own account")
		return
	}
	if err := s.db.Delete(row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, nil)
}

func (s *Server) findUser(c *gin.Context) (*userRow, bool) {
	var row userRow
	if err := s.db.Where("id = ?", c.Param("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "user not found")
		} else {
			respondError(c, http.StatusInternalServerError, "something went wrong")
		}
		return nil, false
	}
	return &row, true
}
