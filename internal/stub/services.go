package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonhub/internal/domain"
)

type serviceRequest struct {
	SalonID     string  `json:"salonId" binding:"required"`
	Name        string  `json:"name" binding:"required,min=2"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"gte=0"`
	Duration    int     `json:"duration" binding:"required"`
	Category    string  `json:"category" binding:"required"`
	IsActive    bool    `json:"isActive"`
}

func (s *Server) listServices(c *gin.Context) {
	page, limit, offset := pageParams(c, 10)

	query := s.db.Model(&serviceRow{})
	if c.GetString("role") == string(domain.RoleSalonOwner) {
		query = query.Where("salon_id IN (?)",
			s.db.Model(&salonRow{}).Select("id").Where("owner_id = ?", c.GetString("userID")))
	}
	if salonID := c.Query("salonId"); salonID != "" {
		query = query.Where("salon_id = ?", salonID)
	}
	if search := c.Query("search"); search != "" {
		query = query.Where("name LIKE ?", "%"+search+"%")
	}
	if category := c.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	var rows []serviceRow
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	services := make([]domain.Service, 0, len(rows))
	for _, row := range rows {
		services = append(services, row.toDomain())
	}
	respondList(c, services, int(total), page, totalPages(total, limit))
}

func (s *Server) getService(c *gin.Context) {
	row, ok := s.accessibleService(c)
	if !ok {
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

func (s *Server) createService(c *gin.Context) {
	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid service details")
		return
	}
	if !domain.ValidServiceDuration(req.Duration) {
		respondError(c, http.StatusBadRequest, "unsupported service duration")
		return
	}
	if !domain.ValidServiceCategory(req.Category) {
		respondError(c, http.StatusBadRequest, "unknown service category")
		return
	}
	if !s.salonAccessible(c, req.SalonID) {
		respondError(c, http.StatusNotFound, "salon not found")
		return
	}

	row := serviceRow{
		ID:          uuid.NewString(),
		SalonID:     req.SalonID,
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Duration:    req.Duration,
		Category:    req.Category,
		IsActive:    req.IsActive,
	}
	if err := s.db.Create(&row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusCreated, row.toDomain())
}

func (s *Server) updateService(c *gin.Context) {
	row, ok := s.accessibleService(c)
	if !ok {
		return
	}

	var req serviceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "invalid service details")
		return
	}
	if !domain.ValidServiceDuration(req.Duration) {
		respondError(c, http.StatusBadRequest, "unsupported service duration")
		return
	}
	if !domain.ValidServiceCategory(req.Category) {
		respondError(c, http.StatusBadRequest, "unknown service category")
		return
	}

	row.Name = req.Name
	row.Description = req.Description
	row.Price = req.Price
	row.Duration = req.Duration
	row.Category = req.Category
	row.IsActive = req.IsActive
	if err := s.db.Save(row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

func (s *Server) deleteService(c *gin.Context) {
	row, ok := s.accessibleService(c)
	if !ok {
		return
	}
	if err := s.db.Delete(row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, nil)
}

func (s *Server) accessibleService(c *gin.Context) (*serviceRow, bool) {
	var row serviceRow
	if err := s.db.Where("id = ?", c.Param("id")).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "service not found")
		} else {
			respondError(c, http.StatusInternalServerError, "something went wrong")
		}
		return nil, false
	}
	if !s.salonAccessible(c, row.SalonID) {
		respondError(c, http.StatusNotFound, "service not found")
		return nil, false
	}
	return &row, true
}

// salonAccessible reports whether the caller may manage the salon:
// admins always, owners only for their own salons.
func (s *Server) salonAccessible(c *gin.Context, salonID string) bool {
	if c.GetString("role") == string(domain.RoleAdmin) {
		var count int64
		s.db.Model(&salonRow{}).Where("id = ?", salonID).Count(&count)
		return count > 0
	}
	var count int64
	s.db.Model(&salonRow{}).Where("id = ? AND owner_id = ?", salonID, c.GetString("userID")).Count(&count)
	return count > 0
}
