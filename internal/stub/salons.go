package stub

import (
	"encoding/json"
	"errors"
	"net/http"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"salonhub/internal/domain"
)

func (s *Server) ownerSalons(c *gin.Context) {
	page, limit, offset := pageParams(c, 6)

	query := s.db.Model(&salonRow{}).Where("owner_id = ?", c.GetString("userID"))
	query = applySalonFilters(query, c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	var rows []salonRow
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondList(c, salonsToDomain(rows), int(total), page, totalPages(total, limit))
}

func (s *Server) ownerSalon(c *gin.Context) {
	row, ok := s.ownedSalon(c)
	if !ok {
		return
	}
	salon := row.toDomain()

	var services []serviceRow
	if err := s.db.Where("salon_id = ?", row.ID).Find(&services).Error; err == nil {
		for _, svc := range services {
			salon.Services = append(salon.Services, svc.toDomain())
		}
	}
	respondOK(c, http.StatusOK, salon)
}

func (s *Server) ownerCreateSalon(c *gin.Context) {
	name := c.PostForm("name")
	address := c.PostForm("address")
	if name == "" || address == "" {
		respondError(c, http.StatusBadRequest, "name and address are required")
		return
	}

	row := salonRow{
		ID:           uuid.NewString(),
		OwnerID:      c.GetString("userID"),
		Name:         name,
		Description:  c.PostForm("description"),
		Address:      address,
		Phone:        c.PostForm("phone"),
		Email:        c.PostForm("email"),
		Images:       listToString(collectImageRefs(c)),
		WorkingHours: parseWorkingHoursField(c),
		Status:       string(domain.SalonPending),
	}
	if err := s.db.Create(&row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusCreated, row.toDomain())
}

func (s *Server) ownerUpdateSalon(c *gin.Context) {
	row, ok := s.ownedSalon(c)
	if !ok {
		return
	}

	if v := c.PostForm("name"); v != "" {
		row.Name = v
	}
	if v := c.PostForm("description"); v != "" {
		row.Description = v
	}
	if v := c.PostForm("address"); v != "" {
		row.Address = v
	}
	if v := c.PostForm("phone"); v != "" {
		row.Phone = v
	}
	if v := c.PostForm("email"); v != "" {
		row.Email = v
	}
	if v := c.PostForm("workingHours"); v != "" {
		var wh domain.WorkingHours
		if err := json.Unmarshal([]byte(v), &wh); err == nil {
			row.WorkingHours = hoursToString(wh)
		}
	}
	if refs := collectImageRefs(c); len(refs) > 0 {
		row.Images = listToString(append(stringToList(row.Images), refs...))
	}

	if err := s.db.Save(row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

func (s *Server) adminSalons(c *gin.Context) {
	page, limit, offset := pageParams(c, 6)

	query := applySalonFilters(s.db.Model(&salonRow{}), c)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	var rows []salonRow
	if err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	respondList(c, salonsToDomain(rows), int(total), page, totalPages(total, limit))
}

type salonStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) adminUpdateSalonStatus(c *gin.Context) {
	var req salonStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}
	next := domain.SalonStatus(req.Status)
	if !next.Valid() {
		respondError(c, http.StatusBadRequest, "unknown salon status")
		return
	}

	var row salonRow
	if err := s.db.Where("id = ?", c.Param("id")).First(&row).Error; err != nil {
		respondError(c, http.StatusNotFound, "salon not found")
		return
	}
	if domain.SalonStatus(row.Status) != domain.SalonPending && next != domain.SalonStatus(row.Status) {
		respondError(c, http.StatusConflict, "salon has already been reviewed")
		return
	}

	row.Status = string(next)
	row.IsVerified = next == domain.SalonApproved
	if err := s.db.Save(&row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}

func (s *Server) adminDeleteSalon(c *gin.Context) {
	id := c.Param("id")
	var row salonRow
	if err := s.db.Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "salon not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("salon_id = ?", id).Delete(&serviceRow{}).Error; err != nil {
			return err
		}
		if err := tx.Where("salon_id = ?", id).Delete(&bookingRow{}).Error; err != nil {
			return err
		}
		return tx.Delete(&row).Error
	})
	if err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, nil)
}

func (s *Server) ownedSalon(c *gin.Context) (*salonRow, bool) {
	var row salonRow
	err := s.db.Where("id = ? AND owner_id = ?", c.Param("id"), c.GetString("userID")).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "salon not found")
		} else {
			respondError(c, http.StatusInternalServerError, "something went wrong")
		}
		return nil, false
	}
	return &row, true
}

func applySalonFilters(query *gorm.DB, c *gin.Context) *gorm.DB {
	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("name LIKE ? OR address LIKE ?", like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	return query
}

func salonsToDomain(rows []salonRow) []domain.Salon {
	salons := make([]domain.Salon, 0, len(rows))
	for _, row := range rows {
		salons = append(salons, row.toDomain())
	}
	return salons
}

// collectImageRefs records uploaded file names as image references.
// Actual image storage is out of scope for the stub.
func collectImageRefs(c *gin.Context) []string {
	form, err := c.MultipartForm()
	if err != nil {
		return nil
	}
	var refs []string
	for _, file := range form.File["images"] {
		refs = append(refs, "/uploads/"+uuid.NewString()+filepath.Ext(file.Filename))
	}
	return refs
}

func parseWorkingHoursField(c *gin.Context) string {
	raw := c.PostForm("workingHours")
	if raw == "" {
		return hoursToString(domain.DefaultWorkingHours())
	}
	var wh domain.WorkingHours
	if err := json.Unmarshal([]byte(raw), &wh); err != nil {
		return hoursToString(domain.DefaultWorkingHours())
	}
	return hoursToString(wh)
}
