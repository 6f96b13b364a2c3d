package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"salonhub/internal/domain"
)

func (s *Server) ownerSalonBookings(c *gin.Context) {
	if _, ok := s.ownedSalon(c); !ok {
		return
	}
	s.listBookings(c, s.db.Model(&bookingRow{}).Where("salon_id = ?", c.Param("id")))
}

func (s *Server) adminBookings(c *gin.Context) {
	s.listBookings(c, s.db.Model(&bookingRow{}))
}

func (s *Server) listBookings(c *gin.Context, query *gorm.DB) {
	page, limit, offset := pageParams(c, 10)

	if search := c.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("customer_name LIKE ? OR service_name LIKE ?", like, like)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	var rows []bookingRow
	if err := query.Order("date DESC, time DESC").Limit(limit).Offset(offset).Find(&rows).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	bookings := make([]domain.Booking, 0, len(rows))
	for _, row := range rows {
		bookings = append(bookings, row.toDomain())
	}
	respondList(c, bookings, int(total), page, totalPages(total, limit))
}

type bookingStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

func (s *Server) updateBookingStatus(c *gin.Context) {
	var req bookingStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "status is required")
		return
	}
	next := domain.BookingStatus(req.Status)
	if !next.Valid() {
		respondError(c, http.StatusBadRequest, "unknown booking status")
		return
	}

	var row bookingRow
	err := s.db.Where("id = ?", c.Param("id")).First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			respondError(c, http.StatusNotFound, "booking not found")
			return
		}
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}

	if !s.salonAccessible(c, row.SalonID) {
		respondError(c, http.StatusNotFound, "booking not found")
		return
	}

	current := domain.BookingStatus(row.Status)
	if !current.CanTransitionTo(next) {
		respondError(c, http.StatusConflict, "invalid booking status transition")
		return
	}

	row.Status = string(next)
	if err := s.db.Save(&row).Error; err != nil {
		respondError(c, http.StatusInternalServerError, "something went wrong")
		return
	}
	respondOK(c, http.StatusOK, row.toDomain())
}
