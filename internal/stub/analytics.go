package stub

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"salonhub/internal/domain"
)

func (s *Server) systemAnalytics(c *gin.Context) {
	var report domain.SystemAnalytics
	var count int64

	s.db.Model(&userRow{}).Count(&count)
	report.TotalUsers = int(count)
	s.db.Model(&salonRow{}).Count(&count)
	report.TotalSalons = int(count)
	s.db.Model(&salonRow{}).Where("status = ?", domain.SalonPending).Count(&count)
	report.PendingSalons = int(count)
	s.db.Model(&bookingRow{}).Count(&count)
	report.TotalBookings = int(count)
	report.TotalRevenue = s.completedRevenue("")

	respondOK(c, http.StatusOK, report)
}

func (s *Server) userAnalytics(c *gin.Context) {
	var report domain.UserAnalytics
	var count int64

	s.db.Model(&userRow{}).Where("role = ?", domain.RoleCustomer).Count(&count)
	report.TotalCustomers = int(count)
	s.db.Model(&userRow{}).Where("role = ?", domain.RoleSalonOwner).Count(&count)
	report.TotalSalonOwners = int(count)
	s.db.Model(&userRow{}).Where("is_verified = ?", true).Count(&count)
	report.VerifiedUsers = int(count)

	respondOK(c, http.StatusOK, report)
}

func (s *Server) bookingAnalytics(c *gin.Context) {
	var report domain.BookingAnalytics
	var count int64

	s.db.Model(&bookingRow{}).Where("status = ?", domain.BookingPending).Count(&count)
	report.Pending = int(count)
	s.db.Model(&bookingRow{}).Where("status = ?", domain.BookingConfirmed).Count(&count)
	report.Confirmed = int(count)
	s.db.Model(&bookingRow{}).Where("status = ?", domain.BookingCompleted).Count(&count)
	report.Completed = int(count)
	s.db.Model(&bookingRow{}).Where("status = ?", domain.BookingCancelled).Count(&count)
	report.Cancelled = int(count)
	report.TotalRevenue = s.completedRevenue("")

	respondOK(c, http.StatusOK, report)
}

func (s *Server) salonAnalytics(c *gin.Context) {
	var report domain.SalonDirectoryAnalytics
	var count int64

	s.db.Model(&salonRow{}).Where("status = ?", domain.SalonApproved).Count(&count)
	report.Approved = int(count)
	s.db.Model(&salonRow{}).Where("status = ?", domain.SalonPending).Count(&count)
	report.Pending = int(count)
	s.db.Model(&salonRow{}).Where("status = ?", domain.SalonRejected).Count(&count)
	report.Rejected = int(count)

	var avg *float64
	s.db.Model(&salonRow{}).Select("AVG(rating)").Where("review_count > 0").Scan(&avg)
	if avg != nil {
		report.AverageRating = *avg
	}

	respondOK(c, http.StatusOK, report)
}

func (s *Server) ownerSalonAnalytics(c *gin.Context) {
	row, ok := s.ownedSalon(c)
	if !ok {
		return
	}

	report := domain.SalonAnalytics{SalonID: row.ID, AverageRating: row.Rating}
	var count int64

	s.db.Model(&bookingRow{}).Where("salon_id = ?", row.ID).Count(&count)
	report.TotalBookings = int(count)
	s.db.Model(&bookingRow{}).Where("salon_id = ? AND status = ?", row.ID, domain.BookingCompleted).Count(&count)
	report.CompletedBookings = int(count)
	s.db.Model(&bookingRow{}).Where("salon_id = ? AND status = ?", row.ID, domain.BookingCancelled).Count(&count)
	report.CancelledBookings = int(count)
	report.Revenue = s.completedRevenue(row.ID)

	respondOK(c, http.StatusOK, report)
}

// completedRevenue sums completed-booking amounts, optionally scoped to
// one salon.
func (s *Server) completedRevenue(salonID string) float64 {
	query := s.db.Model(&bookingRow{}).Select("COALESCE(SUM(total_amount), 0)").
		Where("status = ?", domain.BookingCompleted)
	if salonID != "" {
		query = query.Where("salon_id = ?", salonID)
	}
	var sum float64
	query.Scan(&sum)
	return sum
}
