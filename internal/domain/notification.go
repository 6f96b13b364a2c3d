package domain

type NotificationSettings struct {
	EmailEnabled   bool `json:"emailEnabled"`
	SMSEnabled     bool `json:"smsEnabled"`
	BookingAlerts  bool `json:"bookingAlerts"`
	ReminderHours  int  `json:"reminderHours"`
	MarketingMails bool `json:"marketingMails"`
}

// DefaultNotificationSettings is what the dashboard falls back to when
// the settings fetch fails. A missing preference must never block the UI.
func DefaultNotificationSettings() NotificationSettings {
	return NotificationSettings{
		EmailEnabled:  true,
		BookingAlerts: true,
		ReminderHours: 24,
	}
}
