package domain

import "time"

// Notification type constants.
const (
	NotificationTypeOrder     = "order"
	NotificationTypePayment   = "payment"
	NotificationTypeDelivery  = "delivery"
	NotificationTypePromotion = "promotion"
	NotificationTypeSystem    = "system"
	NotificationTypeSecurity  = "security"
	NotificationTypeSuccess   = "success"
	NotificationTypeWarning   = "warning"
	NotificationTypeInfo      = "info"
)

// Notification represents a server-issued message shown to the customer.
// Notifications are created server-side and mutated only via mark-read and
// delete; a read notification never becomes unread again.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

// ValidNotificationTypes returns the set of valid notification types.
func ValidNotificationTypes() []string {
	return []string{
		NotificationTypeOrder,
		NotificationTypePayment,
		NotificationTypeDelivery,
		NotificationTypePromotion,
		NotificationTypeSystem,
		NotificationTypeSecurity,
		NotificationTypeSuccess,
		NotificationTypeWarning,
		NotificationTypeInfo,
	}
}

// IsValidNotificationType checks whether the given type string is a valid
// notification type.
func IsValidNotificationType(t string) bool {
	for _, v := range ValidNotificationTypes() {
		if v == t {
			return true
		}
	}
	return false
}
