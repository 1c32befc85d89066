package entity

// NotificationEventType labels a license lifecycle event announced to its owner.
type NotificationEventType string

const (
	EventGenerated NotificationEventType = "Generated"
	EventRevoked   NotificationEventType = "Revoked"
	EventActivated NotificationEventType = "Activated"
)

func (e NotificationEventType) String() string {
	return string(e)
}
