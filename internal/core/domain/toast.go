package domain

import "time"

// ToastType classifies a transient notification.
type ToastType string

const (
	ToastSuccess ToastType = "success"
	ToastError   ToastType = "error"
	ToastInfo    ToastType = "info"
)

const (
	ToastDuration       = 4000 * time.Millisecond
	ToastActionDuration = 7000 * time.Millisecond
)

// ToastAction is an optional follow-up the client can trigger from a toast,
// expressed as the request to send.
type ToastAction struct {
	Label  string `json:"label"`
	Method string `json:"method"`
	Href   string `json:"href"`
}

// Toast is a transient user notification. It is never persisted.
type Toast struct {
	ID        string       `json:"id"`
	Message   string       `json:"message"`
	Type      ToastType    `json:"type"`
	Action    *ToastAction `json:"action,omitempty"`
	CreatedAt time.Time    `json:"createdAt"`
	ExpiresAt time.Time    `json:"expiresAt"`
}

// Lifetime is how long the toast stays visible; longer when it has an action.
func (t Toast) Lifetime() time.Duration {
	if t.Action != nil {
		return ToastActionDuration
	}
	return ToastDuration
}

func SuccessToast(msg string) Toast { return Toast{Message: msg, Type: ToastSuccess} }
func ErrorToast(msg string) Toast   { return Toast{Message: msg, Type: ToastError} }
func InfoToast(msg string) Toast    { return Toast{Message: msg, Type: ToastInfo} }
