package enum

// CartStatus represents the lifecycle state of a cart
type CartStatus string

const (
	CartStatusOpen      CartStatus = "open"
	CartStatusCompleted CartStatus = "completed"
	CartStatusCanceled  CartStatus = "canceled"
)

func (s CartStatus) String() string {
	return string(s)
}

// IsValid reports whether the status is one of the recognized values
func (s CartStatus) IsValid() bool {
	switch s {
	case CartStatusOpen, CartStatusCompleted, CartStatusCanceled:
		return true
	}
	return false
}
