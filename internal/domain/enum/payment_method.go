package enum

// PaymentMethod represents how a sale was paid
type PaymentMethod string

const (
	PaymentMethodCash         PaymentMethod = "cash"
	PaymentMethodCard         PaymentMethod = "card"
	PaymentMethodMobileMoney  PaymentMethod = "mobile money"
	PaymentMethodBankTransfer PaymentMethod = "bank transfer"
)

func (m PaymentMethod) String() string {
	return string(m)
}

// IsValid reports whether the method is one of the recognized values
func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentMethodCash, PaymentMethodCard, PaymentMethodMobileMoney, PaymentMethodBankTransfer:
		return true
	}
	return false
}
