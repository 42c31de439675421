package model

// PaymentMethod 付款方式
type PaymentMethod string

const (
	PaymentCredit PaymentMethod = "credit"
	PaymentDebit  PaymentMethod = "debit"
)

func (m PaymentMethod) IsValid() bool {
	switch m {
	case PaymentCredit, PaymentDebit:
		return true
	}
	return false
}

// Payment records the method and amount for one order. It is created at
// checkout and immutable thereafter; the amount equals the sum of the order's
// ticket prices at creation time.
type Payment struct {
	Method PaymentMethod `json:"payment_method"`
	Amount float64       `json:"amount"`
}
