package shop

import "github.com/shopspring/decimal"

// PaymentMethod is the customer's chosen way to pay.
type PaymentMethod string

const (
	PaymentUnset PaymentMethod = ""
	PaymentCard  PaymentMethod = "card"
	PaymentCash  PaymentMethod = "cash"
)

// OrderField names a mutable field of the order draft.
type OrderField string

const (
	FieldPayment OrderField = "payment"
	FieldAddress OrderField = "address"
	FieldEmail   OrderField = "email"
	FieldPhone   OrderField = "phone"
)

// Validation messages, first failing rule wins. The order step checks payment
// then address; the contacts step checks email then phone.
const (
	MsgPaymentRequired = "Необходимо выбрать способ оплаты"
	MsgAddressRequired = "Необходимо указать адрес"
	MsgEmailRequired   = "Необходимо указать email"
	MsgPhoneRequired   = "Необходимо указать телефон"
)

// OrderDraft is the in-progress checkout state, mutated field by field across
// the two wizard steps. Total and Items stay zero until CreateOrderPayload
// snapshots them from the basket immediately before submission; the populated
// draft is also the wire payload for POST /order.
type OrderDraft struct {
	Payment PaymentMethod   `json:"payment"`
	Email   string          `json:"email"`
	Phone   string          `json:"phone"`
	Address string          `json:"address"`
	Total   decimal.Decimal `json:"total"`
	Items   []string        `json:"items"`
}

// validateOrder checks the order step fields. Empty string means valid.
func (d OrderDraft) validateOrder() string {
	if d.Payment == PaymentUnset {
		return MsgPaymentRequired
	}
	if d.Address == "" {
		return MsgAddressRequired
	}
	return ""
}

// validateContacts checks the contacts step fields. Empty string means valid.
func (d OrderDraft) validateContacts() string {
	if d.Email == "" {
		return MsgEmailRequired
	}
	if d.Phone == "" {
		return MsgPhoneRequired
	}
	return ""
}
