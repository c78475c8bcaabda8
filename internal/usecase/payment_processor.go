package usecase

import (
	"fmt"
	"strings"

	"hotel-booking/internal/data/entity"
	apperrors "hotel-booking/pkg/errors"

	"github.com/google/uuid"
)

// paymentProcessor handles one payment method at the front desk. The
// processors are in-process; Process checks the method-specific details
// and returns a receipt reference.
type paymentProcessor interface {
	Method() entity.PaymentMethod
	Label() string
	RequiredFields() []string
	Process(amount float64, details map[string]string) (string, error)
}

// Methods in display order.
var paymentMethods = []entity.PaymentMethod{
	entity.PaymentMethodCreditCard,
	entity.PaymentMethodDebitCard,
	entity.PaymentMethodCash,
	entity.PaymentMethodUPI,
}

func newPaymentProcessor(method entity.PaymentMethod) (paymentProcessor, bool) {
	switch method {
	case entity.PaymentMethodCreditCard:
		return &cardProcessor{method: entity.PaymentMethodCreditCard, label: "Credit Card", prefix: "CC"}, true
	case entity.PaymentMethodDebitCard:
		return &cardProcessor{method: entity.PaymentMethodDebitCard, label: "Debit Card", prefix: "DC"}, true
	case entity.PaymentMethodCash:
		return &cashProcessor{}, true
	case entity.PaymentMethodUPI:
		return &upiProcessor{}, true
	default:
		return nil, false
	}
}

// ==================== CARD ====================

type cardProcessor struct {
	method entity.PaymentMethod
	label  string
	prefix string
}

func (p *cardProcessor) Method() entity.PaymentMethod { return p.method }
func (p *cardProcessor) Label() string                { return p.label }

func (p *cardProcessor) RequiredFields() []string {
	return []string{"card_number", "expiry", "cvv"}
}

func (p *cardProcessor) Process(amount float64, details map[string]string) (string, error) {
	if err := requireFields(details, p.RequiredFields()); err != nil {
		return "", err
	}

	cardNumber := strings.ReplaceAll(details["card_number"], " ", "")
	if len(cardNumber) != 16 || !isDigits(cardNumber) {
		return "", apperrors.Validation("card number must be 16 digits", nil)
	}
	if len(details["cvv"]) != 3 || !isDigits(details["cvv"]) {
		return "", apperrors.Validation("cvv must be 3 digits", nil)
	}

	return receiptReference(p.prefix), nil
}

// ==================== CASH ====================

type cashProcessor struct{}

func (p *cashProcessor) Method() entity.PaymentMethod { return entity.PaymentMethodCash }
func (p *cashProcessor) Label() string                { return "Cash" }
func (p *cashProcessor) RequiredFields() []string     { return nil }

func (p *cashProcessor) Process(amount float64, details map[string]string) (string, error) {
	return receiptReference("CASH"), nil
}

// ==================== UPI ====================

type upiProcessor struct{}

func (p *upiProcessor) Method() entity.PaymentMethod { return entity.PaymentMethodUPI }
func (p *upiProcessor) Label() string                { return "UPI" }
func (p *upiProcessor) RequiredFields() []string     { return []string{"upi_id"} }

func (p *upiProcessor) Process(amount float64, details map[string]string) (string, error) {
	if err := requireFields(details, p.RequiredFields()); err != nil {
		return "", err
	}

	if !strings.Contains(details["upi_id"], "@") {
		return "", apperrors.Validation("upi id must contain @", nil)
	}

	return receiptReference("UPI"), nil
}

// ==================== HELPER METHODS ====================

func requireFields(details map[string]string, fields []string) error {
	missing := make(map[string]any)
	for _, field := range fields {
		if details[field] == "" {
			missing[field] = "This field is required"
		}
	}

	if len(missing) > 0 {
		return apperrors.Validation("missing payment details", missing)
	}

	return nil
}

func isDigits(value string) bool {
	for _, r := range value {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(value) > 0
}

func receiptReference(prefix string) string {
	return fmt.Sprintf("%s-%s", prefix, strings.ToUpper(uuid.New().String()[:8]))
}
