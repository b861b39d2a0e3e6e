package store

import "context"

// AccountType is the kind of bank account.
type AccountType string

const (
	AccountTypeSavings AccountType = "Savings"
	AccountTypeCurrent AccountType = "Current"
)

// Account is a bank account record. Seeded once at process start and
// read-only afterwards.
type Account struct {
	ID          string      `json:"account_id"`
	Balance     float64     `json:"balance"`
	HolderName  string      `json:"name"`
	AccountType AccountType `json:"account_type"`
}

// LoanProduct is one entry of the static loan catalog.
type LoanProduct struct {
	Code         string  `json:"loan_type"`
	InterestRate float64 `json:"interest_rate"`
	MaxAmount    float64 `json:"max_amount"`
	TenureYears  int     `json:"tenure_years"`
}

// Appointment is an append-only booking record. Confirmation ids are
// store-generated, unique, and strictly increasing ("APPT-1", "APPT-2", ...).
type Appointment struct {
	AccountID    string `json:"account_id"`
	Date         string `json:"date"`
	Time         string `json:"time"`
	Confirmation string `json:"confirmation"`
}

// Store is the record-store contract used by the tool layer. The store does
// not validate date/time formats or that an appointment's account id exists;
// any well-formed string is accepted.
type Store interface {
	GetAccount(ctx context.Context, id string) (Account, error)
	GetLoanProduct(ctx context.Context, code string) (LoanProduct, error)
	CreateAppointment(ctx context.Context, accountID, date, timeOfDay string) (Appointment, error)
}
