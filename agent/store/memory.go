package store

import (
	"context"
	"fmt"
	"sync"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
)

// MemoryOption customizes a MemoryStore before first use.
type MemoryOption func(*MemoryStore)

// WithAccounts replaces the seeded account set.
func WithAccounts(accounts []Account) MemoryOption {
	return func(s *MemoryStore) {
		s.accounts = make(map[string]Account, len(accounts))
		for _, a := range accounts {
			s.accounts[a.ID] = a
		}
	}
}

// WithLoanProducts replaces the seeded loan catalog.
func WithLoanProducts(loans []LoanProduct) MemoryOption {
	return func(s *MemoryStore) {
		s.loans = make(map[string]LoanProduct, len(loans))
		for _, l := range loans {
			s.loans[l.Code] = l
		}
	}
}

// MemoryStore keeps all records in process memory. Account and loan data are
// immutable after construction; the appointment log and its sequence counter
// are guarded by a mutex so concurrent bookings stay linearizable.
type MemoryStore struct {
	accounts map[string]Account
	loans    map[string]LoanProduct

	mu           sync.Mutex
	appointments []Appointment
	seq          int
}

// NewMemoryStore returns a store seeded with the demo data set unless
// overridden by options.
func NewMemoryStore(opts ...MemoryOption) *MemoryStore {
	s := &MemoryStore{
		accounts: map[string]Account{
			"123456": {ID: "123456", Balance: 5000.00, HolderName: "John Doe", AccountType: AccountTypeSavings},
			"789012": {ID: "789012", Balance: 15000.00, HolderName: "Jane Smith", AccountType: AccountTypeCurrent},
		},
		loans: map[string]LoanProduct{
			"home_loan":     {Code: "home_loan", InterestRate: 5.5, MaxAmount: 1000000, TenureYears: 20},
			"personal_loan": {Code: "personal_loan", InterestRate: 8.0, MaxAmount: 50000, TenureYears: 5},
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(s)
		}
	}
	return s
}

func (s *MemoryStore) GetAccount(_ context.Context, id string) (Account, error) {
	a, ok := s.accounts[id]
	if !ok {
		return Account{}, fmt.Errorf("%w: account id=%s", contractx.ErrNotFound, id)
	}
	return a, nil
}

func (s *MemoryStore) GetLoanProduct(_ context.Context, code string) (LoanProduct, error) {
	l, ok := s.loans[code]
	if !ok {
		return LoanProduct{}, fmt.Errorf("%w: loan code=%s", contractx.ErrNotFound, code)
	}
	return l, nil
}

// CreateAppointment assigns the next confirmation ordinal and appends the
// record. It never rejects well-formed string inputs.
func (s *MemoryStore) CreateAppointment(_ context.Context, accountID, date, timeOfDay string) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	appt := Appointment{
		AccountID:    accountID,
		Date:         date,
		Time:         timeOfDay,
		Confirmation: fmt.Sprintf("APPT-%d", s.seq),
	}
	s.appointments = append(s.appointments, appt)
	return appt, nil
}

// Appointments returns a copy of the appointment log.
func (s *MemoryStore) Appointments() []Appointment {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]Appointment(nil), s.appointments...)
}
