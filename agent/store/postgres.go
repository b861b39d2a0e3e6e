package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
)

// PostgresConfig connects the record store to Postgres instead of process
// memory. Used when the store outlives a single process.
type PostgresConfig struct {
	DSN     string        `envconfig:"DSN" split_words:"true" required:"true"`
	Timeout time.Duration `envconfig:"TIMEOUT" split_words:"true" default:"10s"`
}

type accountRow struct {
	bun.BaseModel `bun:"table:accounts"`

	ID          string  `bun:"id,pk"`
	Balance     float64 `bun:"balance,notnull"`
	HolderName  string  `bun:"holder_name,notnull"`
	AccountType string  `bun:"account_type,notnull"`
}

type loanProductRow struct {
	bun.BaseModel `bun:"table:loan_products"`

	Code         string  `bun:"code,pk"`
	InterestRate float64 `bun:"interest_rate,notnull"`
	MaxAmount    float64 `bun:"max_amount,notnull"`
	TenureYears  int     `bun:"tenure_years,notnull"`
}

type appointmentRow struct {
	bun.BaseModel `bun:"table:appointments"`

	Seq       int64  `bun:"seq,pk,autoincrement"`
	AccountID string `bun:"account_id,notnull"`
	Date      string `bun:"date,notnull"`
	Time      string `bun:"time,notnull"`
}

// PostgresStore implements Store on Postgres via bun. The appointments table
// sequence provides the confirmation ordinal, so concurrent bookings are
// serialized by the database.
type PostgresStore struct {
	db *bun.DB
}

// NewPostgresStore opens the connection, creates the schema if missing, and
// seeds the demo accounts and loan catalog.
func NewPostgresStore(ctx context.Context, cfg PostgresConfig) (*PostgresStore, error) {
	sqldb := sql.OpenDB(pgdriver.NewConnector(
		pgdriver.WithDSN(cfg.DSN),
		pgdriver.WithTimeout(cfg.Timeout),
	))
	db := bun.NewDB(sqldb, pgdialect.New())

	s := &PostgresStore{db: db}
	if err := s.init(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return s, nil
}

func (s *PostgresStore) init(ctx context.Context) error {
	models := []any{
		(*accountRow)(nil),
		(*loanProductRow)(nil),
		(*appointmentRow)(nil),
	}
	for _, model := range models {
		if _, err := s.db.NewCreateTable().Model(model).IfNotExists().Exec(ctx); err != nil {
			return fmt.Errorf("create table: %w", err)
		}
	}

	seedAccounts := []accountRow{
		{ID: "123456", Balance: 5000.00, HolderName: "John Doe", AccountType: string(AccountTypeSavings)},
		{ID: "789012", Balance: 15000.00, HolderName: "Jane Smith", AccountType: string(AccountTypeCurrent)},
	}
	if _, err := s.db.NewInsert().Model(&seedAccounts).On("CONFLICT (id) DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("seed accounts: %w", err)
	}

	seedLoans := []loanProductRow{
		{Code: "home_loan", InterestRate: 5.5, MaxAmount: 1000000, TenureYears: 20},
		{Code: "personal_loan", InterestRate: 8.0, MaxAmount: 50000, TenureYears: 5},
	}
	if _, err := s.db.NewInsert().Model(&seedLoans).On("CONFLICT (code) DO NOTHING").Exec(ctx); err != nil {
		return fmt.Errorf("seed loan products: %w", err)
	}

	return nil
}

func (s *PostgresStore) Close() error {
	return s.db.Close()
}

func (s *PostgresStore) GetAccount(ctx context.Context, id string) (Account, error) {
	var row accountRow
	err := s.db.NewSelect().Model(&row).Where("id = ?", id).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return Account{}, fmt.Errorf("%w: account id=%s", contractx.ErrNotFound, id)
	}
	if err != nil {
		return Account{}, fmt.Errorf("%w: select account: %v", contractx.ErrUpstreamUnavailable, err)
	}
	return Account{
		ID:          row.ID,
		Balance:     row.Balance,
		HolderName:  row.HolderName,
		AccountType: AccountType(row.AccountType),
	}, nil
}

func (s *PostgresStore) GetLoanProduct(ctx context.Context, code string) (LoanProduct, error) {
	var row loanProductRow
	err := s.db.NewSelect().Model(&row).Where("code = ?", code).Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return LoanProduct{}, fmt.Errorf("%w: loan code=%s", contractx.ErrNotFound, code)
	}
	if err != nil {
		return LoanProduct{}, fmt.Errorf("%w: select loan product: %v", contractx.ErrUpstreamUnavailable, err)
	}
	return LoanProduct{
		Code:         row.Code,
		InterestRate: row.InterestRate,
		MaxAmount:    row.MaxAmount,
		TenureYears:  row.TenureYears,
	}, nil
}

func (s *PostgresStore) CreateAppointment(ctx context.Context, accountID, date, timeOfDay string) (Appointment, error) {
	row := appointmentRow{
		AccountID: accountID,
		Date:      date,
		Time:      timeOfDay,
	}
	if _, err := s.db.NewInsert().Model(&row).Returning("seq").Exec(ctx); err != nil {
		return Appointment{}, fmt.Errorf("%w: insert appointment: %v", contractx.ErrUpstreamUnavailable, err)
	}
	return Appointment{
		AccountID:    accountID,
		Date:         date,
		Time:         timeOfDay,
		Confirmation: fmt.Sprintf("APPT-%d", row.Seq),
	}, nil
}
