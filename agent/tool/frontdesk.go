package tool

import (
	"context"
	"fmt"
	"strconv"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
	storex "github.com/tanpawarit/bank-front-desk/agent/store"
)

// AccountBalance looks up an account and reports its balance and holder.
type AccountBalance struct {
	Store storex.Store
}

func (t *AccountBalance) Name() string {
	return contractx.ToolAccountBalance
}

func (t *AccountBalance) Execute(ctx context.Context, params map[string]string) (string, error) {
	accountID := params[contractx.ParamAccountID]
	account, err := t.Store.GetAccount(ctx, accountID)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Account %s balance: $%.2f (Account Holder: %s)",
		account.ID, account.Balance, account.HolderName), nil
}

// LoanDetails reports the rate, ceiling, and tenure of a loan product.
type LoanDetails struct {
	Store storex.Store
}

func (t *LoanDetails) Name() string {
	return contractx.ToolLoanDetails
}

func (t *LoanDetails) Execute(ctx context.Context, params map[string]string) (string, error) {
	loanType := params[contractx.ParamLoanType]
	loan, err := t.Store.GetLoanProduct(ctx, loanType)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s details: Interest Rate: %s%%, Max Amount: $%s, Tenure: %d years",
		loan.Code,
		strconv.FormatFloat(loan.InterestRate, 'f', -1, 64),
		strconv.FormatFloat(loan.MaxAmount, 'f', -1, 64),
		loan.TenureYears), nil
}

// ScheduleAppointment books an appointment and reports the confirmation id.
// The store accepts any well-formed strings, so the ErrInvalidArgument path
// in the tool contract stays unreachable until validation tightens.
type ScheduleAppointment struct {
	Store storex.Store
}

func (t *ScheduleAppointment) Name() string {
	return contractx.ToolScheduleAppointment
}

func (t *ScheduleAppointment) Execute(ctx context.Context, params map[string]string) (string, error) {
	accountID := params[contractx.ParamAccountID]
	date := params[contractx.ParamDate]
	timeOfDay := params[contractx.ParamTime]

	appt, err := t.Store.CreateAppointment(ctx, accountID, date, timeOfDay)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("Appointment scheduled for %s on %s at %s. Confirmation: %s",
		appt.AccountID, appt.Date, appt.Time, appt.Confirmation), nil
}
