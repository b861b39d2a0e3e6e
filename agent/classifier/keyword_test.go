package classifier

import (
	"testing"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
)

func TestClassifyAccountBalance(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, matched := c.Classify("account balance for 123456")
	if !matched {
		t.Fatal("expected a match")
	}
	if intent.Tool != contractx.ToolAccountBalance {
		t.Fatalf("unexpected tool: %s", intent.Tool)
	}
	if got := intent.Params[contractx.ParamAccountID]; got != "123456" {
		t.Fatalf("unexpected account id: %s", got)
	}
}

func TestClassifyAccountDetailsExtractsOtherID(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, matched := c.Classify("show account details of 789012 please")
	if !matched {
		t.Fatal("expected a match")
	}
	if got := intent.Params[contractx.ParamAccountID]; got != "789012" {
		t.Fatalf("unexpected account id: %s", got)
	}
}

func TestClassifyAccountBalanceDefaultID(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, _ := c.Classify("what is my account balance?")
	if got := intent.Params[contractx.ParamAccountID]; got != DefaultAccountID {
		t.Fatalf("expected default account id, got %s", got)
	}
}

func TestClassifyPrecedenceAccountOverLoan(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, matched := c.Classify("what is my account balance, also tell me about a loan")
	if !matched {
		t.Fatal("expected a match")
	}
	if intent.Tool != contractx.ToolAccountBalance {
		t.Fatalf("account_balance must win over loan_details, got %s", intent.Tool)
	}
}

func TestClassifyLoanDetails(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, matched := c.Classify("tell me about the personal_loan interest rate")
	if !matched {
		t.Fatal("expected a match")
	}
	if intent.Tool != contractx.ToolLoanDetails {
		t.Fatalf("unexpected tool: %s", intent.Tool)
	}
	if got := intent.Params[contractx.ParamLoanType]; got != "personal_loan" {
		t.Fatalf("unexpected loan type: %s", got)
	}
}

func TestClassifyLoanDefaultType(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, _ := c.Classify("do you offer any loan?")
	if got := intent.Params[contractx.ParamLoanType]; got != DefaultLoanType {
		t.Fatalf("expected default loan type, got %s", got)
	}
}

func TestClassifyAppointment(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, matched := c.Classify("I want to schedule a meeting for 789012")
	if !matched {
		t.Fatal("expected a match")
	}
	if intent.Tool != contractx.ToolScheduleAppointment {
		t.Fatalf("unexpected tool: %s", intent.Tool)
	}
	if got := intent.Params[contractx.ParamAccountID]; got != "789012" {
		t.Fatalf("unexpected account id: %s", got)
	}
	if got := intent.Params[contractx.ParamDate]; got != PlaceholderDate {
		t.Fatalf("unexpected date: %s", got)
	}
	if got := intent.Params[contractx.ParamTime]; got != PlaceholderTime {
		t.Fatalf("unexpected time: %s", got)
	}
}

func TestClassifyCustomAppointmentDetails(t *testing.T) {
	t.Parallel()

	c := NewKeyword(WithAppointmentDetails(func(string) (string, string) {
		return "2026-01-02", "3:00 PM"
	}))
	intent, _ := c.Classify("book an appointment")
	if got := intent.Params[contractx.ParamDate]; got != "2026-01-02" {
		t.Fatalf("unexpected date: %s", got)
	}
	if got := intent.Params[contractx.ParamTime]; got != "3:00 PM" {
		t.Fatalf("unexpected time: %s", got)
	}
}

func TestClassifyNoMatch(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	if _, matched := c.Classify("hello, how are you"); matched {
		t.Fatal("small talk must not match any rule")
	}
}

func TestClassifyIsCaseInsensitive(t *testing.T) {
	t.Parallel()

	c := NewKeyword()
	intent, matched := c.Classify("ACCOUNT BALANCE please")
	if !matched || intent.Tool != contractx.ToolAccountBalance {
		t.Fatalf("upper-case query must still route, got matched=%v tool=%s", matched, intent.Tool)
	}
}
