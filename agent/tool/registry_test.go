package tool

import (
	"errors"
	"testing"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
	storex "github.com/tanpawarit/bank-front-desk/agent/store"
)

func TestNewFrontDeskHoldsAllTools(t *testing.T) {
	t.Parallel()

	r := NewFrontDesk(storex.NewMemoryStore())
	want := []string{
		contractx.ToolAccountBalance,
		contractx.ToolLoanDetails,
		contractx.ToolScheduleAppointment,
	}
	names := r.Names()
	if len(names) != len(want) {
		t.Fatalf("got %d tools, want %d", len(names), len(want))
	}
	for i, name := range want {
		if names[i] != name {
			t.Fatalf("names[%d] = %s, want %s", i, names[i], name)
		}
	}
}

func TestRegistryLookup(t *testing.T) {
	t.Parallel()

	r := NewFrontDesk(storex.NewMemoryStore())
	tl, err := r.Lookup(contractx.ToolLoanDetails)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if tl.Name() != contractx.ToolLoanDetails {
		t.Fatalf("unexpected tool: %s", tl.Name())
	}
}

func TestRegistryLookupUnknownTool(t *testing.T) {
	t.Parallel()

	r := NewFrontDesk(storex.NewMemoryStore())
	_, err := r.Lookup("transfer_funds")
	if !errors.Is(err, contractx.ErrUnknownTool) {
		t.Fatalf("expected ErrUnknownTool, got %v", err)
	}
}
