package tool

import (
	"fmt"
	"sort"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
	storex "github.com/tanpawarit/bank-front-desk/agent/store"
)

// Registry holds the fixed set of named tools. Populate it at startup; it is
// read-only while serving.
type Registry struct {
	tools map[string]contractx.Tool
}

func NewRegistry(tools ...contractx.Tool) *Registry {
	table := make(map[string]contractx.Tool, len(tools))
	for _, t := range tools {
		if t == nil {
			continue
		}
		table[t.Name()] = t
	}
	return &Registry{tools: table}
}

// NewFrontDesk returns a registry seeded with the three front-desk tools
// backed by the given record store.
func NewFrontDesk(st storex.Store) *Registry {
	return NewRegistry(
		&AccountBalance{Store: st},
		&LoanDetails{Store: st},
		&ScheduleAppointment{Store: st},
	)
}

// Lookup resolves a tool by name. A miss wraps ErrUnknownTool: the classifier
// only emits registered names, so a miss is a programming error.
func (r *Registry) Lookup(name string) (contractx.Tool, error) {
	t, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: tool=%s", contractx.ErrUnknownTool, name)
	}
	return t, nil
}

// Names lists the registered tool names in sorted order.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
