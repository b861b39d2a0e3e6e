package classifier

import (
	"regexp"
	"strings"

	contractx "github.com/tanpawarit/bank-front-desk/agent/contract"
)

// Fallback values used when the text carries no extractable parameter.
const (
	DefaultAccountID = "123456"
	DefaultLoanType  = "home_loan"
)

// Placeholder appointment details, a stand-in for a real date/time parser.
const (
	PlaceholderDate = "2025-07-10"
	PlaceholderTime = "10:00 AM"
)

var accountIDPattern = regexp.MustCompile(`\b\d{6}\b`)

// AppointmentDetails extracts a booking date and time-of-day from query text.
type AppointmentDetails func(text string) (date string, timeOfDay string)

func placeholderAppointmentDetails(string) (string, string) {
	return PlaceholderDate, PlaceholderTime
}

// Option customizes a Keyword classifier.
type Option func(*Keyword)

// WithLoanTypes replaces the loan codes probed during extraction.
func WithLoanTypes(codes []string) Option {
	return func(c *Keyword) {
		if len(codes) > 0 {
			c.loanTypes = append([]string(nil), codes...)
		}
	}
}

// WithAppointmentDetails replaces the placeholder date/time extractor.
func WithAppointmentDetails(fn AppointmentDetails) Option {
	return func(c *Keyword) {
		if fn != nil {
			c.appointmentDetails = fn
		}
	}
}

// Keyword classifies queries by ordered keyword matching over the lower-cased
// text. Rules are checked in a fixed priority order and the first match wins,
// so a query mentioning both an account balance and a loan always routes to
// account_balance.
type Keyword struct {
	loanTypes          []string
	appointmentDetails AppointmentDetails
}

var _ contractx.Classifier = (*Keyword)(nil)

// NewKeyword returns a classifier with the default loan catalog codes and the
// placeholder appointment extractor.
func NewKeyword(opts ...Option) *Keyword {
	c := &Keyword{
		loanTypes:          []string{"home_loan", "personal_loan"},
		appointmentDetails: placeholderAppointmentDetails,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// Classify maps query text to an intent, or reports no match for the caller
// to fall back to generation.
func (c *Keyword) Classify(text string) (contractx.Intent, bool) {
	lowered := strings.ToLower(text)

	switch {
	case containsAny(lowered, "account balance", "account details"):
		return contractx.Intent{
			Tool: contractx.ToolAccountBalance,
			Params: map[string]string{
				contractx.ParamAccountID: c.extractAccountID(lowered),
			},
		}, true

	case containsAny(lowered, "loan", "interest rate"):
		return contractx.Intent{
			Tool: contractx.ToolLoanDetails,
			Params: map[string]string{
				contractx.ParamLoanType: c.extractLoanType(lowered),
			},
		}, true

	case containsAny(lowered, "appointment", "schedule"):
		date, timeOfDay := c.appointmentDetails(lowered)
		return contractx.Intent{
			Tool: contractx.ToolScheduleAppointment,
			Params: map[string]string{
				contractx.ParamAccountID: c.extractAccountID(lowered),
				contractx.ParamDate:      date,
				contractx.ParamTime:      timeOfDay,
			},
		}, true
	}

	return contractx.Intent{}, false
}

func (c *Keyword) extractAccountID(lowered string) string {
	if match := accountIDPattern.FindString(lowered); match != "" {
		return match
	}
	return DefaultAccountID
}

func (c *Keyword) extractLoanType(lowered string) string {
	for _, code := range c.loanTypes {
		if strings.Contains(lowered, code) {
			return code
		}
	}
	return DefaultLoanType
}

func containsAny(text string, substrings ...string) bool {
	for _, sub := range substrings {
		if strings.Contains(text, sub) {
			return true
		}
	}
	return false
}
