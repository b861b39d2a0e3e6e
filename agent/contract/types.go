package contract

// Tool names emitted by the classifier. The registry is seeded with exactly
// this set.
const (
	ToolAccountBalance      = "account_balance"
	ToolLoanDetails         = "loan_details"
	ToolScheduleAppointment = "schedule_appointment"
)

// Parameter keys shared between classifier and tools.
const (
	ParamAccountID = "account_id"
	ParamLoanType  = "loan_type"
	ParamDate      = "date"
	ParamTime      = "time"
)

// Intent is the outcome of classifying a query: the tool to invoke and the
// parameters extracted from the text.
type Intent struct {
	Tool   string            `json:"tool"`
	Params map[string]string `json:"params,omitempty"`
}

// ResponseStatus tags a dispatcher response at the transport level. Business
// misses (unknown account, unknown loan) are StatusOK; only internal faults
// degrade to StatusError.
type ResponseStatus string

const (
	StatusOK    ResponseStatus = "ok"
	StatusError ResponseStatus = "error"
)

// Response is the dispatcher's answer to a single query.
type Response struct {
	Status ResponseStatus `json:"status"`
	Text   string         `json:"text"`
}
