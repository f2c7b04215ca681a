package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldError     = "error"
	FieldUserID    = "user_id"
	FieldYear      = "year"
	FieldMonth     = "month"
	FieldCategory  = "category"
	FieldAmount    = "amount_cents"
	FieldExpenseID = "expense_id"
	FieldPath      = "path"
	FieldCommand   = "command"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentBot     = "bot"
	ComponentStorage = "storage"
	ComponentLedger  = "ledger"
	ComponentExport  = "export"
)
