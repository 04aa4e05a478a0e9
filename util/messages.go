package util

// Client-facing messages.
const (
	PATIENT_NOT_FOUND        = "Patient not found"
	INVOICE_NOT_FOUND        = "Invoice not found"
	APPOINTMENT_NOT_FOUND    = "Appointment not found"
	DRUG_NOT_FOUND           = "Drug not found"
	REVIEW_NOT_FOUND         = "Review not found"
	CONTACT_NOT_FOUND        = "Contact not found"
	TODO_NOT_FOUND           = "Todo not found"
	TEXT_IS_REQUIRED         = "Text is required"
	EXPENSE_AND_STOCK_NUMBER = "Expense and stock must be numbers"
	INVALID_RATING           = "Rating must be a number between 1 and 5"
	UNSUPPORTED_IMAGE        = "Only image files are allowed!"
	INVALID_CREDENTIALS      = "Invalid username or password"
	INTERNAL_SERVER_ERROR    = "Internal server error"
	APPOINTMENT_SAVED        = "Appointment saved successfully"
	PATIENT_STATUS_UPDATED   = "Patient status updated"
	EMAIL_SENT               = "Email sent successfully"
	REVIEW_SAVED             = "Review saved successfully"
	CONTACT_SAVED            = "Contact saved successfully"
	SSE_WELCOME              = "Welcome to the SSE endpoint"
)
