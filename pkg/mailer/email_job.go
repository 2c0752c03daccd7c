package mailer

// EmailJob is the JSON payload put on the RabbitMQ queue for sending email.
// Template selects an embedded template rendered by the worker; Subject and
// HTML are used as-is when Template is empty.
type EmailJob struct {
	To       string         `json:"to"`
	Subject  string         `json:"subject,omitempty"`
	HTML     string         `json:"html,omitempty"`
	Template string         `json:"template,omitempty"` // "verify_email" or "reset_password"
	Data     map[string]any `json:"data,omitempty"`
}
