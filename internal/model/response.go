package model

// Greeting is the body of GET /.
const Greeting = "Backend pour Entreprise de Nettoyage à Lausanne"

// Values reported by the diagnostic endpoint.
const (
	DiagnosticRunning        = "✅ Running"
	DiagnosticNotInitialized = "⚠️  Available but not initialized"
	DiagnosticWorking        = "✅ Connected & Working"
	DiagnosticErrorPrefix    = "⚠️  Connected but Error: "
	DiagnosticSet            = "✅ Set"
	DiagnosticNotSet         = "❌ Not Set"
	DiagnosticConnected      = "Connected"
	DiagnosticNotConnected   = "Not Connected"
)

type MessageResponse struct {
	Message string `json:"message"`
}

// SubmissionResponse acknowledges a stored form submission.
type SubmissionResponse struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

// DiagnosticReport is the body of GET /test.
type DiagnosticReport struct {
	Backend          string   `json:"backend"`
	Database         string   `json:"database"`
	DatabaseURL      string   `json:"database_url"`
	DatabaseName     string   `json:"database_name"`
	ConnectionStatus string   `json:"connection_status"`
	Collections      []string `json:"collections"`
}
