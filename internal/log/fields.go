package log

// Common field names for structured logging
const (
	FieldComponent = "component"
	FieldProjectID = "project_id"
	FieldCostCode  = "cost_code"
	FieldRowCount  = "row_count"
	FieldBackend   = "backend"
	FieldDuration  = "duration_ms"
	FieldError     = "error"
	FieldExchange  = "exchange"
	FieldQueue     = "queue"
	FieldSheet     = "sheet"
	FieldPort      = "port"
)

// Components defines standard component names
const (
	ComponentApp     = "app"
	ComponentEngine  = "engine"
	ComponentHTTP    = "http"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentExport  = "export"
	ComponentBackend = "backend"
)
