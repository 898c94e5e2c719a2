package log

// Common field names for structured logging.
const (
	FieldComponent  = "component"
	FieldRequestID  = "request_id"
	FieldClientIP   = "client_ip"
	FieldMethod     = "method"
	FieldPath       = "path"
	FieldQuery      = "query"
	FieldStatusCode = "status_code"
	FieldDuration   = "duration_ms"
	FieldUserAgent  = "user_agent"
	FieldError      = "error"
	FieldOperation  = "operation"
	FieldProduct    = "product"
	FieldInventory  = "inventory"
	FieldUnitsSold  = "units_sold"
	FieldRevenue    = "revenue"
	FieldRowCount   = "row_count"
	FieldRecordID   = "record_id"
	FieldSheetsRef  = "sheets_ref"
)

// Standard component names.
const (
	ComponentApp     = "app"
	ComponentHTTP    = "http"
	ComponentCatalog = "catalog"
	ComponentRecords = "records"
	ComponentCost    = "cost"
	ComponentStorage = "storage"
	ComponentAMQP    = "amqp"
	ComponentWorker  = "worker"
	ComponentSheets  = "sheets"
	ComponentCache   = "cache"
	ComponentMetrics = "metrics"
)

// Standard operation names.
const (
	OpQuery    = "query"
	OpRender   = "render"
	OpCreate   = "create"
	OpExport   = "export"
	OpSync     = "sync"
	OpValidate = "validate"
	OpStartup  = "startup"
	OpShutdown = "shutdown"
)
