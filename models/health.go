package models

type HealthReport struct {
	Status    string          `json:"status"`
	Timestamp string          `json:"timestamp"`
	Uptime    string          `json:"uptime,omitempty"`
	Database  *DatabaseHealth `json:"database,omitempty"`
	Memory    *MemoryHealth   `json:"memory,omitempty"`
	Error     string          `json:"error,omitempty"`
}

type DatabaseHealth struct {
	Status  string `json:"status"`
	Latency string `json:"latency"`
}

type MemoryHealth struct {
	HeapUsed  string `json:"heapUsed"`
	HeapTotal string `json:"heapTotal"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details"`
}

type RootResponse struct {
	Message       string `json:"message"`
	Documentation string `json:"documentation"`
	Health        string `json:"health"`
}
