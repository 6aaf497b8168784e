package api

// APIResponse represents a standard API response
type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   string      `json:"error,omitempty"`
}

// ProjectResponse carries a project id
type ProjectResponse struct {
	ID string `json:"id"`
}

// MalformedField describes a numeric field that was tolerated by a lenient
// decode
type MalformedField struct {
	Field string `json:"field"`
	Text  string `json:"text"`
	Line  int    `json:"line"`
}

// RecordResponse is a stored or decoded record in canonical PRJ text
type RecordResponse struct {
	Kind      string           `json:"kind"`
	Nr        int              `json:"nr"`
	Text      string           `json:"text"`
	Malformed []MalformedField `json:"malformed,omitempty"`
}

// CheckResponse reports the result of decoding a section without storing it
type CheckResponse struct {
	Kind      string           `json:"kind"`
	Count     int              `json:"count"`
	Text      string           `json:"text"`
	Malformed []MalformedField `json:"malformed,omitempty"`
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Addr         string
	APIKey       string // empty disables authentication
	Lenient      bool   // tolerate malformed numeric fields in uploaded text
	MaxBodyBytes int64
}
