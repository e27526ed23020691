package types

import (
	"fmt"
	"time"
)

// Result kinds reported in OperationResponse.Kind.
const (
	KindInteger = "integer"
	KindFloat   = "float"
)

// OperationContext provides shared context across all calculator responses
type OperationContext struct {
	Timestamp time.Time `json:"timestamp"`         // Operation timestamp
	Operation string    `json:"operation"`         // add, subtract, multiply or divide
	Status    string    `json:"status"`            // success; failures are returned as tool errors
	Summary   string    `json:"summary,omitempty"` // Human-readable equation, e.g. "5 + 3 = 8"
}

// OperationResponse is returned by every arithmetic tool
type OperationResponse struct {
	Context OperationContext `json:"context"`

	A      float64 `json:"a"`
	B      float64 `json:"b"`
	Result any     `json:"result,omitempty"` // int64 for integer results, float64 otherwise
	Kind   string  `json:"kind,omitempty"`   // KindInteger or KindFloat
}

// PingResponse is returned by the ping tool
type PingResponse struct {
	Status  string `json:"status"`
	Server  string `json:"server"`
	Version string `json:"version"`
}

var symbols = map[string]string{
	"add":      "+",
	"subtract": "-",
	"multiply": "*",
	"divide":   "/",
}

// NewOperationResponse creates a success response for op applied to a and b.
func NewOperationResponse(op string, a, b float64, result any, kind string) OperationResponse {
	return OperationResponse{
		Context: OperationContext{
			Timestamp: time.Now(),
			Operation: op,
			Status:    "success",
			Summary:   fmt.Sprintf("%v %s %v = %v", a, symbols[op], b, result),
		},
		A:      a,
		B:      b,
		Result: result,
		Kind:   kind,
	}
}
