package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"math"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sunfmin/mcp-go-calculator/pkg/calculator"
	"github.com/sunfmin/mcp-go-calculator/pkg/config"
	"github.com/sunfmin/mcp-go-calculator/pkg/logger"
	"github.com/sunfmin/mcp-go-calculator/pkg/types"
)

// MCPCalculatorServer encapsulates the MCP server with calculator tools
type MCPCalculatorServer struct {
	server  *server.MCPServer
	name    string
	version string
}

// NewMCPCalculatorServer creates a new MCP server exposing the calculator
func NewMCPCalculatorServer(cfg *config.Config, version string) *MCPCalculatorServer {
	s := &MCPCalculatorServer{
		server:  server.NewMCPServer(cfg.ServerName, version),
		name:    cfg.ServerName,
		version: version,
	}

	s.registerTools()

	return s
}

// Server returns the underlying MCP server
func (s *MCPCalculatorServer) Server() *server.MCPServer {
	return s.server
}

func (s *MCPCalculatorServer) registerTools() {
	s.addPingTool()

	s.addArithmeticTool("add", "Add two numbers (a + b)", s.Add)
	s.addArithmeticTool("subtract", "Subtract b from a (a - b)", s.Subtract)
	s.addArithmeticTool("multiply", "Multiply two numbers (a * b)", s.Multiply)
	s.addArithmeticTool("divide", "Divide a by b; the result is always a floating-point number and b must not be 0", s.Divide)
}

// addPingTool adds a simple ping tool for health checks
func (s *MCPCalculatorServer) addPingTool() {
	pingTool := mcp.NewTool("ping",
		mcp.WithDescription("Simple ping tool to test connection"),
	)

	s.server.AddTool(pingTool, s.Ping)
}

// addArithmeticTool registers a tool taking the two operands a and b
func (s *MCPCalculatorServer) addArithmeticTool(name, description string, handler func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error)) {
	tool := mcp.NewTool(name,
		mcp.WithDescription(description),
		mcp.WithNumber("a",
			mcp.Required(),
			mcp.Description("First operand"),
		),
		mcp.WithNumber("b",
			mcp.Required(),
			mcp.Description("Second operand"),
		),
	)

	s.server.AddTool(tool, handler)
}

// newErrorResult creates a tool result that represents an error
func newErrorResult(format string, args ...interface{}) *mcp.CallToolResult {
	result := mcp.NewToolResultText(fmt.Sprintf("Error: "+format, args...))
	result.IsError = true
	return result
}

// Ping handles the ping command
func (s *MCPCalculatorServer) Ping(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received ping request")

	return newToolResultJSON(types.PingResponse{
		Status:  "ok",
		Server:  s.name,
		Version: s.version,
	})
}

// Add handles the add command
func (s *MCPCalculatorServer) Add(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.evaluate("add", request, calculator.Add[int64], calculator.Add[float64])
}

// Subtract handles the subtract command
func (s *MCPCalculatorServer) Subtract(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.evaluate("subtract", request, calculator.Subtract[int64], calculator.Subtract[float64])
}

// Multiply handles the multiply command
func (s *MCPCalculatorServer) Multiply(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return s.evaluate("multiply", request, calculator.Multiply[int64], calculator.Multiply[float64])
}

// Divide handles the divide command
func (s *MCPCalculatorServer) Divide(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	logger.Debug("Received divide request")

	a, b, err := operands(request)
	if err != nil {
		logger.Error("Invalid divide arguments", "error", err)
		return newErrorResult("%v", err), nil
	}

	quotient, err := calculator.Divide(a, b)
	if err != nil {
		logger.Error("Failed to divide", "error", err, "a", a, "b", b)
		return newErrorResult("failed to divide %v by %v: %v", a, b, err), nil
	}

	return newToolResultJSON(types.NewOperationResponse("divide", a, b, quotient, types.KindFloat))
}

// evaluate runs one of the closed arithmetic operations, keeping integer
// operands in integer arithmetic unless the int64 result would overflow.
func (s *MCPCalculatorServer) evaluate(op string, request mcp.CallToolRequest, intOp func(a, b int64) int64, floatOp func(a, b float64) float64) (*mcp.CallToolResult, error) {
	logger.Debug("Received " + op + " request")

	a, b, err := operands(request)
	if err != nil {
		logger.Error("Invalid "+op+" arguments", "error", err)
		return newErrorResult("%v", err), nil
	}

	result := floatOp(a, b)

	// An int64 result that wrapped cannot round to the same float64 as the
	// exact result, so a mismatch means overflow.
	if isInteger(a) && isInteger(b) {
		if exact := intOp(int64(a), int64(b)); float64(exact) == result {
			return newToolResultJSON(types.NewOperationResponse(op, a, b, exact, types.KindInteger))
		}
		logger.Debug("Integer "+op+" overflows int64, using float result", "a", a, "b", b)
	}

	return newToolResultJSON(types.NewOperationResponse(op, a, b, result, types.KindFloat))
}

// operands extracts the required numeric arguments a and b
func operands(request mcp.CallToolRequest) (float64, float64, error) {
	a, err := numberArgument(request, "a")
	if err != nil {
		return 0, 0, err
	}
	b, err := numberArgument(request, "b")
	if err != nil {
		return 0, 0, err
	}
	return a, b, nil
}

func numberArgument(request mcp.CallToolRequest, name string) (float64, error) {
	raw, ok := request.Params.Arguments[name]
	if !ok || raw == nil {
		return 0, fmt.Errorf("missing required argument %q", name)
	}

	switch v := raw.(type) {
	case float64:
		return v, nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0, fmt.Errorf("argument %q is not a number: %w", name, err)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("argument %q is not a number: %v", name, raw)
	}
}

// isInteger reports whether x is a whole number representable as an int64
func isInteger(x float64) bool {
	if math.IsInf(x, 0) || math.IsNaN(x) || math.Trunc(x) != x {
		return false
	}
	return x >= math.MinInt64 && x < math.MaxInt64
}

func newToolResultJSON(data interface{}) (*mcp.CallToolResult, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return newErrorResult("failed to serialize data: %v", err), nil
	}
	return mcp.NewToolResultText(string(jsonBytes)), nil
}
