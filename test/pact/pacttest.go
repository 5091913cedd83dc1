//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

const (
	ProviderName = "shop-backoffice-api"
	ConsumerName = "backoffice-portal"

	StateOrdersBaseline = "customer 1 and product 1 exist without orders"
	StateOrderExists    = "order with id 1 exists"
	StateOrderMissing   = "no order with id 999"
)

const (
	ExistingOrderID    int64 = 1
	MissingOrderID     int64 = 999
	MissingCustomerID  int64 = 999
	ExampleCustomerID  int64 = 1
	ExampleProductID   int64 = 1
	ExampleQuantity          = 2
	ExampleOrderDate         = "2024-03-15"
	ExampleCustomer          = "Aini"
	ExampleProduct           = "Chocolate Cake"
	ExampleCategory          = "Cake"
	ExampleUnitPrice         = 150000
	ExampleOrderPrice        = 300000
	ExampleInitialStatus     = "Pending"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for the back-office portal consumer.
func PactFile(t testing.TB) string {
	t.Helper()
	return filepath.Join(PactDir(t), ConsumerName+"-"+ProviderName+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExampleOrderRequest is the create body the portal sends.
func ExampleOrderRequest() map[string]any {
	return map[string]any{
		"customerId": ExampleCustomerID,
		"productId":  ExampleProductID,
		"qty":        ExampleQuantity,
		"date":       ExampleOrderDate,
	}
}

// ExampleOrderView is the order view the provider returns for ExampleOrderRequest.
func ExampleOrderView() map[string]any {
	return map[string]any{
		"id":           ExistingOrderID,
		"customerId":   ExampleCustomerID,
		"customerName": ExampleCustomer,
		"productId":    ExampleProductID,
		"productName":  ExampleProduct,
		"qty":          ExampleQuantity,
		"price":        ExampleOrderPrice,
		"date":         ExampleOrderDate,
		"status":       ExampleInitialStatus,
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
