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
	ProviderName = "vendas-api"
	ConsumerName = "vendas-portal"

	StateClientsBaseline = "clients baseline"
	StateClientExists    = "client with id 1 exists"
	StateClientMissing   = "no client with id 404"
)

const (
	ExistingClientID int64 = 1
	MissingClientID  int64 = 404
)

const (
	exampleClientFirstName = "Ana"
	exampleClientLastName  = "Silva"
	exampleClientCPF       = "11111111111"
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

// PactFile returns the canonical pact file path for the sales portal consumer.
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

// ExampleClientPayload provides stable test data for pact interactions.
func ExampleClientPayload() map[string]any {
	return map[string]any{
		"id":        ExistingClientID,
		"nome":      exampleClientFirstName,
		"sobrenome": exampleClientLastName,
		"cpf":       exampleClientCPF,
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
