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
	ProviderName = "adoption-center-api"
	ConsumerName = "adoption-portal"

	StateCatalogueEmpty = "pet catalogue is empty"
	StatePetExists      = "pet with id 1 exists"
	StatePolicyDefault  = "adoption policy is the default"
)

const (
	ExistingPetID int64 = 1
	MissingPetID  int64 = 404
)

// ExamplePet is the pet seeded for the existing-pet state.
var ExamplePet = struct {
	Name        string
	Species     string
	Breed       string
	Age         int
	Gender      string
	DateArrived string
}{
	Name:        "Biscuit",
	Species:     "Dog",
	Breed:       "Beagle",
	Age:         3,
	Gender:      "Male",
	DateArrived: "2024-05-01",
}

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the pact file path shared by consumer and provider tests.
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

// ExamplePetPayload is the JSON body the portal expects for ExamplePet.
func ExamplePetPayload() map[string]any {
	return map[string]any{
		"id":             ExistingPetID,
		"name":           ExamplePet.Name,
		"species":        ExamplePet.Species,
		"breed":          ExamplePet.Breed,
		"age":            ExamplePet.Age,
		"gender":         ExamplePet.Gender,
		"dateArrived":    ExamplePet.DateArrived,
		"spayedNeutered": false,
		"status":         "Available",
	}
}

func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
