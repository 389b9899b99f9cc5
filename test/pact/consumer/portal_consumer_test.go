//go:build pact
// +build pact

package consumer_test

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	pacttest "github.com/Apurer/pet-adoption-center/test/pact"

	pactconsumer "github.com/pact-foundation/pact-go/v2/consumer"
	pactlog "github.com/pact-foundation/pact-go/v2/log"
	"github.com/pact-foundation/pact-go/v2/matchers"
	"github.com/stretchr/testify/require"
)

type petPayload struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Species     string `json:"species"`
	Breed       string `json:"breed"`
	Age         int    `json:"age"`
	Gender      string `json:"gender"`
	DateArrived string `json:"dateArrived"`
	Status      string `json:"status"`
}

type policyPayload struct {
	Variant     string `json:"variant"`
	AllowReturn bool   `json:"allowReturn"`
}

// portalProblem is the subset of a problem document the portal displays.
type portalProblem struct {
	Title  string `json:"title"`
	Detail string `json:"detail"`
}

func TestAdoptionPortalContract(t *testing.T) {
	pactlog.SetLogLevel("INFO")

	pact, err := pactconsumer.NewV2Pact(pactconsumer.MockHTTPProviderConfig{
		Consumer: pacttest.ConsumerName,
		Provider: pacttest.ProviderName,
		PactDir:  pacttest.PactDir(t),
		LogDir:   pacttest.LogDir(t),
	})
	require.NoError(t, err)

	example := pacttest.ExamplePetPayload()
	petBodyMatcher := matchers.Map{
		"id":          matchers.Like(example["id"]),
		"name":        matchers.Like(example["name"]),
		"species":     matchers.Like(example["species"]),
		"age":         matchers.Like(example["age"]),
		"gender":      matchers.Term(example["gender"].(string), "Male|Female|Unknown"),
		"dateArrived": matchers.Term(example["dateArrived"].(string), `\d{4}-\d{2}-\d{2}`),
		"status":      matchers.Term(example["status"].(string), "Available|Reserved|Medical Hold|Adopted"),
	}
	jsonContentType := matchers.Regex("application/json; charset=utf-8", "application\\/json(?:;\\s?charset=utf-8)?")

	pact.AddInteraction().
		Given(pacttest.StatePetExists).
		UponReceiving("a request to fetch an existing pet").
		WithRequest("GET", fmt.Sprintf("/api/pets/%d", pacttest.ExistingPetID)).
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(petBodyMatcher)
		})

	pact.AddInteraction().
		Given(pacttest.StateCatalogueEmpty).
		UponReceiving("a request for a missing pet").
		WithRequest("GET", fmt.Sprintf("/api/pets/%d", pacttest.MissingPetID)).
		WillRespondWith(http.StatusNotFound, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", matchers.S("application/problem+json"))
			b.JSONBody(matchers.Map{
				"type":   matchers.S("/problems/not-found"),
				"title":  matchers.S("Resource Not Found"),
				"status": matchers.Like(http.StatusNotFound),
			})
		})

	pact.AddInteraction().
		Given(pacttest.StatePolicyDefault).
		UponReceiving("a request for the adoption policy").
		WithRequest("GET", "/api/adoptions/policy").
		WillRespondWith(http.StatusOK, func(b *pactconsumer.V2ResponseBuilder) {
			b.Header("Content-Type", jsonContentType)
			b.JSONBody(matchers.Map{
				"variant":     matchers.Term("approval", "approval|simple"),
				"allowReturn": matchers.Like(true),
			})
		})

	err = pact.ExecuteTest(t, func(config pactconsumer.MockServerConfig) error {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		portal := portalEndpoint(config)

		var pet petPayload
		status, err := fetchJSON(ctx, portal+fmt.Sprintf("/api/pets/%d", pacttest.ExistingPetID), &pet)
		if err != nil || status != http.StatusOK {
			return fmt.Errorf("get pet: status %d: %v", status, err)
		}
		if pet.ID != pacttest.ExistingPetID || pet.Name == "" {
			return fmt.Errorf("unexpected pet %+v", pet)
		}

		var problem portalProblem
		status, err = fetchJSON(ctx, portal+fmt.Sprintf("/api/pets/%d", pacttest.MissingPetID), &problem)
		if err != nil || status != http.StatusNotFound {
			return fmt.Errorf("missing pet: status %d: %v", status, err)
		}
		if problem.Title == "" {
			return fmt.Errorf("missing pet answered without a problem title")
		}

		var policy policyPayload
		status, err = fetchJSON(ctx, portal+"/api/adoptions/policy", &policy)
		if err != nil || status != http.StatusOK {
			return fmt.Errorf("get policy: status %d: %v", status, err)
		}
		if policy.Variant == "" {
			return fmt.Errorf("policy has no variant")
		}
		return nil
	})
	require.NoError(t, err)
}

func portalEndpoint(config pactconsumer.MockServerConfig) string {
	host := config.Host
	if host == "" {
		host = "127.0.0.1"
	}
	return fmt.Sprintf("http://%s:%d", host, config.Port)
}

// fetchJSON decodes the response body into dest whatever the status code,
// so callers can read both entities and problem documents.
func fetchJSON(ctx context.Context, url string, dest any) (int, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json, application/problem+json")
	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()
	return res.StatusCode, json.NewDecoder(res.Body).Decode(dest)
}
