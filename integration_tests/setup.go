package tests

import (
	"os"
	"serpapi/serpapi/search"
	"testing"
)

// apiKey skips the test unless API_KEY is set, these tests call serpapi.com.
func apiKey(t *testing.T) string {
	key := os.Getenv("API_KEY")
	if key == "" {
		t.Skip("$API_KEY is not set")
	}
	return key
}

func googleClient(t *testing.T) *search.Client {
	return search.NewClient(search.Params{
		"engine":  "google",
		"api_key": apiKey(t),
	})
}

var coffeeInAustin = search.Params{
	"q":        "coffee",
	"location": "Austin, TX, Texas, United States",
}
