// google_search searches for coffee near Austin and prints a summary of the json and html
// results. The api key is read from API_KEY, see https://serpapi.com/dashboard.
package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"serpapi/serpapi/search"
)

func main() {
	apiKey := os.Getenv("API_KEY")
	if apiKey == "" {
		log.Fatalf("$API_KEY is not set")
	}

	fmt.Println("let's search about coffee on google")
	client := search.NewClient(search.Params{
		"api_key": apiKey,
		"q":       "coffee",
	})

	parameter := search.Params{"location": "Austin, TX, Texas, United States"}
	ctx := context.Background()

	fmt.Println("waiting...")
	results, err := client.Search(ctx, parameter)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	organic := results.Get("organic_results").Array()
	fmt.Println("--- JSON ---")
	fmt.Printf(" - number of organic results: %d\n", len(organic))
	fmt.Printf(" - organic_results first result description: %s\n",
		results.Get("organic_results.0.about_this_result.source.description"))

	places := results.Get("local_results.places").Array()
	fmt.Printf(" - number of local_results: %d\n", len(places))
	if len(places) > 0 {
		fmt.Printf(" - local_results first address: %s\n", places[0].Get("address"))
	}

	fmt.Println("--- HTML search ---")
	raw, err := client.HTML(ctx, parameter)
	if err != nil {
		log.Fatalf("html search failed: %v", err)
	}
	fmt.Printf(" - raw HTML size %d bytes\n", len(raw))
	fmt.Printf(" - search completed with engine %s\n", results.Get("search_parameters.engine"))
}
