// youtube_search runs a youtube search for coffee and prints the number of videos found.
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

	client := search.NewClient(search.Params{
		"api_key": apiKey,
		"engine":  "youtube",
	})

	parameter := search.Params{"search_query": "coffee"}
	ctx := context.Background()

	results, err := client.Search(ctx, parameter)
	if err != nil {
		log.Fatalf("search failed: %v", err)
	}

	videos := results.Get("video_results")
	fmt.Println("--- JSON ---")
	fmt.Printf(" - number of video results: %d\n", videos.Len())
	if first := videos.Index(0); first.Exists() {
		fmt.Printf(" - first video: %s (%s)\n", first.Get("title"), first.Get("link"))
	}
	fmt.Printf(" - search parameters: %s\n", results.Get("search_parameters").Raw())

	raw, err := client.HTML(ctx, parameter)
	if err != nil {
		log.Fatalf("html search failed: %v", err)
	}
	fmt.Println("--- HTML search ---")
	fmt.Printf(" - raw HTML size %d bytes\n", len(raw))
}
