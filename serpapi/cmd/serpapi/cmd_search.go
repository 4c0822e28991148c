package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"serpapi/serpapi/cmd"
	"serpapi/serpapi/history"
	"serpapi/serpapi/search"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"
)

var searchCmd = &cobra.Command{
	Use:   "search [key=value...]",
	Short: "Run a search and print the json results",
	RunE:  runSearch,
}

var htmlCmd = &cobra.Command{
	Use:   "html [key=value...]",
	Short: "Run a search and print the raw html page",
	RunE:  runHtml,
}

var locationCmd = &cobra.Command{
	Use:   "location [key=value...]",
	Short: "Look up supported locations",
	RunE:  runLocation,
}

var accountCmd = &cobra.Command{
	Use:   "account [key=value...]",
	Short: "Print account information for the api key",
	RunE:  runAccount,
}

var archiveCmd = &cobra.Command{
	Use:   "archive <search_id>",
	Short: "Retrieve a previous search from the search archive",
	Args:  cobra.ExactArgs(1),
	RunE:  runArchive,
}

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List searches recorded by this cli",
	Args:  cobra.NoArgs,
	RunE:  runHistory,
}

func init() {
	htmlCmd.Flags().Bool("summary", false, "print only the page size and title")
	searchCmd.Flags().Bool("no-history", false, "do not record the search in the history")
}

func printValue(value search.Value) error {
	var out bytes.Buffer
	if err := json.Indent(&out, []byte(value.Raw()), "", "  "); err != nil {
		return fmt.Errorf("error formatting results: %w", err)
	}
	out.WriteByte('\n')
	_, err := out.WriteTo(os.Stdout)
	return err
}

func runSearch(c *cobra.Command, args []string) error {
	params, err := cmd.ParseParams(args)
	if err != nil {
		return err
	}

	results, err := newClient().Search(c.Context(), params)
	if err != nil {
		return err
	}

	if skip, _ := c.Flags().GetBool("no-history"); !skip {
		if entry, ok := history.EntryFromResult(search.Merge(config.Defaults(), params), results); ok {
			store, err := history.Open(config.HistoryPath)
			if err != nil {
				slog.Error("search history unavailable", "error", err)
			} else {
				store.Record(entry)
				store.Close()
			}
		}
	}

	return printValue(results)
}

func runHtml(c *cobra.Command, args []string) error {
	params, err := cmd.ParseParams(args)
	if err != nil {
		return err
	}

	html, err := newClient().HTML(c.Context(), params)
	if err != nil {
		return err
	}

	if summary, _ := c.Flags().GetBool("summary"); summary {
		title, err := search.PageTitle(html)
		if err != nil {
			return err
		}
		fmt.Printf("size: %d bytes\ntitle: %s\n", len(html), title)
		return nil
	}

	fmt.Println(html)
	return nil
}

func runLocation(c *cobra.Command, args []string) error {
	params, err := cmd.ParseParams(args)
	if err != nil {
		return err
	}

	locations, err := newClient().Location(c.Context(), params)
	if err != nil {
		return err
	}
	return printValue(locations)
}

func runAccount(c *cobra.Command, args []string) error {
	params, err := cmd.ParseParams(args)
	if err != nil {
		return err
	}

	account, err := newClient().Account(c.Context(), params)
	if err != nil {
		return err
	}
	return printValue(account)
}

func runArchive(c *cobra.Command, args []string) error {
	results, err := newClient().SearchArchive(c.Context(), args[0])
	if err != nil {
		return err
	}
	return printValue(results)
}

func runHistory(c *cobra.Command, args []string) error {
	store, err := history.Open(config.HistoryPath)
	if err != nil {
		return err
	}
	defer store.Close()

	entries, err := store.List()
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SEARCH ID\tENGINE\tQUERY\tSTATUS\tCREATED")
	for _, entry := range entries {
		query := entry.Params["q"]
		if query == "" {
			query = entry.Params["search_query"]
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n", entry.SearchId, entry.Engine, query, entry.Status, entry.CreatedAt.Local().Format(time.DateTime))
	}
	return w.Flush()
}
