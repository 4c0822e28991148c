package main

import (
	"fmt"
	"os"
	"serpapi/serpapi/cmd"
	"serpapi/serpapi/search"

	"github.com/spf13/cobra"
)

var (
	envFile string
	engine  string

	config  cmd.Config
	logFile *os.File
)

var rootCmd = &cobra.Command{
	Use:   "serpapi",
	Short: "Query serpapi.com from the command line",
	Long: `serpapi sends searches to serpapi.com and prints the results.

Parameters are passed as key=value pairs and take precedence over the
defaults from the environment (API_KEY, SERPAPI_ENGINE).

Examples:
  serpapi search q=coffee "location=Austin, TX, Texas, United States"
  serpapi html q=coffee
  serpapi location q=Austin limit=3
  serpapi archive 5e9f4c7a8b1d2a0017f0a1b2
  serpapi serve`,
	SilenceUsage:       true,
	PersistentPreRunE:  setup,
	PersistentPostRunE: teardown,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env", "", "path to load env from")
	rootCmd.PersistentFlags().StringVar(&engine, "engine", "", "search engine, overrides SERPAPI_ENGINE")

	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(htmlCmd)
	rootCmd.AddCommand(locationCmd)
	rootCmd.AddCommand(accountCmd)
	rootCmd.AddCommand(archiveCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(serveCmd)
}

func setup(c *cobra.Command, args []string) error {
	if err := cmd.LoadEnvFile(envFile); err != nil {
		return err
	}

	var err error
	config, err = cmd.LoadConfig()
	if err != nil {
		return err
	}
	if engine != "" {
		config.Engine = engine
	}

	logFile, err = os.OpenFile(config.Logfile, os.O_CREATE|os.O_APPEND|os.O_RDWR, 0666)
	if err != nil {
		return fmt.Errorf("error opening log file: %w", err)
	}

	cmd.InitLogging(logFile)

	return nil
}

func teardown(c *cobra.Command, args []string) error {
	if logFile != nil {
		return logFile.Close()
	}
	return nil
}

func newClient() *search.Client {
	return search.NewClient(config.Defaults())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
