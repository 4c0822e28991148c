package cmd_test

import (
	"os"
	"path/filepath"
	"serpapi/serpapi/cmd"
	"testing"
)

func TestParseParams(t *testing.T) {
	params, err := cmd.ParseParams([]string{"q=coffee", "location=Austin, TX, Texas, United States", "tbs=qdr:d=1", "empty="})
	if err != nil {
		t.Fatal(err)
	}

	if len(params) != 4 ||
		params["q"] != "coffee" ||
		params["location"] != "Austin, TX, Texas, United States" ||
		params["tbs"] != "qdr:d=1" ||
		params["empty"] != "" {
		t.Fatalf("incorrect params: %v", params)
	}

	for _, arg := range []string{"coffee", "=coffee"} {
		if _, err := cmd.ParseParams([]string{arg}); err == nil {
			t.Fatalf("expected error for %q", arg)
		}
	}
}

func TestLoadConfig(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(envFile, []byte("API_KEY=from-file\nPORT=8123\n"), 0600); err != nil {
		t.Fatal(err)
	}

	// t.Setenv restores the original values once the test is done.
	for _, key := range []string{"API_KEY", "PORT", "METRICS_PORT", "HISTORY_PATH"} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
	t.Setenv("SERPAPI_ENGINE", "youtube")

	if err := cmd.LoadEnvFile(envFile); err != nil {
		t.Fatal(err)
	}

	config, err := cmd.LoadConfig()
	if err != nil {
		t.Fatal(err)
	}

	if config.ApiKey != "from-file" || config.Engine != "youtube" || config.Port != 8123 ||
		config.MetricsPort != 9090 || config.HistoryPath != "serpapi_history.db" {
		t.Fatalf("incorrect config: %+v", config)
	}

	defaults := config.Defaults()
	if len(defaults) != 2 || defaults["api_key"] != "from-file" || defaults["engine"] != "youtube" {
		t.Fatalf("incorrect defaults: %v", defaults)
	}

	if err := cmd.LoadEnvFile(filepath.Join(t.TempDir(), "missing.env")); err == nil {
		t.Fatal("expected error for missing env file")
	}
}

func TestConfigDefaultsSkipEmpty(t *testing.T) {
	config := cmd.Config{}
	if len(config.Defaults()) != 0 {
		t.Fatal("empty config should have no default params")
	}
}
