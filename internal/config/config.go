package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Config is everything a run needs besides the portal password (keychain)
// and the data dir (PROSYNC_DATA_DIR — it locates this file, so it cannot
// live in it).
type Config struct {
	Portal struct {
		LoginURL       string `yaml:"login_url"`
		JobsURL        string `yaml:"jobs_url"`
		Username       string `yaml:"username"`
		KeyringAccount string `yaml:"keyring_account"`
	} `yaml:"portal"`

	Browser struct {
		Headless      bool    `yaml:"headless"`
		UserAgent     string  `yaml:"user_agent"`
		NavsPerSecond float64 `yaml:"navs_per_second"`
	} `yaml:"browser"`

	Waits struct {
		ElementSeconds int `yaml:"element_seconds"`
		PageSeconds    int `yaml:"page_seconds"`
		LoginSeconds   int `yaml:"login_seconds"`
	} `yaml:"waits"`

	Sheets struct {
		CredentialsFile string `yaml:"credentials_file"`
		SpreadsheetID   string `yaml:"spreadsheet_id"`
		Worksheet       string `yaml:"worksheet"`
	} `yaml:"sheets"`
}

func Load(path string) (Config, error) {
	var cfg Config
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}
	err = yaml.Unmarshal(b, &cfg)
	return cfg, err
}
