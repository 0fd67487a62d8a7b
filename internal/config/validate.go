package config

import (
	"fmt"
	"strings"
)

type Validation struct {
	Errors   []string `json:"errors"`
	Warnings []string `json:"warnings"`
}

func (v *Validation) addErr(format string, args ...any) {
	v.Errors = append(v.Errors, fmt.Sprintf(format, args...))
}
func (v *Validation) addWarn(format string, args ...any) {
	v.Warnings = append(v.Warnings, fmt.Sprintf(format, args...))
}
func (v Validation) OK() bool { return len(v.Errors) == 0 }

// NormalizeAndValidate fills defaults for optional knobs and checks the
// required ones. The returned copy is the one callers should keep.
func NormalizeAndValidate(cfg Config) (Config, Validation) {
	var out = cfg
	var res Validation

	// ---- Defaults ----

	if out.Browser.UserAgent == "" {
		out.Browser.UserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/133.0.0.0 Safari/537.36"
	}
	if out.Browser.NavsPerSecond <= 0 {
		out.Browser.NavsPerSecond = 0.5
	}
	if out.Waits.ElementSeconds <= 0 {
		out.Waits.ElementSeconds = 10
	}
	if out.Waits.PageSeconds <= 0 {
		out.Waits.PageSeconds = 30
	}
	if out.Waits.LoginSeconds <= 0 {
		out.Waits.LoginSeconds = 60
	}
	if out.Sheets.Worksheet == "" {
		out.Sheets.Worksheet = "ASSIGNPROJOBS"
	}

	// ---- Validation rules ----

	if strings.TrimSpace(out.Portal.LoginURL) == "" {
		res.addErr("portal.login_url is required")
	}
	if strings.TrimSpace(out.Portal.JobsURL) == "" {
		res.addErr("portal.jobs_url is required")
	}
	if strings.TrimSpace(out.Portal.Username) == "" {
		res.addErr("portal.username is required")
	}
	if strings.TrimSpace(out.Sheets.SpreadsheetID) == "" {
		res.addErr("sheets.spreadsheet_id is required")
	}
	if strings.TrimSpace(out.Sheets.CredentialsFile) == "" {
		res.addErr("sheets.credentials_file is required")
	}

	if strings.TrimSpace(out.Portal.KeyringAccount) == "" {
		res.addWarn("portal.keyring_account is empty; the password must come from PROSYNC_PASSWORD")
	}
	if out.Waits.ElementSeconds > 60 {
		res.addWarn("waits.element_seconds is very high (%d); every missing field blocks this long.", out.Waits.ElementSeconds)
	}
	if out.Browser.NavsPerSecond > 2 {
		res.addWarn("browser.navs_per_second is high (%.1f) and may trip bot detection.", out.Browser.NavsPerSecond)
	}

	return out, res
}
