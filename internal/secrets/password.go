package secrets

import (
	"errors"
	"os"
	"strings"

	"github.com/zalando/go-keyring"
)

const (
	// keychain service name all portal secrets live under
	KeyringService = "prosync"

	passwordEnv = "PROSYNC_PASSWORD"
)

// GetPortalPassword looks in the OS keychain under the configured account,
// then falls back to the environment for boxes without a keychain (CI,
// containers). The password itself never goes through config.yml.
func GetPortalPassword(keyringAccount string) (string, error) {
	if strings.TrimSpace(keyringAccount) != "" {
		pw, err := keyring.Get(KeyringService, keyringAccount)
		if err == nil && strings.TrimSpace(pw) != "" {
			return pw, nil
		}
	}

	if pw := strings.TrimSpace(os.Getenv(passwordEnv)); pw != "" {
		return pw, nil
	}

	return "", errors.New("portal password not found (set it in keychain or via " + passwordEnv + ")")
}

func SetPortalPassword(keyringAccount string, password string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	if strings.TrimSpace(password) == "" {
		return errors.New("password is empty")
	}
	return keyring.Set(KeyringService, keyringAccount, password)
}

func DeletePortalPassword(keyringAccount string) error {
	if strings.TrimSpace(keyringAccount) == "" {
		return errors.New("keyring account name is empty")
	}
	return keyring.Delete(KeyringService, keyringAccount)
}
