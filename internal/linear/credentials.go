package linear

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const apiKeyEnv = "LINEAR_API_KEY"

// LoadAPIKey returns the Linear API key from the LINEAR_API_KEY
// environment variable, falling back to the credential file at
// ~/.config/linear-mcp/.env. The file holds a single line of the form
// LINEAR_API_KEY=lin_api_xxxxx.
func LoadAPIKey() (string, error) {
	if key := strings.TrimSpace(os.Getenv(apiKeyEnv)); key != "" {
		return key, nil
	}

	path, err := credentialPath()
	if err != nil {
		return "", err
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return "", fmt.Errorf(
			"no credential found: set %s or create %s\n"+
				"File format: %s=lin_api_xxxxx\n"+
				"Get your key at: https://linear.app/settings/api",
			apiKeyEnv, path, apiKeyEnv)
	}
	if err != nil {
		return "", fmt.Errorf("reading %s: %w", path, err)
	}

	key := parseCredentialFile(string(data))
	if key == "" {
		return "", fmt.Errorf(
			"%s not found in %s\nAdd a line: %s=lin_api_xxxxx",
			apiKeyEnv, path, apiKeyEnv)
	}
	return key, nil
}

func credentialPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolving home directory: %w", err)
	}
	return filepath.Join(home, ".config", "linear-mcp", ".env"), nil
}

// parseCredentialFile scans .env-style content for the LINEAR_API_KEY
// assignment. Returns "" when no such line exists.
func parseCredentialFile(content string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if rest, ok := strings.CutPrefix(line, apiKeyEnv+"="); ok {
			return strings.TrimSpace(rest)
		}
	}
	return ""
}
