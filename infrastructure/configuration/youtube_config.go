package configuration

import (
	"encoding/json"
	"os"
	"strings"
)

const (
	YouTubeModeDisabled = "disabled"
	YouTubeModeAPIKey   = "apikey"
	YouTubeModeOAuth    = "oauth"
)

// YouTubeConfig represents YouTube API configuration
type YouTubeConfig struct {
	Mode         string
	ClientID     string
	ClientSecret string
	RedirectURL  string
	AccessToken  string
	RefreshToken string
	APIKey       string
}

// ResolvedMode picks OAuth when a refresh token and client credentials
// exist, the API key otherwise, and disabled when neither is usable.
func (y *YouTubeConfig) ResolvedMode() string {
	switch strings.ToLower(y.Mode) {
	case YouTubeModeDisabled:
		return YouTubeModeDisabled
	case YouTubeModeAPIKey:
		if y.APIKey != "" {
			return YouTubeModeAPIKey
		}
		return YouTubeModeDisabled
	}
	if y.RefreshToken != "" && y.ClientID != "" && y.ClientSecret != "" {
		return YouTubeModeOAuth
	}
	if y.APIKey != "" {
		return YouTubeModeAPIKey
	}
	return YouTubeModeDisabled
}

// GetYouTubeConfig returns YouTube configuration from JSON config with environment variable fallback
func GetYouTubeConfig() *YouTubeConfig {
	config := &YouTubeConfig{
		Mode:         getConfigValue(C.YouTube.Mode, "YOUTUBE_MODE", ""),
		ClientID:     getConfigValue(C.YouTube.ClientID, "YOUTUBE_CLIENT_ID", ""),
		ClientSecret: getConfigValue(C.YouTube.ClientSecret, "YOUTUBE_CLIENT_SECRET", ""),
		RedirectURL:  getConfigValue(C.YouTube.RedirectURI, "YOUTUBE_REDIRECT_URL", ""),
		AccessToken:  getConfigValue(C.YouTube.AccessToken, "YOUTUBE_ACCESS_TOKEN", ""),
		RefreshToken: getConfigValue(C.YouTube.RefreshToken, "YOUTUBE_REFRESH_TOKEN", ""),
		APIKey:       getConfigValue(C.YouTube.APIKey, "YOUTUBE_API_KEY", ""),
	}

	// token.json is what an offline OAuth consent leaves behind
	if config.RefreshToken == "" {
		if data, err := os.ReadFile("token.json"); err == nil {
			var tokenFile struct {
				AccessToken  string `json:"access_token"`
				RefreshToken string `json:"refresh_token"`
			}
			if jsonErr := json.Unmarshal(data, &tokenFile); jsonErr == nil {
				if config.AccessToken == "" {
					config.AccessToken = tokenFile.AccessToken
				}
				config.RefreshToken = tokenFile.RefreshToken
			}
		}
	}
	return config
}

// getConfigValue gets value from environment first, then config, then default.
// Placeholders starting with YOUR_ count as unset.
func getConfigValue(configValue, envKey, defaultValue string) string {
	if v := os.Getenv(envKey); v != "" {
		return v
	}
	if configValue != "" && !strings.HasPrefix(configValue, "YOUR_") {
		return configValue
	}
	return defaultValue
}
