package collector

import (
	"fmt"

	"trenddit/config"
	"trenddit/models"
)

// ForName builds the connector for a source name using its configuration.
func ForName(name string, cfg config.AppConfig) (Source, error) {
	switch name {
	case models.SourceReddit:
		return NewRedditSource(cfg.Sources.Reddit.BaseURL, cfg.RedditUserAgent), nil
	case models.SourceRSS:
		return NewRSSSource(cfg.Sources.RSS.Feeds), nil
	default:
		return nil, fmt.Errorf("unknown source %q", name)
	}
}
