package youtube

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"tagtube/domain/model"
	"tagtube/domain/repository"
	"tagtube/infrastructure/configuration"
	"tagtube/infrastructure/logger"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"
)

// maxPageSize is the largest page search.list accepts.
const maxPageSize = 50

var videoParts = []string{"snippet", "contentDetails", "statistics", "liveStreamingDetails"}

// Client resolves searches and links against the YouTube Data API and
// returns them as raw results.
type Client struct {
	service *youtube.Service
}

// NewYouTubeClient creates a client for the resolved mode. With no usable
// credentials it returns a DisabledClient instead of failing.
func NewYouTubeClient(ctx context.Context, cfg *configuration.YouTubeConfig, opts ...option.ClientOption) (repository.IVideoSearch, error) {
	mode := cfg.ResolvedMode()
	switch mode {
	case configuration.YouTubeModeDisabled:
		logger.GetLogger().Warn("YouTube search disabled, every search returns the not available record")
		return DisabledClient{}, nil
	case configuration.YouTubeModeAPIKey:
		opts = append(opts, option.WithAPIKey(cfg.APIKey))
	case configuration.YouTubeModeOAuth:
		oauth2Config := &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURL,
			Scopes:       []string{youtube.YoutubeReadonlyScope},
			Endpoint:     google.Endpoint,
		}
		token := &oauth2.Token{
			AccessToken:  cfg.AccessToken,
			RefreshToken: cfg.RefreshToken,
			TokenType:    "Bearer",
			Expiry:       time.Now().Add(-1 * time.Minute), // force refresh on first use
		}
		opts = append(opts, option.WithTokenSource(oauth2Config.TokenSource(ctx, token)))
	}

	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create YouTube service in %s mode: %w", mode, err)
	}
	logger.GetLogger().WithField("mode", mode).Info("YouTube client ready")
	return &Client{service: service}, nil
}

// Search runs a keyword search and loads full details for every hit, in
// search order. A response without an item list yields ErrNoEntries.
func (c *Client) Search(ctx context.Context, query string, maxResults int) ([]model.RawResult, error) {
	if maxResults <= 0 || maxResults > maxPageSize {
		maxResults = maxPageSize
	}

	response, err := c.service.Search.List([]string{"id"}).
		Q(query).
		Type("video").
		MaxResults(int64(maxResults)).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to search videos: %w", err)
	}
	if response.Items == nil {
		return nil, repository.ErrNoEntries
	}

	var videoIDs []string
	for _, item := range response.Items {
		if item.Id != nil && item.Id.VideoId != "" {
			videoIDs = append(videoIDs, item.Id.VideoId)
		}
	}
	if len(videoIDs) == 0 {
		return []model.RawResult{}, nil
	}

	details, err := c.service.Videos.List(videoParts).
		Id(strings.Join(videoIDs, ",")).
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}

	byID := make(map[string]*youtube.Video, len(details.Items))
	for _, video := range details.Items {
		byID[video.Id] = video
	}
	results := make([]model.RawResult, 0, len(videoIDs))
	for _, id := range videoIDs {
		if video, ok := byID[id]; ok {
			results = append(results, toRawResult(video))
		}
	}
	return results, nil
}

// SearchByURL resolves one link. Links that do not point at a video the
// API knows yield ErrExtractionFailed.
func (c *Client) SearchByURL(ctx context.Context, rawURL string) ([]model.RawResult, error) {
	videoID, ok := ExtractVideoID(rawURL)
	if !ok {
		return nil, fmt.Errorf("%w: no video id in %q", repository.ErrExtractionFailed, rawURL)
	}

	response, err := c.service.Videos.List(videoParts).Id(videoID).Context(ctx).Do()
	if err != nil {
		var apiErr *googleapi.Error
		if errors.As(err, &apiErr) && (apiErr.Code == http.StatusNotFound || apiErr.Code == http.StatusBadRequest) {
			return nil, fmt.Errorf("%w: %s", repository.ErrExtractionFailed, apiErr.Message)
		}
		return nil, fmt.Errorf("failed to get video details: %w", err)
	}
	if len(response.Items) == 0 {
		return nil, fmt.Errorf("%w: video %s not found", repository.ErrExtractionFailed, videoID)
	}
	return []model.RawResult{toRawResult(response.Items[0])}, nil
}

// toRawResult only sets the keys the API actually answered, so absent
// parts read back as missing.
func toRawResult(video *youtube.Video) model.RawResult {
	raw := model.RawResult{
		"id":          video.Id,
		"url":         WatchURL(video.Id),
		"live_status": liveStatus(video),
	}

	if snippet := video.Snippet; snippet != nil {
		raw["title"] = snippet.Title
		raw["channel_id"] = snippet.ChannelId
		raw["channel_url"] = ChannelURL(snippet.ChannelId)
		raw["uploader"] = snippet.ChannelTitle
		if snippet.Thumbnails != nil {
			raw["thumbnails"] = thumbnails(snippet.Thumbnails)
		}
	}

	if details := video.ContentDetails; details != nil && details.Duration != "" {
		if seconds, err := ParseISODuration(details.Duration); err == nil {
			raw["duration"] = seconds
		} else {
			logger.GetLogger().WithFields(map[string]interface{}{"video": video.Id, "duration": details.Duration}).Warn("Unparseable duration")
		}
	}

	if stats := video.Statistics; stats != nil {
		raw["view_count"] = stats.ViewCount
	}
	return raw
}

func liveStatus(video *youtube.Video) string {
	if video.Snippet != nil {
		switch video.Snippet.LiveBroadcastContent {
		case "live":
			return model.LiveStatusIsLive
		case "upcoming":
			return "is_upcoming"
		}
	}
	if video.LiveStreamingDetails != nil {
		return "was_live"
	}
	return "not_live"
}

// thumbnails ranks the sizes by preference, larger is better.
func thumbnails(details *youtube.ThumbnailDetails) []interface{} {
	ranked := []*youtube.Thumbnail{
		details.Default,
		details.Medium,
		details.High,
		details.Standard,
		details.Maxres,
	}

	list := make([]interface{}, 0, len(ranked))
	for preference, thumb := range ranked {
		if thumb == nil || thumb.Url == "" {
			continue
		}
		list = append(list, map[string]interface{}{
			"url":        thumb.Url,
			"width":      thumb.Width,
			"height":     thumb.Height,
			"preference": preference,
		})
	}
	return list
}
