package youtube

import (
	"fmt"
	"net/url"
	"regexp"
	"strconv"
	"strings"
)

var (
	videoIDPattern     = regexp.MustCompile(`^[A-Za-z0-9_-]{11}$`)
	isoDurationPattern = regexp.MustCompile(`^P(?:(\d+)D)?(?:T(?:(\d+)H)?(?:(\d+)M)?(?:(\d+)S)?)?$`)
)

func WatchURL(videoID string) string {
	return "https://www.youtube.com/watch?v=" + videoID
}

func ChannelURL(channelID string) string {
	if channelID == "" {
		return ""
	}
	return "https://www.youtube.com/channel/" + channelID
}

// ExtractVideoID finds the video id in watch, short, live, embed and
// youtu.be links. Text around the link is ignored.
func ExtractVideoID(value string) (string, bool) {
	start := strings.Index(value, "http://")
	if i := strings.Index(value, "https://"); i >= 0 && (start < 0 || i < start) {
		start = i
	}
	if start < 0 {
		return "", false
	}
	link := value[start:]
	if end := strings.IndexAny(link, " \t\r\n"); end >= 0 {
		link = link[:end]
	}

	u, err := url.Parse(link)
	if err != nil {
		return "", false
	}
	host := strings.ToLower(u.Hostname())
	for _, prefix := range []string{"www.", "m.", "music."} {
		host = strings.TrimPrefix(host, prefix)
	}

	var id string
	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	switch host {
	case "youtu.be":
		id = segments[0]
	case "youtube.com", "youtube-nocookie.com":
		switch {
		case segments[0] == "watch":
			id = u.Query().Get("v")
		case len(segments) >= 2 && isPathPrefix(segments[0]):
			id = segments[1]
		}
	}

	if !videoIDPattern.MatchString(id) {
		return "", false
	}
	return id, true
}

func isPathPrefix(segment string) bool {
	switch segment {
	case "shorts", "live", "embed", "v":
		return true
	}
	return false
}

// ParseISODuration converts durations such as PT1H2M3S or P1DT5M to
// seconds.
func ParseISODuration(value string) (int64, error) {
	match := isoDurationPattern.FindStringSubmatch(value)
	if match == nil || value == "P" || strings.HasSuffix(value, "T") {
		return 0, fmt.Errorf("invalid ISO-8601 duration %q", value)
	}

	units := []int64{86400, 3600, 60, 1}
	var total int64
	for i, unit := range units {
		if match[i+1] == "" {
			continue
		}
		n, err := strconv.ParseInt(match[i+1], 10, 64)
		if err != nil {
			return 0, fmt.Errorf("invalid ISO-8601 duration %q: %w", value, err)
		}
		total += n * unit
	}
	return total, nil
}
