package usecase

import (
	"fmt"
	"iter"
	"math"

	"tagtube/domain/model"
	"tagtube/infrastructure/utils"
)

// VideoDefaults holds one complete substitute record per error kind. It
// is built once and only read afterwards.
type VideoDefaults struct {
	records map[model.ErrorKind]model.VideoRecord
}

// NewVideoDefaults builds the table from the defaults file content. Every
// kind has to be present.
func NewVideoDefaults(raw map[string]map[string]interface{}) (*VideoDefaults, error) {
	records := make(map[model.ErrorKind]model.VideoRecord, len(model.ErrorKinds))
	for _, kind := range model.ErrorKinds {
		fields, ok := raw[string(kind)]
		if !ok {
			return nil, fmt.Errorf("video defaults: missing %q entry", kind)
		}
		record, err := defaultRecord(kind, fields)
		if err != nil {
			return nil, err
		}
		records[kind] = record
	}
	return &VideoDefaults{records: records}, nil
}

func defaultRecord(kind model.ErrorKind, fields map[string]interface{}) (model.VideoRecord, error) {
	errorCode := kind
	record := model.VideoRecord{
		Tag:         stringOf(fields["tag"]),
		URL:         stringOf(fields["url"]),
		Title:       stringOf(fields["title"]),
		Thumbnail:   stringOf(fields["thumbnail"]),
		LiveStatus:  stringOf(fields["live_status"]),
		ChannelTag:  stringOf(fields["channel_tag"]),
		ChannelURL:  stringOf(fields["channel_url"]),
		ChannelName: stringOf(fields["channel_name"]),
		ErrorCode:   &errorCode,
	}

	var err error
	if record.Duration, err = formatted(fields["duration"], utils.FormatTime); err != nil {
		return record, fmt.Errorf("video defaults %s: duration: %w", kind, err)
	}
	if record.ViewCount, err = formatted(fields["view_count"], utils.FormatCompactNumber); err != nil {
		return record, fmt.Errorf("video defaults %s: view_count: %w", kind, err)
	}
	if v, ok := fields["channel_is_verified"].(bool); ok {
		record.ChannelIsVerified = &v
	}
	return record, nil
}

// Record returns a copy of the default record of kind.
func (d *VideoDefaults) Record(kind model.ErrorKind) model.VideoRecord {
	record := d.records[kind]
	record.Duration = clonePtr(record.Duration)
	record.ViewCount = clonePtr(record.ViewCount)
	record.ChannelIsVerified = clonePtr(record.ChannelIsVerified)
	record.ErrorCode = clonePtr(record.ErrorCode)
	return record
}

// Records is the single-element result returned for a failed search.
func (d *VideoDefaults) Records(kind model.ErrorKind) []model.VideoRecord {
	return []model.VideoRecord{d.Record(kind)}
}

type VideoNormalizer struct {
	defaults *VideoDefaults
}

func NewVideoNormalizer(defaults *VideoDefaults) *VideoNormalizer {
	return &VideoNormalizer{defaults: defaults}
}

// Normalize yields one record per raw result, in order. Records are
// built as the sequence is consumed.
func (n *VideoNormalizer) Normalize(raws []model.RawResult) iter.Seq[model.VideoRecord] {
	return func(yield func(model.VideoRecord) bool) {
		for _, raw := range raws {
			if !yield(n.normalize(raw)) {
				return
			}
		}
	}
}

func (n *VideoNormalizer) normalize(raw model.RawResult) model.VideoRecord {
	fallback := n.defaults.Record(model.ErrorKindNotAvailable)

	record := model.VideoRecord{
		Tag:               stringField(raw, "id", fallback.Tag),
		URL:               stringField(raw, "url", fallback.URL),
		Title:             stringField(raw, "title", fallback.Title),
		Duration:          displayField(raw, "duration", fallback.Duration, utils.FormatTime),
		Thumbnail:         bestThumbnail(raw["thumbnails"], fallback.Thumbnail),
		ViewCount:         displayField(raw, "view_count", fallback.ViewCount, utils.FormatCompactNumber),
		LiveStatus:        stringField(raw, "live_status", fallback.LiveStatus),
		ChannelTag:        stringField(raw, "channel_id", fallback.ChannelTag),
		ChannelURL:        stringField(raw, "channel_url", fallback.ChannelURL),
		ChannelName:       stringField(raw, "uploader", fallback.ChannelName),
		ChannelIsVerified: boolField(raw, "channel_is_verified", fallback.ChannelIsVerified),
	}

	if record.IsLive() {
		return n.defaults.Record(model.ErrorKindNotAllowed)
	}
	return record
}

// stringField falls back only when the key is missing. A present null
// reads as the empty string.
func stringField(raw model.RawResult, key, fallback string) string {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	return stringOf(v)
}

func stringOf(v interface{}) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	}
	return fmt.Sprint(v)
}

// displayField formats a numeric value. Empty values become null and
// values that are not numbers fall back to the default display value.
func displayField(raw model.RawResult, key string, fallback *string, format func(int64) string) *string {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	display, err := formatted(v, format)
	if err != nil {
		return fallback
	}
	return display
}

func formatted(v interface{}, format func(int64) string) (*string, error) {
	if !utils.Truthy(v) {
		return nil, nil
	}
	n, err := utils.ToInt64(v)
	if err != nil {
		return nil, err
	}
	if n < 0 {
		return nil, fmt.Errorf("negative value %d", n)
	}
	s := format(n)
	return &s, nil
}

func boolField(raw model.RawResult, key string, fallback *bool) *bool {
	v, ok := raw[key]
	if !ok {
		return fallback
	}
	switch t := v.(type) {
	case nil:
		return nil
	case bool:
		return &t
	}
	return fallback
}

// bestThumbnail picks the candidate with the greatest preference. Missing
// preferences rank lowest and the first candidate wins ties.
func bestThumbnail(v interface{}, fallback string) string {
	candidates := thumbnailCandidates(v)
	if len(candidates) == 0 {
		return fallback
	}

	best := candidates[0]
	bestPreference := preferenceOf(best)
	for _, candidate := range candidates[1:] {
		if p := preferenceOf(candidate); p > bestPreference {
			best, bestPreference = candidate, p
		}
	}

	url, ok := best["url"].(string)
	if !ok {
		return fallback
	}
	return url
}

func thumbnailCandidates(v interface{}) []map[string]interface{} {
	switch list := v.(type) {
	case []map[string]interface{}:
		return list
	case []interface{}:
		candidates := make([]map[string]interface{}, 0, len(list))
		for _, item := range list {
			m, _ := item.(map[string]interface{})
			candidates = append(candidates, m)
		}
		return candidates
	}
	return nil
}

func preferenceOf(candidate map[string]interface{}) float64 {
	v, ok := candidate["preference"]
	if !ok {
		return math.Inf(-1)
	}
	switch t := v.(type) {
	case int:
		return float64(t)
	case int64:
		return float64(t)
	case float64:
		return t
	}
	if n, err := utils.ToInt64(v); err == nil {
		return float64(n)
	}
	return math.Inf(-1)
}

func clonePtr[T any](p *T) *T {
	if p == nil {
		return nil
	}
	v := *p
	return &v
}
