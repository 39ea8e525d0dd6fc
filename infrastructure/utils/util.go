package utils

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

func GetCurrentTime() time.Time {
	return time.Now().UTC()
}

// FormatTime renders seconds as MM:SS below one hour and HH:MM:SS above.
func FormatTime(seconds int64) string {
	if seconds < 60 {
		return fmt.Sprintf("00:%02d", seconds)
	}
	if seconds < 3600 {
		return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
	}
	return fmt.Sprintf("%02d:%02d:%02d", seconds/3600, (seconds%3600)/60, seconds%60)
}

// FormatCompactNumber renders 1234 as 1.2k, 1234567 as 1.2M and so on.
func FormatCompactNumber(number int64) string {
	switch {
	case number >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", float64(number)/1_000_000_000)
	case number >= 1_000_000:
		return fmt.Sprintf("%.1fM", float64(number)/1_000_000)
	case number >= 1_000:
		return fmt.Sprintf("%.1fk", float64(number)/1_000)
	default:
		return strconv.FormatInt(number, 10)
	}
}

// IsURL tells a pasted link apart from a keyword query.
func IsURL(value string) bool {
	return strings.Contains(value, "https://") || strings.Contains(value, "http://")
}

// Truthy reports whether a loosely typed value carries data: nil, zero
// numbers, empty strings and false do not.
func Truthy(v interface{}) bool {
	switch t := v.(type) {
	case nil:
		return false
	case bool:
		return t
	case string:
		return t != ""
	case int:
		return t != 0
	case int32:
		return t != 0
	case int64:
		return t != 0
	case uint64:
		return t != 0
	case float32:
		return t != 0
	case float64:
		return t != 0
	case json.Number:
		return t != "" && t != "0"
	}
	return true
}

// ToInt64 converts numeric values and numeric strings, truncating
// fractions.
func ToInt64(v interface{}) (int64, error) {
	switch t := v.(type) {
	case int:
		return int64(t), nil
	case int32:
		return int64(t), nil
	case int64:
		return t, nil
	case uint64:
		if t > math.MaxInt64 {
			return 0, fmt.Errorf("value %d overflows int64", t)
		}
		return int64(t), nil
	case float32:
		return floatToInt64(float64(t))
	case float64:
		return floatToInt64(t)
	case json.Number:
		return stringToInt64(string(t))
	case string:
		return stringToInt64(t)
	}
	return 0, fmt.Errorf("unsupported numeric type %T", v)
}

func stringToInt64(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %q: %w", s, err)
	}
	return floatToInt64(f)
}

func floatToInt64(f float64) (int64, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f > math.MaxInt64 || f < math.MinInt64 {
		return 0, fmt.Errorf("value %v out of range", f)
	}
	return int64(f), nil
}
