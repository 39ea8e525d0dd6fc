package utils

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatTime(t *testing.T) {
	tests := []struct {
		seconds int64
		want    string
	}{
		{0, "00:00"},
		{5, "00:05"},
		{59, "00:59"},
		{60, "01:00"},
		{61, "01:01"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3661, "01:01:01"},
		{36000, "10:00:00"},
		{360000, "100:00:00"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatTime(tt.seconds), "seconds=%d", tt.seconds)
	}
}

func TestFormatCompactNumber(t *testing.T) {
	tests := []struct {
		number int64
		want   string
	}{
		{1, "1"},
		{999, "999"},
		{1000, "1.0k"},
		{1250, "1.2k"},
		{15300, "15.3k"},
		{999999, "1000.0k"},
		{1_000_000, "1.0M"},
		{2_750_000, "2.8M"},
		{1_000_000_000, "1.0B"},
		{12_345_678_901, "12.3B"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompactNumber(tt.number), "number=%d", tt.number)
	}
}

func TestIsURL(t *testing.T) {
	assert.True(t, IsURL("https://youtube.com/watch?v=xyz"))
	assert.True(t, IsURL("http://youtu.be/xyz"))
	assert.True(t, IsURL("look at https://youtu.be/xyz"))
	assert.False(t, IsURL("lofi hip hop"))
	assert.False(t, IsURL("youtube.com/watch?v=xyz"))
}

func TestTruthy(t *testing.T) {
	for _, v := range []interface{}{nil, 0, int64(0), 0.0, "", false, json.Number("0")} {
		assert.False(t, Truthy(v), "%#v", v)
	}
	for _, v := range []interface{}{1, int64(7), 2.5, "0", "x", true, json.Number("12")} {
		assert.True(t, Truthy(v), "%#v", v)
	}
}

func TestToInt64(t *testing.T) {
	cases := map[string]struct {
		in   interface{}
		want int64
	}{
		"int":         {42, 42},
		"float64":     {212.9, 212},
		"string":      {"3600", 3600},
		"floatString": {"61.5", 61},
		"uint64":      {uint64(10), 10},
		"jsonNumber":  {json.Number("15"), 15},
	}
	for name, c := range cases {
		got, err := ToInt64(c.in)
		require.NoError(t, err, name)
		assert.Equal(t, c.want, got, name)
	}

	_, err := ToInt64("twelve")
	assert.Error(t, err)
	_, err = ToInt64([]string{"1"})
	assert.Error(t, err)
}
