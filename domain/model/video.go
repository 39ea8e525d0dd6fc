package model

// RawResult is one loosely typed entry returned by the video search
// collaborator. No key is guaranteed to be present.
type RawResult map[string]interface{}

// ErrorKind names the default record substituted for real video data.
type ErrorKind string

const (
	ErrorKindNotValid     ErrorKind = "not_valid"
	ErrorKindNotAllowed   ErrorKind = "not_allowed"
	ErrorKindNotAvailable ErrorKind = "not_available"
	ErrorKindUnknownError ErrorKind = "unknown_error"
)

// LiveStatusIsLive marks content that is streaming right now.
const LiveStatusIsLive = "is_live"

// ErrorKinds lists every kind a defaults table has to define.
var ErrorKinds = []ErrorKind{
	ErrorKindNotValid,
	ErrorKindNotAllowed,
	ErrorKindNotAvailable,
	ErrorKindUnknownError,
}

func (k ErrorKind) Valid() bool {
	switch k {
	case ErrorKindNotValid, ErrorKindNotAllowed, ErrorKindNotAvailable, ErrorKindUnknownError:
		return true
	}
	return false
}

// VideoRecord is the normalized shape returned to search clients.
// Duration and ViewCount are display strings.
type VideoRecord struct {
	Tag               string     `json:"tag"`
	URL               string     `json:"url"`
	Title             string     `json:"title"`
	Duration          *string    `json:"duration"`
	Thumbnail         string     `json:"thumbnail"`
	ViewCount         *string    `json:"view_count"`
	LiveStatus        string     `json:"live_status"`
	ChannelTag        string     `json:"channel_tag"`
	ChannelURL        string     `json:"channel_url"`
	ChannelName       string     `json:"channel_name"`
	ChannelIsVerified *bool      `json:"channel_is_verified"`
	ErrorCode         *ErrorKind `json:"error_code"`
}

func (v VideoRecord) IsLive() bool {
	return v.LiveStatus == LiveStatusIsLive
}
