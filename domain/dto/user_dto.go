package dto

import (
	"time"

	"tagtube/domain/model"
)

// DefaultLocation fills location fields the client left out.
const DefaultLocation = "Unknown"

// UserDataRequest is the POST body of the user-data endpoint. Pointers
// tell an omitted field apart from an empty one.
type UserDataRequest struct {
	City    *string `json:"city"`
	Region  *string `json:"region"`
	Country *string `json:"country"`
}

func (r UserDataRequest) Location() (city, region, country string) {
	return valueOr(r.City, DefaultLocation), valueOr(r.Region, DefaultLocation), valueOr(r.Country, DefaultLocation)
}

type UserResponse struct {
	ID           uint      `json:"id"`
	Tag          string    `json:"tag"`
	City         string    `json:"city"`
	Region       string    `json:"region"`
	Country      string    `json:"country"`
	CreationDate time.Time `json:"creation_date"`
	UpdateDate   time.Time `json:"update_date"`
}

func NewUserResponse(u model.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Tag:          u.Tag,
		City:         u.City,
		Region:       u.Region,
		Country:      u.Country,
		CreationDate: u.CreationDate,
		UpdateDate:   u.UpdateDate,
	}
}

func valueOr(v *string, def string) string {
	if v == nil {
		return def
	}
	return *v
}
