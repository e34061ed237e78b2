package models

import "time"

// SocialLinks holds the optional social media URLs of a profile.
type SocialLinks struct {
	Youtube   string `json:"youtube,omitempty"`
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
}

// Profile represents the public profile a creator maintains.
// CreatorName and CreatorAvatar are joined from the creators table on reads.
type Profile struct {
	ID            string      `json:"id"`
	CreatorID     string      `json:"creatorId"`
	CreatorName   string      `json:"creatorName,omitempty"`
	CreatorAvatar string      `json:"creatorAvatar,omitempty"`
	Company       string      `json:"company,omitempty"`
	Website       string      `json:"website,omitempty"`
	Location      string      `json:"location,omitempty"`
	Bio           string      `json:"bio,omitempty"`
	Status        string      `json:"status"`
	Skills        []string    `json:"skills"`
	Social        SocialLinks `json:"social"`
	CreatedAt     time.Time   `json:"createdAt"`
	UpdatedAt     time.Time   `json:"updatedAt"`
}
