package queries

import (
	"time"

	"github.com/google/uuid"
)

type TargetView struct {
	AgeFrom    *int     `json:"age_from,omitempty"`
	AgeUntil   *int     `json:"age_until,omitempty"`
	Country    *string  `json:"country,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// PromocodeView is the owner's view and includes the codes themselves.
type PromocodeView struct {
	ID           uuid.UUID  `json:"promo_id"`
	BusinessID   uuid.UUID  `json:"company_id"`
	BusinessName string     `json:"company_name"`
	Description  string     `json:"description"`
	ImageURL     *string    `json:"image_url,omitempty"`
	Target       TargetView `json:"target"`
	MaxCount     int        `json:"max_count"`
	ActiveFrom   *time.Time `json:"active_from,omitempty"`
	ActiveUntil  *time.Time `json:"active_until,omitempty"`
	Mode         string     `json:"mode"`
	PromoCommon  *string    `json:"promo_common,omitempty"`
	PromoUnique  []string   `json:"promo_unique,omitempty"`
	LikeCount    int        `json:"like_count"`
	UsedCount    int        `json:"used_count"`
	Active       bool       `json:"active"`
	CreatedAt    time.Time  `json:"-"`
}

// UserPromocodeView is what end users see; codes are never exposed here.
type UserPromocodeView struct {
	ID                uuid.UUID `json:"promo_id"`
	BusinessID        uuid.UUID `json:"company_id"`
	BusinessName      string    `json:"company_name"`
	Description       string    `json:"description"`
	ImageURL          *string   `json:"image_url,omitempty"`
	Active            bool      `json:"active"`
	IsActivatedByUser bool      `json:"is_activated_by_user"`
	LikeCount         int       `json:"like_count"`
	IsLikedByUser     bool      `json:"is_liked_by_user"`
	CommentCount      int       `json:"comment_count"`
}

type CountryStat struct {
	Country          string `json:"country"`
	ActivationsCount int    `json:"activations_count"`
}

type PromocodeStatView struct {
	ActivationsCount int           `json:"activations_count"`
	Countries        []CountryStat `json:"countries,omitempty"`
}

type CommentAuthorView struct {
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type CommentView struct {
	ID          uuid.UUID         `json:"id"`
	PromocodeID uuid.UUID         `json:"-"`
	Text        string            `json:"text"`
	CreatedAt   time.Time         `json:"date"`
	Author      CommentAuthorView `json:"author"`
}

type UserProfileView struct {
	ID        uuid.UUID `json:"-"`
	Name      string    `json:"name"`
	Surname   string    `json:"surname"`
	Email     string    `json:"email"`
	AvatarURL *string   `json:"avatar_url,omitempty"`
	Age       int       `json:"age"`
	Country   string    `json:"country"`
}
