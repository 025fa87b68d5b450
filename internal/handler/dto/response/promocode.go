package response

import (
	"time"

	"promocode-service/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

const dateLayout = "2006-01-02"

type CreatedResponse struct {
	ID string `json:"id"`
}

type TargetResponse struct {
	AgeFrom    *int     `json:"age_from,omitempty"`
	AgeUntil   *int     `json:"age_until,omitempty"`
	Country    *string  `json:"country,omitempty"`
	Categories []string `json:"categories,omitempty"`
}

// PromocodeResponse is the owner's view. Identifiers and dates change
// representation, so they use names copier does not match.
type PromocodeResponse struct {
	PromoID         string         `json:"promo_id"`
	CompanyID       string         `json:"company_id"`
	BusinessName    string         `json:"company_name"`
	Description     string         `json:"description"`
	ImageURL        *string        `json:"image_url,omitempty"`
	Target          TargetResponse `json:"target"`
	MaxCount        int            `json:"max_count"`
	ActiveFromDate  *string        `json:"active_from,omitempty"`
	ActiveUntilDate *string        `json:"active_until,omitempty"`
	Mode            string         `json:"mode"`
	PromoCommon     *string        `json:"promo_common,omitempty"`
	PromoUnique     []string       `json:"promo_unique,omitempty"`
	LikeCount       int            `json:"like_count"`
	UsedCount       int            `json:"used_count"`
	Active          bool           `json:"active"`
}

func FromPromocodeView(v *queries.PromocodeView) (*PromocodeResponse, error) {
	res := &PromocodeResponse{
		PromoID:         v.ID.String(),
		CompanyID:       v.BusinessID.String(),
		ActiveFromDate:  formatDate(v.ActiveFrom),
		ActiveUntilDate: formatDate(v.ActiveUntil),
	}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromPromocodeViews(views []*queries.PromocodeView) ([]*PromocodeResponse, error) {
	res := make([]*PromocodeResponse, 0, len(views))
	for _, v := range views {
		r, err := FromPromocodeView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type UserPromocodeResponse struct {
	PromoID           string  `json:"promo_id"`
	CompanyID         string  `json:"company_id"`
	BusinessName      string  `json:"company_name"`
	Description       string  `json:"description"`
	ImageURL          *string `json:"image_url,omitempty"`
	Active            bool    `json:"active"`
	IsActivatedByUser bool    `json:"is_activated_by_user"`
	LikeCount         int     `json:"like_count"`
	IsLikedByUser     bool    `json:"is_liked_by_user"`
	CommentCount      int     `json:"comment_count"`
}

func FromUserPromocodeView(v *queries.UserPromocodeView) (*UserPromocodeResponse, error) {
	res := &UserPromocodeResponse{
		PromoID:   v.ID.String(),
		CompanyID: v.BusinessID.String(),
	}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromUserPromocodeViews(views []*queries.UserPromocodeView) ([]*UserPromocodeResponse, error) {
	res := make([]*UserPromocodeResponse, 0, len(views))
	for _, v := range views {
		r, err := FromUserPromocodeView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}

type CountryStatResponse struct {
	Country          string `json:"country"`
	ActivationsCount int    `json:"activations_count"`
}

type PromocodeStatResponse struct {
	ActivationsCount int                   `json:"activations_count"`
	Countries        []CountryStatResponse `json:"countries,omitempty"`
}

func FromPromocodeStat(v *queries.PromocodeStatView) (*PromocodeStatResponse, error) {
	res := &PromocodeStatResponse{}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

type ActivationResponse struct {
	Promo string `json:"promo"`
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}
