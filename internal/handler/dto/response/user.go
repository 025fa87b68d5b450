package response

import (
	"promocode-service/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type ProfileResponse struct {
	Name      string        `json:"name"`
	Surname   string        `json:"surname"`
	Email     string        `json:"email"`
	AvatarURL *string       `json:"avatar_url,omitempty"`
	Other     OtherResponse `json:"other"`
}

type OtherResponse struct {
	Age     int    `json:"age"`
	Country string `json:"country"`
}

func FromProfileView(v *queries.UserProfileView) *ProfileResponse {
	return &ProfileResponse{
		Name:      v.Name,
		Surname:   v.Surname,
		Email:     v.Email,
		AvatarURL: v.AvatarURL,
		Other:     OtherResponse{Age: v.Age, Country: v.Country},
	}
}

type CommentAuthorResponse struct {
	Name      string  `json:"name"`
	Surname   string  `json:"surname"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

type CommentResponse struct {
	CommentID string                `json:"id"`
	Text      string                `json:"text"`
	Date      string                `json:"date"`
	Author    CommentAuthorResponse `json:"author"`
}

func FromCommentView(v *queries.CommentView) (*CommentResponse, error) {
	res := &CommentResponse{
		CommentID: v.ID.String(),
		Date:      v.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
	}
	if err := copier.Copy(res, v); err != nil {
		return nil, err
	}
	return res, nil
}

func FromCommentViews(views []*queries.CommentView) ([]*CommentResponse, error) {
	res := make([]*CommentResponse, 0, len(views))
	for _, v := range views {
		r, err := FromCommentView(v)
		if err != nil {
			return nil, err
		}
		res = append(res, r)
	}
	return res, nil
}
