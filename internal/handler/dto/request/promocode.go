package request

import (
	"promocode-service/internal/usecase/commands"
	"promocode-service/internal/usecase/queries"
)

type TargetRequest struct {
	AgeFrom    *int     `json:"age_from" binding:"omitempty,min=0,max=100"`
	AgeUntil   *int     `json:"age_until" binding:"omitempty,min=0,max=100"`
	Country    *string  `json:"country" binding:"omitempty,len=2"`
	Categories []string `json:"categories" binding:"omitempty,max=20,dive,min=2,max=20"`
}

func (t TargetRequest) toInput() commands.TargetInput {
	return commands.TargetInput{
		AgeFrom:    t.AgeFrom,
		AgeUntil:   t.AgeUntil,
		Country:    t.Country,
		Categories: t.Categories,
	}
}

type CreatePromocodeRequest struct {
	Description string        `json:"description" binding:"required,min=10,max=300"`
	ImageURL    *string       `json:"image_url" binding:"omitempty,url,max=350"`
	Target      TargetRequest `json:"target"`
	MaxCount    *int          `json:"max_count" binding:"required,min=0,max=100000000"`
	ActiveFrom  *Date         `json:"active_from"`
	ActiveUntil *Date         `json:"active_until"`
	Mode        string        `json:"mode" binding:"required,oneof=COMMON UNIQUE"`
	PromoCommon *string       `json:"promo_common" binding:"omitempty,min=5,max=30"`
	PromoUnique []string      `json:"promo_unique" binding:"omitempty,max=5000,dive,min=3,max=30"`
}

func (r *CreatePromocodeRequest) ToCommand() commands.CreatePromocodeRequest {
	return commands.CreatePromocodeRequest{
		Description: r.Description,
		ImageURL:    r.ImageURL,
		Target:      r.Target.toInput(),
		MaxCount:    *r.MaxCount,
		ActiveFrom:  r.ActiveFrom.TimePtr(),
		ActiveUntil: r.ActiveUntil.TimePtr(),
		Mode:        r.Mode,
		PromoCommon: r.PromoCommon,
		PromoUnique: r.PromoUnique,
	}
}

type PatchPromocodeRequest struct {
	Description *string        `json:"description" binding:"omitempty,min=10,max=300"`
	ImageURL    *string        `json:"image_url" binding:"omitempty,url,max=350"`
	Target      *TargetRequest `json:"target"`
	MaxCount    *int           `json:"max_count" binding:"omitempty,min=0,max=100000000"`
	ActiveFrom  *Date          `json:"active_from"`
	ActiveUntil *Date          `json:"active_until"`
}

func (r *PatchPromocodeRequest) ToCommand() commands.UpdatePromocodeRequest {
	req := commands.UpdatePromocodeRequest{
		Description: r.Description,
		ImageURL:    r.ImageURL,
		MaxCount:    r.MaxCount,
		ActiveFrom:  r.ActiveFrom.TimePtr(),
		ActiveUntil: r.ActiveUntil.TimePtr(),
	}
	if r.Target != nil {
		in := r.Target.toInput()
		req.Target = &in
	}
	return req
}

type PageQuery struct {
	Limit  *int `form:"limit" binding:"omitempty,min=0"`
	Offset int  `form:"offset" binding:"omitempty,min=0"`
}

func (q PageQuery) ToPage() queries.Page {
	return queries.Page{Limit: q.Limit, Offset: q.Offset}
}

type BusinessListQuery struct {
	PageQuery
	Country []string `form:"country"`
	SortBy  string   `form:"sort_by" binding:"omitempty,oneof=active_from active_until"`
}

type FeedQuery struct {
	PageQuery
	Category string `form:"category"`
	Active   *bool  `form:"active"`
}
