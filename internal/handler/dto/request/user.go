package request

import "promocode-service/internal/usecase/commands"

type PatchProfileRequest struct {
	Name      *string `json:"name" binding:"omitempty,min=1,max=100"`
	Surname   *string `json:"surname" binding:"omitempty,min=1,max=120"`
	AvatarURL *string `json:"avatar_url" binding:"omitempty,url,max=350"`
	Password  *string `json:"password" binding:"omitempty,min=8,max=60"`
}

func (r *PatchProfileRequest) ToCommand() commands.UpdateProfileRequest {
	return commands.UpdateProfileRequest{
		Name:      r.Name,
		Surname:   r.Surname,
		AvatarURL: r.AvatarURL,
		Password:  r.Password,
	}
}

type CommentRequest struct {
	Text string `json:"text" binding:"required,min=10,max=1000"`
}
