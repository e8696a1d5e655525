package http

import (
	"strings"
	"time"

	"ai-task-planner/internal/auth"
	"ai-task-planner/internal/model"
)

type signInReq struct {
	Email    string `json:"email"    binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (r signInReq) validate() error {
	if strings.TrimSpace(r.Email) == "" {
		return auth.ErrInvalidEmail
	}
	return nil
}

func (r signInReq) toInput() auth.SignInInput {
	return auth.SignInInput{Email: r.Email, Password: r.Password}
}

type userResp struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Avatar    string    `json:"avatar"`
	CreatedAt time.Time `json:"created_at"`
}

func newUserResp(u model.User) userResp {
	return userResp{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Avatar:    u.Avatar,
		CreatedAt: u.CreatedAt,
	}
}

type signInResp struct {
	Token   string   `json:"token"`
	User    userResp `json:"user"`
	Created bool     `json:"created"`
}

func newSignInResp(out auth.SignInOutput) signInResp {
	return signInResp{
		Token:   out.Token,
		User:    newUserResp(out.User),
		Created: out.Created,
	}
}
