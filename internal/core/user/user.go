// Package user fetches the caller's portal profile. The profile supplies the
// (email, current_semester) pair the day-schedule operation takes as input.
package user

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"github.com/epiday/epiday/internal/intra/jsonv"
	"github.com/epiday/epiday/internal/model"
)

// Gateway is the subset of the portal client the user service uses.
type Gateway interface {
	GetAuth(ctx context.Context, cred, path string) ([]byte, error)
}

type Service struct {
	gw  Gateway
	log zerolog.Logger
}

func NewService(gw Gateway, log zerolog.Logger) *Service {
	return &Service{gw: gw, log: log}
}

// Info returns the caller's profile. Every field is defaultable: the portal
// omits several of them for fresh or staff accounts, so gaps fall back to
// fixed placeholders instead of failing the call.
func (s *Service) Info(ctx context.Context, cred string) (*model.User, error) {
	body, err := s.gw.GetAuth(ctx, cred, "/user/?format=json")
	if err != nil {
		return nil, err
	}

	doc, ok := jsonv.Decode(body)
	if !ok {
		return nil, fmt.Errorf("%w: failed to parse intra response in json", model.ErrBadShape)
	}

	u := &model.User{
		Name:     "Ano Nymous",
		Email:    "ano.nymous@epitech.eu",
		City:     "Homeless",
		Year:     42,
		Semester: 42,
		Credits:  0,
		GPA:      "0.00",
		Log:      0.00,
	}

	if name, ok := jsonv.Str(doc, "title"); ok {
		u.Name = name
	}
	if email, ok := jsonv.Str(doc, "login"); ok {
		u.Email = email
	}
	if city, ok := jsonv.Str(doc, "groups", 0, "title"); ok {
		u.City = city
	}
	if year, ok := jsonv.Uint(doc, "studentyear"); ok {
		u.Year = year
	}
	if semester, ok := jsonv.Uint(doc, "semester"); ok {
		u.Semester = semester
	}
	if credits, ok := jsonv.Uint(doc, "credits"); ok {
		u.Credits = credits
	}
	if gpa, ok := jsonv.Str(doc, "gpa", 0, "gpa"); ok {
		u.GPA = gpa
	}
	if hours, ok := jsonv.Num(doc, "nsstat", "active"); ok {
		u.Log = hours
	}

	return u, nil
}
