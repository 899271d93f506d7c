package planning

import (
	"context"
	"fmt"

	"github.com/epiday/epiday/internal/intra/jsonv"
	"github.com/epiday/epiday/internal/model"
)

// SubmitToken submits a presence token for a regular event. The portal
// answers 2xx even on failure and puts the real error in the body, so a
// body-level `error` string is surfaced as a rejected operation.
func (s *Service) SubmitToken(ctx context.Context, cred string, coord model.Coordinate, token string) error {
	path := fmt.Sprintf("/module/%d/%s/%s/%s/%s/token?format=json",
		coord.Year, coord.CodeModule, coord.CodeInstance, coord.CodeActi, coord.CodeEvent)

	body, err := s.gw.PostJSONAuth(ctx, cred, path, map[string]string{"token": token})
	if err != nil {
		return err
	}

	doc, ok := jsonv.Decode(body)
	if !ok {
		return fmt.Errorf("%w: failed to parse intra response in json", model.ErrBadShape)
	}
	if msg, ok := jsonv.Str(doc, "error"); ok {
		return fmt.Errorf("%w: %s", model.ErrUpstreamRejected, msg)
	}
	return nil
}

// UnregisterEvent removes the caller from a regular event. Distinguishes the
// portal's "past activity" refusal, which is a caller error, from a plain
// not-registered refusal.
func (s *Service) UnregisterEvent(ctx context.Context, cred string, coord model.Coordinate) error {
	path := fmt.Sprintf("/module/%d/%s/%s/%s/%s/unregister?format=json",
		coord.Year, coord.CodeModule, coord.CodeInstance, coord.CodeActi, coord.CodeEvent)

	status, body, err := s.gw.PostAuthRaw(ctx, cred, path)
	if err != nil {
		return err
	}
	if status == 200 {
		return nil
	}

	doc, ok := jsonv.Decode(body)
	if !ok {
		return fmt.Errorf("%w: failed to parse intra response in json", model.ErrBadShape)
	}
	if msg, ok := jsonv.Str(doc, "error"); ok {
		if msg == "You cannot unregister from a past activity" {
			return fmt.Errorf("%w: past event", model.ErrInvalidInput)
		}
		return fmt.Errorf("%w: not registered", model.ErrUpstreamRejected)
	}
	return fmt.Errorf("%w: could not unregister", model.ErrUpstreamRejected)
}
