package client

import (
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/dmitrijs2005/activityboard/internal/client/models"
)

// decodeReply reads message/detail out of a JSON object body. A FastAPI
// validation error carries detail as a list of {loc,msg,type}; the first
// msg is used then.
func decodeReply(status int, body []byte) (Reply, error) {
	root, err := parseObject(body)
	if err != nil {
		return Reply{}, err
	}

	r := Reply{StatusCode: status}
	if msg := root.Get("message"); msg.Type == gjson.String {
		r.Message = msg.String()
	}

	detail := root.Get("detail")
	switch {
	case detail.Type == gjson.String:
		r.Detail = detail.String()
	case detail.IsArray():
		r.Detail = detail.Get("0.msg").String()
	}
	return r, nil
}

func decodeAuthState(body []byte) (models.AuthState, error) {
	root, err := parseObject(body)
	if err != nil {
		return models.SignedOut, err
	}
	authenticated := root.Get("authenticated")
	if !authenticated.IsBool() {
		return models.SignedOut, fmt.Errorf("%w: authenticated is %s", ErrMalformedResponse, authenticated.Type)
	}
	state := models.AuthState{Authenticated: authenticated.Bool()}
	if state.Authenticated {
		state.Username = root.Get("username").String()
	}
	return state, nil
}

// decodeCatalog walks the name→record object in document order so the
// catalog keeps the server's listing order.
func decodeCatalog(body []byte) (models.Catalog, error) {
	root, err := parseObject(body)
	if err != nil {
		return models.Catalog{}, err
	}

	var (
		items  []models.Activity
		badErr error
	)
	root.ForEach(func(key, value gjson.Result) bool {
		if !value.IsObject() {
			badErr = fmt.Errorf("%w: activity %q is not an object", ErrMalformedResponse, key.String())
			return false
		}
		participants := value.Get("participants")
		if !participants.IsArray() {
			badErr = fmt.Errorf("%w: activity %q has no participant list", ErrMalformedResponse, key.String())
			return false
		}

		a := models.Activity{
			Name:            key.String(),
			Description:     value.Get("description").String(),
			Schedule:        value.Get("schedule").String(),
			MaxParticipants: int(value.Get("max_participants").Int()),
			Participants:    make([]string, 0, len(participants.Array())),
		}
		for _, p := range participants.Array() {
			a.Participants = append(a.Participants, p.String())
		}
		items = append(items, a)
		return true
	})
	if badErr != nil {
		return models.Catalog{}, badErr
	}
	return models.NewCatalog(items), nil
}

func parseObject(body []byte) (gjson.Result, error) {
	if !gjson.ValidBytes(body) {
		return gjson.Result{}, fmt.Errorf("%w: body is not JSON", ErrMalformedResponse)
	}
	root := gjson.ParseBytes(body)
	if !root.IsObject() {
		return gjson.Result{}, fmt.Errorf("%w: expected an object, got %s", ErrMalformedResponse, root.Type)
	}
	return root, nil
}
