package reply

import (
	"strings"
	"time"

	"gathering/internal/app/errors"
)

// Form field names shared by the client and the server
const (
	FieldPickupTime = "pickupTime"
	FieldMessage    = "message"
)

// Payload is the JSON object of form fields sent to the reply endpoint
type Payload map[string]string

// Response is the JSON body returned by the reply endpoint
type Response struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

// Reply is one stored guest reply
type Reply struct {
	ID         string            `json:"id"`
	PickupTime string            `json:"pickupTime"`
	Message    string            `json:"message"`
	Extra      map[string]string `json:"extra,omitempty"`
	CreatedAt  time.Time         `json:"createdAt"`
}

// Validate checks the payload carries at least a pickup time
func (p Payload) Validate() error {
	if len(p) == 0 {
		return errors.ErrEmptyReply
	}

	if strings.TrimSpace(p[FieldPickupTime]) == "" {
		return errors.ErrPickupTimeRequired
	}

	return nil
}

// Reply converts the payload into a reply, moving unknown fields into Extra
func (p Payload) Reply(id string, at time.Time) Reply {
	r := Reply{
		ID:         id,
		PickupTime: strings.TrimSpace(p[FieldPickupTime]),
		Message:    strings.TrimSpace(p[FieldMessage]),
		CreatedAt:  at.UTC(),
	}

	for k, v := range p {
		if k == FieldPickupTime || k == FieldMessage {
			continue
		}

		if r.Extra == nil {
			r.Extra = make(map[string]string)
		}

		r.Extra[k] = v
	}

	return r
}
