package notification

import (
	"strconv"
	"strings"

	"hirebot/internal/pkg/errs"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

var (
	ErrMissingID = errs.New("payload has no id")
	ErrInvalidID = errs.New("payload id is not a positive integer")
)

type idPayload struct {
	ID jsoniter.RawMessage `json:"id"`
}

// ParsePayload decodes a channel payload into a ChangeEvent. Every failure is
// marked with errs.ErrMalformedPayload.
//
// Status payloads are {"id": <int>}; a quoted integer is tolerated.
// Activity payloads are {"id": <int>} or, for older triggers, a bare integer.
func ParsePayload(ch Channel, raw string) (ChangeEvent, error) {
	if ch == ChannelUnknown {
		return ChangeEvent{}, errs.ErrUnknownChannel
	}

	id, err := parseObjectID(raw, ch == ChannelStatus)
	if err != nil && ch == ChannelActivity {
		if n, convErr := strconv.ParseInt(strings.TrimSpace(raw), 10, 64); convErr == nil {
			id, err = n, nil
		}
	}
	if err == nil && id <= 0 {
		err = ErrInvalidID
	}
	if err != nil {
		return ChangeEvent{}, errs.Mark(errs.Wrap(err, "parse "+ch.String()+" payload"), errs.ErrMalformedPayload)
	}

	return ChangeEvent{Channel: ch, RawPayload: raw, SubjectID: id}, nil
}

func parseObjectID(raw string, allowQuoted bool) (int64, error) {
	var body idPayload
	if err := json.Unmarshal([]byte(raw), &body); err != nil {
		return 0, err
	}

	trimmed := strings.TrimSpace(string(body.ID))
	if trimmed == "" || trimmed == "null" {
		return 0, ErrMissingID
	}

	var id int64
	if err := json.Unmarshal(body.ID, &id); err == nil {
		return id, nil
	}

	if allowQuoted {
		var s string
		if err := json.Unmarshal(body.ID, &s); err == nil {
			if n, convErr := strconv.ParseInt(strings.TrimSpace(s), 10, 64); convErr == nil {
				return n, nil
			}
		}
	}

	return 0, ErrInvalidID
}
