package notification

type Channel int

const (
	ChannelUnknown Channel = iota
	ChannelStatus
	ChannelActivity
)

func (c Channel) String() string {
	switch c {
	case ChannelStatus:
		return "status"
	case ChannelActivity:
		return "activity"
	default:
		return "unknown"
	}
}

// Channels binds the two subscribed database channel names to their kinds.
type Channels struct {
	Status   string
	Activity string
}

func NewChannels(status, activity string) Channels {
	return Channels{Status: status, Activity: activity}
}

func (c Channels) Resolve(name string) Channel {
	switch name {
	case c.Status:
		return ChannelStatus
	case c.Activity:
		return ChannelActivity
	default:
		return ChannelUnknown
	}
}

func (c Channels) Names() []string {
	return []string{c.Status, c.Activity}
}

// ChangeEvent is a decoded notification. It lives for one dispatch cycle only.
type ChangeEvent struct {
	Channel    Channel
	RawPayload string
	SubjectID  int64
}
