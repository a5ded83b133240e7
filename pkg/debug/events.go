package debug

// Event is the first byte of a message sent by a client.
type Event = uint8

const (
	// System messages carry a Setting and its value, e.g.
	// {System, Deduplicate, 0} disables deduplication.
	System  Event = 10
	Closing Event = 255
)

// Setting identifies a server setting a client may change.
type Setting = uint8

const (
	_ Setting = iota
	Deduplicate
)
