package pubsub

// PubSubClient is the narrow publishing interface the matchmaking core depends on.
type PubSubClient interface {
	SendMessage(topic EventType, data any) error
	ProcessMessage(data []byte, returnValue any) error
}
