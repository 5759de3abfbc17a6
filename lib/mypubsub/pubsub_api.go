package mypubsub

import "context"

// PubSub carries the donation lifecycle events between services.
//
//go:generate mockgen -source=pubsub_api.go -package mypubsub -destination pubsub_mock.go PubSub
type PubSub interface {
	Publish(c context.Context, topic string, data string) error
	CreateTopic(c context.Context, topic string) error
	Subscribe(c context.Context, topic string, urlToPostTo string) error
}

// New is set at init time to the implementation that fits the runtime
// environment.
var New func(c context.Context) (PubSub, func(), error)
