package message

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("prefix", "message")

	messagesCreatedCount = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "arena_messages_created_total",
			Help: "The number of messages stored in message arenas, by kind.",
		},
		[]string{"kind"},
	)
	rejectedMessagesCount = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "arena_messages_rejected_total",
			Help: "The number of messages the arena refused to store.",
		},
	)
)
