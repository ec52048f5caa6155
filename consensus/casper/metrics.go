package casper

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/sirupsen/logrus"
)

var (
	log = logrus.WithField("prefix", "casper")

	createdMessageCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casper_created_messages_total",
		Help: "The number of messages created on top of an estimate.",
	})
	rejectedMessageCount = promauto.NewCounter(prometheus.CounterOpts{
		Name: "casper_rejected_messages_total",
		Help: "The number of message creations that failed.",
	})
)
