package kafka

import (
	"context"

	"github.com/segmentio/kafka-go"

	"smartraw-backend/config"
)

// CreateKafkaProducer dials the broker leader for the configured topic.
// Returns nil when no broker is configured; event publication is then skipped.
func CreateKafkaProducer(config *config.Config) *kafka.Conn {
	if config.KafkaConfig.BrokerAddress == "" {
		return nil
	}

	conn, err := kafka.DialLeader(context.Background(), "tcp", config.KafkaConfig.BrokerAddress, config.KafkaConfig.BrokerTopic, config.KafkaConfig.BrokerPartition)
	if err != nil {
		panic(err)
	}

	return conn
}
