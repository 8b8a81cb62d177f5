package eventbus

import (
	"errors"
	"os"
	"strconv"
	"strings"

	"review-insight/config"
)

var (
	ErrNoBrokers = errors.New("KAFKA_BOOTSTRAP_SERVERS environment variable is required")
	ErrNoGroupID = errors.New("KAFKA_GROUP_ID environment variable is required")
)

// GetBrokers returns Kafka bootstrap servers from env KAFKA_BOOTSTRAP_SERVERS
func GetBrokers() (string, error) {
	v := strings.TrimSpace(os.Getenv("KAFKA_BOOTSTRAP_SERVERS"))
	if v == "" {
		return "", ErrNoBrokers
	}
	return v, nil
}

// GetGroupID returns consumer group id from env KAFKA_GROUP_ID
func GetGroupID() (string, error) {
	v := strings.TrimSpace(os.Getenv("KAFKA_GROUP_ID"))
	if v == "" {
		return "", ErrNoGroupID
	}
	return v, nil
}

// positiveIntFromEnv returns 0 (library default) for unset, malformed or non-positive values.
func positiveIntFromEnv(key string) int {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return 0
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		config.Logger.Warnf("invalid %s: %v, using default", key, err)
		return 0
	}
	if v <= 0 {
		config.Logger.Warnf("%s must be positive, using default", key)
		return 0
	}
	return v
}

func getKafkaMessageMaxBytesFromEnv() int {
	return positiveIntFromEnv("KAFKA_MESSAGE_MAX_BYTES")
}

func getKafkaMaxPollIntervalMsFromEnv() int {
	return positiveIntFromEnv("KAFKA_MAX_POLL_INTERVAL_MS")
}
