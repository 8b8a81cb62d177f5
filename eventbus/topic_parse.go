package eventbus

import (
	"strconv"
	"strings"
	"time"
)

const retryInfix = ".retry."

// ParseRetryDelayFromTopicName maps "<base>.retry.<n>" to RetryDelays[n-1].
func ParseRetryDelayFromTopicName(name string) (time.Duration, bool) {
	idx := strings.LastIndex(name, retryInfix)
	if idx == -1 || idx+len(retryInfix) >= len(name) {
		return 0, false
	}
	n, err := strconv.Atoi(name[idx+len(retryInfix):])
	if err != nil {
		return 0, false
	}
	if n <= 0 || n > len(RetryDelays) {
		return 0, false
	}
	return RetryDelays[n-1], true
}
