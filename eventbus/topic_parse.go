package eventbus

import (
	"strconv"
	"strings"
	"time"
)

const retryMarker = ".retry."

// ParseRetryDelayFromTopicName 은 재시도 토픽 이름에서 지연 시간을 꺼낸다.
// "<base>.retry.30s" 처럼 duration 접미사를 쓰며, 예전 형식인 "<base>.retry.<n>"
// (RetryDelays[n-1]) 도 받아들인다.
func ParseRetryDelayFromTopicName(name string) (time.Duration, bool) {
	idx := strings.LastIndex(name, retryMarker)
	if idx == -1 || idx+len(retryMarker) >= len(name) {
		return 0, false
	}
	suffix := name[idx+len(retryMarker):]

	if n, err := strconv.Atoi(suffix); err == nil {
		if n <= 0 || n > len(RetryDelays) {
			return 0, false
		}
		return RetryDelays[n-1], true
	}

	d, err := time.ParseDuration(suffix)
	if err != nil || d <= 0 {
		return 0, false
	}
	return d, true
}
