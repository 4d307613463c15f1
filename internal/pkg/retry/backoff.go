package retry

import "time"

// TaskBackoffBase 渠道任务重试的基础间隔
const TaskBackoffBase = time.Minute

// ExponentialDelay 第 attempt 次重试的等待时间：base * 2^attempt
// attempt 小于 0 时按 0 处理
func ExponentialDelay(base time.Duration, attempt int) time.Duration {
	if attempt < 0 {
		attempt = 0
	}
	return base << uint(attempt)
}

// NextRetryTime 渠道任务在 now 之后的下一次重试时间
// retryCount 是已经累加过的重试次数
func NextRetryTime(now time.Time, retryCount int) time.Time {
	return now.Add(ExponentialDelay(TaskBackoffBase, retryCount))
}
