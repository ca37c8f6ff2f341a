package circuitbreaker

import (
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errUpstream = errors.New("upstream unavailable")

func newTestBreaker(trip func(Counts) bool, timeout time.Duration) *CircuitBreaker {
	return NewCircuitBreaker("test", Config{
		MaxRequests: 2,
		Interval:    time.Minute,
		Timeout:     timeout,
		ReadyToTrip: trip,
	})
}

// TestBreakerStaysClosedOnSuccess 成功请求不影响关闭状态
func TestBreakerStaysClosedOnSuccess(t *testing.T) {
	cb := newTestBreaker(func(c Counts) bool {
		return c.ConsecutiveFailures >= 2
	}, time.Minute)

	for i := 0; i < 7; i++ {
		require.NoError(t, cb.Execute(func() error { return nil }))
	}

	assert.Equal(t, StateClosed, cb.State())
	assert.Equal(t, uint32(7), cb.Counts().TotalSuccesses)
	assert.Zero(t, cb.Counts().ConsecutiveFailures)
}

// TestBreakerTripsAndFastFails 连续失败触发熔断后快速失败
func TestBreakerTripsAndFastFails(t *testing.T) {
	cb := newTestBreaker(func(c Counts) bool {
		return c.ConsecutiveFailures >= 3
	}, time.Minute)

	for i := 0; i < 3; i++ {
		assert.ErrorIs(t, cb.Execute(func() error { return errUpstream }), errUpstream)
	}
	require.Equal(t, StateOpen, cb.State())

	// 熔断中的请求不应触达下游
	reached := false
	err := cb.Execute(func() error {
		reached = true
		return nil
	})
	assert.ErrorIs(t, err, ErrOpenState)
	assert.False(t, reached, "熔断打开时不应调用下游")
}

// TestBreakerWindowResetInClosed 关闭状态下统计窗口过期后计数清零
func TestBreakerWindowResetInClosed(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		MaxRequests: 2,
		Interval:    80 * time.Millisecond,
		Timeout:     time.Minute,
		ReadyToTrip: func(c Counts) bool {
			return c.ConsecutiveFailures >= 3
		},
	})

	// 窗口内2次失败,未达阈值
	for i := 0; i < 2; i++ {
		_ = cb.Execute(func() error { return errUpstream })
	}

	// 窗口过期后第3次失败不应和前2次累计
	time.Sleep(120 * time.Millisecond)
	_ = cb.Execute(func() error { return errUpstream })

	assert.Equal(t, StateClosed, cb.State(), "跨窗口的失败不应累计触发熔断")
}

// TestBreakerRecoveryFlow 熔断恢复全流程: CLOSED→OPEN→HALF_OPEN→CLOSED
func TestBreakerRecoveryFlow(t *testing.T) {
	cb := newTestBreaker(func(c Counts) bool {
		// 失败率熔断:至少4个请求且失败率达75%
		return c.Requests >= 4 && c.FailureRate() >= 0.75
	}, 60*time.Millisecond)

	var transitions []string
	cb.SetStateChangeCallback(func(name string, from, to State) {
		transitions = append(transitions, from.String()+"->"+to.String())
	})

	// 1成功3失败,失败率75%
	_ = cb.Execute(func() error { return nil })
	for i := 0; i < 3; i++ {
		_ = cb.Execute(func() error { return errUpstream })
	}
	require.Equal(t, StateOpen, cb.State())

	// 超时后半开,探测成功即恢复
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, StateClosed, cb.State())

	assert.Equal(t, []string{
		"CLOSED->OPEN",
		"OPEN->HALF_OPEN",
		"HALF_OPEN->CLOSED",
	}, transitions)
}

// TestBreakerHalfOpenProbeFailure 半开状态下探测失败立即重新熔断
func TestBreakerHalfOpenProbeFailure(t *testing.T) {
	cb := newTestBreaker(func(c Counts) bool {
		return c.ConsecutiveFailures >= 2
	}, 60*time.Millisecond)

	for i := 0; i < 2; i++ {
		_ = cb.Execute(func() error { return errUpstream })
	}
	require.Equal(t, StateOpen, cb.State())

	time.Sleep(100 * time.Millisecond)
	_ = cb.Execute(func() error { return errUpstream })

	assert.Equal(t, StateOpen, cb.State(), "探测失败应立即转回OPEN")
}

// TestBreakerHalfOpenLimitsProbes 半开状态限制并发探测数
func TestBreakerHalfOpenLimitsProbes(t *testing.T) {
	cb := NewCircuitBreaker("test", Config{
		MaxRequests: 1,
		Interval:    time.Minute,
		Timeout:     60 * time.Millisecond,
		ReadyToTrip: func(c Counts) bool {
			return c.ConsecutiveFailures >= 2
		},
	})

	for i := 0; i < 2; i++ {
		_ = cb.Execute(func() error { return errUpstream })
	}
	time.Sleep(100 * time.Millisecond)

	// 第一个探测请求挂起时,第二个请求应被拒绝
	probeStarted := make(chan struct{})
	release := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = cb.Execute(func() error {
			close(probeStarted)
			<-release
			return nil
		})
	}()

	<-probeStarted
	err := cb.Execute(func() error { return nil })
	assert.ErrorIs(t, err, ErrOpenState, "超出半开请求上限应被拒绝")

	close(release)
	wg.Wait()
	assert.Equal(t, StateClosed, cb.State())
}
