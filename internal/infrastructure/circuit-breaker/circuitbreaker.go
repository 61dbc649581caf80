package circuitbreaker

import (
	"time"

	"github.com/sony/gobreaker/v2"
)

// CreateCircuitBreaker trips after at least 3 requests with a 60% failure
// ratio. isSuccessful decides which errors count as failures; nil counts all.
func CreateCircuitBreaker[T any](name string, isSuccessful func(err error) bool) *gobreaker.CircuitBreaker[T] {
	var st gobreaker.Settings
	st.Name = name
	st.Timeout = 30 * time.Second
	st.ReadyToTrip = func(counts gobreaker.Counts) bool {
		failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
		return counts.Requests >= 3 && failureRatio >= 0.6
	}
	st.IsSuccessful = isSuccessful

	return gobreaker.NewCircuitBreaker[T](st)
}
