package clock

import "time"

//go:generate mockgen -destination=mocks/mock_time_provider.go -package=mocks github.com/KirkDiggler/skirmish/internal/clock TimeProvider

type TimeProvider interface {
	Now() time.Time
}

type realTimeProvider struct{}

func (realTimeProvider) Now() time.Time {
	return time.Now().UTC()
}

// New returns the wall clock in UTC
func New() TimeProvider {
	return realTimeProvider{}
}
