package metaclient

import (
	"context"
	"time"
)

// Clock abstrai o tempo para o executor e o polling de relatórios
type Clock interface {
	Now() time.Time
	// Sleep bloqueia por d ou até o contexto ser cancelado
	Sleep(ctx context.Context, d time.Duration) error
}

type realClock struct{}

// RealClock usa o relógio do sistema
func RealClock() Clock {
	return realClock{}
}

func (realClock) Now() time.Time {
	return time.Now()
}

func (realClock) Sleep(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
