package health

import (
	"context"
	"errors"
	"testing"
)

type fakeChecker struct {
	name string
	err  error
}

func (f fakeChecker) Name() string { return f.name }
func (f fakeChecker) Check(_ context.Context) error { return f.err }

func TestReadyAllHealthy(t *testing.T) {
	svc := NewService(fakeChecker{name: "a"}, fakeChecker{name: "b"})
	if err := svc.Ready(context.Background()); err != nil {
		t.Errorf("Ready = %v, want nil", err)
	}
}

func TestReadyPropagatesFailure(t *testing.T) {
	boom := errors.New("postgres down")
	svc := NewService(fakeChecker{name: "ok"}, fakeChecker{name: "db", err: boom})
	if err := svc.Ready(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Ready = %v, want %v", err, boom)
	}
}

func TestReadyNoCheckers(t *testing.T) {
	if err := NewService().Ready(context.Background()); err != nil {
		t.Errorf("Ready with no checkers = %v, want nil", err)
	}
}
