package service

import (
	"context"

	"github.com/google/uuid"
)

// recomputeFlight is one shared recompute of a (recipe, goal) pair. Callers
// join it only while it is open. It closes right before it reads the recipe,
// so every caller gets a result built from data read after its call began.
// A flight waits for the previous flight of its key before closing, which
// keeps at most one running and one open flight per key.
type recomputeFlight struct {
	ctx     context.Context
	cancel  context.CancelFunc
	waiters int
	prev    <-chan struct{}
	done    chan struct{}
}

func recomputeKey(recipeID uuid.UUID, goal string) string {
	return recipeID.String() + "|" + goal
}

// shareRecompute runs fn once for all callers that join the open flight of
// key. Each caller waits under its own ctx. The shared work runs detached
// from any single caller and is cancelled only once every caller has left.
func (s *Service) shareRecompute(ctx context.Context, key string, fn func(ctx context.Context) (Nutrition, error)) (Nutrition, error) {
	s.flightMu.Lock()
	f, ok := s.flights[key]
	if !ok {
		fctx, cancel := context.WithCancel(context.WithoutCancel(ctx))
		f = &recomputeFlight{ctx: fctx, cancel: cancel, prev: s.lastFlight[key], done: make(chan struct{})}
		s.flights[key] = f
		s.lastFlight[key] = f.done
	}
	f.waiters++
	ch := s.recompute.DoChan(key, func() (interface{}, error) {
		defer s.finishFlight(key, f)
		if f.prev != nil {
			select {
			case <-f.prev:
			case <-f.ctx.Done():
				return nil, f.ctx.Err()
			}
		}
		s.closeFlight(key, f)
		return fn(f.ctx)
	})
	s.flightMu.Unlock()

	select {
	case res := <-ch:
		s.leaveFlight(key, f)
		if res.Err != nil {
			return Nutrition{}, res.Err
		}
		return res.Val.(Nutrition), nil
	case <-ctx.Done():
		s.leaveFlight(key, f)
		return Nutrition{}, ctx.Err()
	}
}

func (s *Service) closeFlight(key string, f *recomputeFlight) {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()
	s.closeFlightLocked(key, f)
}

func (s *Service) closeFlightLocked(key string, f *recomputeFlight) {
	if s.flights[key] == f {
		delete(s.flights, key)
		s.recompute.Forget(key)
	}
}

// leaveFlight drops a caller. The last one out cancels the shared work and,
// if the flight is still open, closes it so later callers start fresh.
func (s *Service) leaveFlight(key string, f *recomputeFlight) {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()
	f.waiters--
	if f.waiters == 0 {
		f.cancel()
		s.closeFlightLocked(key, f)
	}
}

func (s *Service) finishFlight(key string, f *recomputeFlight) {
	s.flightMu.Lock()
	defer s.flightMu.Unlock()
	s.closeFlightLocked(key, f)
	close(f.done)
	if s.lastFlight[key] == f.done {
		delete(s.lastFlight, key)
	}
}
