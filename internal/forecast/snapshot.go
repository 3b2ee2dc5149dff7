package forecast

import "forecast/internal/core"

// rowSnapshot memoizes provider answers for the duration of one row
// computation, so every formula in the chain observes a single consistent
// value per query signature. A and J stay two independent fetch call sites;
// the snapshot simply answers the second from the first.
//
// A snapshot serves exactly one ComputeRow call and is not safe for
// concurrent use.
type rowSnapshot struct {
	memo map[string]core.Amount
}

func newRowSnapshot() *rowSnapshot {
	return &rowSnapshot{memo: make(map[string]core.Amount, 9)}
}

// fetch returns the memoized answer for key, invoking query on first use.
// Errors are never memoized: the row computation fails fast instead.
func (s *rowSnapshot) fetch(key string, query func() (core.Amount, error)) (core.Amount, error) {
	if v, ok := s.memo[key]; ok {
		return v, nil
	}
	v, err := query()
	if err != nil {
		return core.Amount{}, err
	}
	s.memo[key] = v
	return v, nil
}
