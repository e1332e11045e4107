package producao

import "sync/atomic"

// Session tags fetches with a monotonically increasing generation so a caller
// that issues overlapping fetches (the user changed a filter mid-flight) can
// discard every completion except the latest issued. There is no task
// cancellation; both pipelines run to completion and the stale one is
// dropped.
//
//	gen := session.Begin()
//	page, err := svc.FetchPage(ctx, criteria, clientes)
//	if session.Latest(gen) {
//		// keep page
//	}
type Session struct {
	gen atomic.Uint64
}

// Begin allocates the next generation. The fetch it tags supersedes all
// earlier ones.
func (s *Session) Begin() uint64 {
	return s.gen.Add(1)
}

// Latest reports whether gen is still the most recently issued generation.
func (s *Session) Latest(gen uint64) bool {
	return s.gen.Load() == gen
}
