// Package batch computes the reflectors of many independent phases in
// parallel.
//
// 🚀 Runner
//
//	r, _ := batch.NewRunner(scattering.XRay(), batch.WithConcurrency(4))
//	rep, err := r.Run(ctx, jobs)
//
// Jobs run under an errgroup with a concurrency limit. Each job builds or
// receives its own *phase.Phase, so no phase is shared between goroutines.
// Results come back in job order whatever the completion order.
//
// ⚠️ Failure modes
//
// By default a failing job is recorded in its Result and the others carry on.
// WithFailFast cancels the remaining jobs on the first error and Run returns
// that error. Cancelling ctx stops jobs that have not started yet; a job
// already inside ComputeReflectors runs to completion.
//
// 📈 Metrics
//
// NewMetrics registers Prometheus collectors (phases by status, compute
// duration, reflectors kept) on a caller-supplied Registerer.
package batch
