// Package runner — concurrent experiment harness over the descent engines.
//
// A Runner owns one read-only instance and runs independent descents on it:
// for every (method, run) pair it builds an initial tour, descends with the
// named method and records a Result.
//
// Scheduling:
//   - Jobs run on a bounded errgroup (WithWorkers, default GOMAXPROCS).
//   - The instance and the candidate catalog are shared; every job draws from
//     its own stream derived from (seed, run), so results do not depend on
//     scheduling order or worker count.
//   - Run k of every method starts from the same initial tour.
//   - The context and the time limit are checked between descents only;
//     a descent that has started always completes.
//
// Observability:
//   - Results carry a uuid and the descent Stats.
//   - WithMetrics records Prometheus counters and histograms per method.
//   - WithLogger logs batch start and end at Info, each descent at Debug.
package runner
