// Package core runs order cleaning jobs.
//
// It sits between the transports (CLI and HTTP) and the cleaning pipeline,
// and is independent of both. A run is one pass over one input file:
//
//  1. the CSV is decoded into an orders.Table
//  2. a read-only snapshot is taken for the before/after report
//  3. the cleaning pipeline transforms the table
//  4. the report summary is computed and the run is recorded
//
// # Runs
//
// Completed runs are kept in memory, newest last, up to
// [Options.MaxRetained]. When a [RunStore] is configured every run is also
// persisted before it is recorded. Concurrent runs are bounded by a
// [RunLimiter]; each run owns its own table, so runs never share state.
//
// # Error Handling
//
// Technical errors are mapped to user-friendly messages using [MapError].
// Each error category has a unique code for support reference:
//
//   - FILE001-FILE005: File errors (size, format, missing, empty)
//   - RUN001-RUN004: Run errors (not found, busy, cancelled, timeout)
//   - DB001-DB004: Database errors (connections, timeouts, conflicts)
package core
