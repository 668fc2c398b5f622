// Package database provides SQLite-based storage for scamscan.
//
// ResultDB stores:
//   - Analysis results, queried by time window for trends and alerts
//   - The append-only training corpus, replayed into the classifier at
//     start-up so that retrains survive restarts
//
// SQLite is used through modernc.org/sqlite, a CGO-free driver, so the
// database is a single file in the XDG data directory.
package database
