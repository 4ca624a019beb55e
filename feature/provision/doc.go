// Package provision prepares a storage bucket on the hosted platform.
//
// A run is a linear pipeline:
//
//	check bucket -> create if absent -> enable row level security ->
//	create access rules -> scan local images -> upload each -> write helper
//
// # Error Policy
//
// Steps fail in three ways:
//   - Fatal: listing or creating the bucket, and writing the helper. Run
//     returns the error and nothing after it happens.
//   - Tolerated: creating an access rule that already exists.
//   - Non-fatal: enabling row level security, any other access rule error,
//     and per-file read or upload errors. They are logged, collected in the
//     Report, and the next item is attempted.
//
// Reruns are safe: the bucket is existence-checked, duplicate rules are
// tolerated, uploads overwrite, and the helper is always rewritten.
//
// # Usage
//
//	p := provision.New(store, policies, opts, logger, recorder)
//	report, err := p.Run(ctx)
package provision
