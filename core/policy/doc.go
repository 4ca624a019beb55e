// Package policy manages row-level security and access policies on the
// platform's storage object table.
//
// Two drivers exist. The rpc driver calls database functions over the
// platform REST surface with the service key; the sql driver connects to
// Postgres directly through GORM. Both receive the same statement text, and
// both report a duplicate policy with an error containing "already exists",
// which IsAlreadyExists recognises.
package policy
