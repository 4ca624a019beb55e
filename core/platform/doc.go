// Package platform talks to the hosted backend-as-a-service REST surface.
//
// A Client is bound to one key: provisioning uses the service key, read-only
// checks use the anonymous key. Every call carries the key both as the
// apikey header and as a bearer token. Requests go through the fiber HTTP
// agent (fasthttp).
//
// Non-2xx answers are turned into *Error, whose message carries the
// platform's own text so callers can match on it (e.g. "already exists").
package platform
