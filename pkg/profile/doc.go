// Package profile identifies the browser or device a request comes from.
//
// The dashboard has no user accounts. Draft state, the locally edited user
// list and toasts are all scoped to a profile id instead. Middleware resolves
// the id through a Transport chain, by default the X-Profile-ID header and
// then the userdash_profile cookie. When nothing is presented a new UUID is
// issued and set as a long-lived cookie.
//
// Handlers read the id with FromContext; the logger picks it up through
// LoggerExtractor.
package profile
