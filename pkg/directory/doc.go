// Package directory fetches the user list from the upstream REST API and
// serves filtered, locally editable views of it.
//
// Client performs GET {base}/users with a 10 second default timeout. Any
// transport, status or decoding failure is returned joined with
// ErrFetchUsers; there is no automatic retry.
//
// Service caches one list per profile. The first List call for a profile
// fetches; later calls filter the cached copy. Refresh re-fetches on demand,
// and Delete removes a user from the profile's copy only, the upstream is
// never modified.
//
// Filter matches the query case-insensitively against the user's name and
// city. A blank query returns every user.
package directory
