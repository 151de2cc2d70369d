// Package environment names the deployment environments the service knows
// about and carries the active one through request contexts.
//
// Parse normalises user input such as "prod" or "dev" into an Environment.
// Middleware stores the value in every request context so handlers and the
// logger can branch on it without reaching for global state.
package environment
