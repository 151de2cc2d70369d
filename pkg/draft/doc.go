// Package draft persists the wizard's in-progress record and step.
//
// A Store is bound to one profile and writes two independent entries through
// a Backend:
//
//	<profile>:userFormData   JSON object with name, email, street, city, zipcode
//	<profile>:userFormStep   decimal step number, "1" to "3"
//
// Store satisfies wizard.DraftStore. It never returns errors to the wizard:
// backend failures are logged with component "draft_store" and swallowed, an
// undecodable record reads as "no draft", and a missing, unparsable or
// out-of-range step reads as step 1 (out-of-range numbers are clamped).
//
// # Backends
//
// MemoryBackend keeps values in a map and suits tests and single-process
// servers. FileBackend writes one file per key into a directory with atomic
// renames, guarded by a cross-process lock file so a terminal session and a
// server can share it. The redis, mongo and pg packages provide Storage types
// that satisfy Backend for shared deployments.
package draft
