// Package mongo connects to MongoDB with the official v2 driver and provides
// a collection-backed key/value Storage.
//
// Storage keeps one document per key, {_id: key, value: <binary>}, and
// upserts on Set. A missing key is reported as a nil value and a nil error.
package mongo
