// Package pg connects to PostgreSQL through pgxpool, applies goose
// migrations and provides a table-backed key/value Storage.
//
// Connect retries pool creation and PING with a linear backoff. Migrate runs
// goose over an fs.FS; the package ships its own schema in Migrations, which
// creates the kv_store table used by Storage.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil { ... }
//	if err := pg.Migrate(ctx, pool, cfg, pg.Migrations, log); err != nil { ... }
//	store := pg.NewStorage(pool)
package pg
