// Package pg opens a pgx connection pool with retries, applies goose
// migrations and exposes a readiness healthcheck.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	if err := pg.Migrate(ctx, pool, db.Migrations, cfg, log); err != nil {
//	    return err
//	}
package pg
