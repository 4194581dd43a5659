// Package redis connects to a Redis server with retries and exposes a
// healthcheck suitable for readiness checks.
//
//	var cfg redis.Config
//	config.MustLoad(&cfg)
//
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	check := redis.Healthcheck(client)
package redis
