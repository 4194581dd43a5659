// Package charsheet builds character sheets on top of package form and serves
// them over HTTP.
//
// A sheet is a form tree in one of two layouts. The flat layout keeps every
// field at the root; the sectioned layout groups names and address under
// "personal" and class and level under "characterInfo". Both carry an
// "emails" and a "phoneNumbers" collection whose first entry is required.
//
// Email entries are checked against an EmailDirectory. MemoryDirectory,
// RedisDirectory and PostgresDirectory implement it; the check runs on the
// configured trigger and reports the "duplicate" rule. A lookup that fails is
// reported as "unverified" and retried on the next blur or submit.
//
// Service keeps open sheets in an LRU cache with an idle TTL and exposes the
// sheet commands (change, blur, append, remove, drop-rule, submit). Every
// command returns a View with the collected errors and field values. A
// successful submit also carries the normalized User record.
//
// Router mounts the JSON and DataStar endpoints:
//
//	GET    /classes
//	POST   /sheets
//	GET    /sheets/{id}
//	DELETE /sheets/{id}
//	PUT    /sheets/{id}/fields
//	POST   /sheets/{id}/blur
//	POST   /sheets/{id}/collections/{name}
//	DELETE /sheets/{id}/collections/{name}/{index}
//	POST   /sheets/{id}/rules/remove
//	POST   /sheets/{id}/submit
//	GET    /health
package charsheet
