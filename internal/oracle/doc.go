// Package oracle is the client for the remote reading service.
//
// The service exposes two endpoints:
//
//	GET  /health       plain-text liveness probe ("ok")
//	POST /api/reading  {"spread": {...}} -> {"model", "text", "raw"}
//
// The client performs exactly one request per call. Retry and fallback
// policy belong to the caller.
package oracle
