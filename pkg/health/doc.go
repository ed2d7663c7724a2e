// Package health provides liveness and readiness HTTP handlers.
//
// ReadinessHandler runs named Checks concurrently under a shared timeout
// and reports each result, answering 503 when any fails:
//
//	r.Get("/health/ready", health.ReadinessHandler(health.Checks{
//	    "resend": resend.Healthcheck(sender),
//	}, health.WithTimeout(3*time.Second), health.WithLogger(log)))
//
//	{"status":"unhealthy","checks":{"resend":{"status":"unhealthy","error":"resend: sender is not configured","latency":"12µs"}}}
package health
