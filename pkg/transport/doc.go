// Package transport posts JSON telemetry payloads to a collector.
//
// Delivery is deliberately fire-and-forget: the completion callback fires
// only on an unambiguous success response, and every failure mode collapses
// into "no acknowledgment". Callers that need reliability persist their
// payloads and resubmit on the next run; the transport never retries on its
// own and never surfaces errors.
package transport
