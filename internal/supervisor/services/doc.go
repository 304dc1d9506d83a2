// Playstats - Game Platform Analytics and Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/playstats

/*
Package services provides suture.Service wrappers for Playstats components.

Each wrapper translates a component lifecycle into suture's context-aware
Serve method and implements fmt.Stringer for supervisor event logs.

# Available Services

HTTPServerService wraps anything with ListenAndServe and Shutdown (normally
*http.Server). Cancellation triggers a graceful shutdown bounded by the
configured timeout. A listener error is returned so the supervisor restarts
the server.

CacheMonitorService republishes the result cache entry count to the
result_cache_entries gauge on a fixed interval and logs hit and miss
counters at debug level. Expired entries leave the cache without a write, so
the gauge would otherwise go stale.

# Return Values

  - ctx.Err() after a clean, requested stop
  - a wrapped error when the component fails and should be restarted
*/
package services
