// Package analytics records fire-and-forget site events: page views,
// delivered contact messages and donations.
//
// Sinks write to a logger, a Prometheus counter or a capped Redis stream;
// Multi fans out to several and Stamped fills in timestamps.
package analytics
