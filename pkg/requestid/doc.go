// Package requestid tags every request with an id for log correlation.
package requestid
