// Package timezone pins every wall-clock reading and formatting call to the
// zone configured in APP_TIMEZONE (an IANA name such as "Asia/Jakarta").
// An unknown or empty zone falls back to UTC.
package timezone
