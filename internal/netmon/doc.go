// Package netmon watches udev netlink events for the managed network
// interface and reports when it appears or disappears.
//
// The monitor is advisory: it only logs and invokes an optional callback.
// Failure to open the netlink socket is non-fatal since the daemon works
// without interface tracking.
package netmon
