// Package watch holds the settings of the automatic push loop: how long a
// tracked file must stay quiet before a push and how often to push anyway.
package watch
