// Package watcher polls a modules server until its alarm is triggered.
package watcher
