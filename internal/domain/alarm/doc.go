// Package alarm contains the threshold alarm latch.
//
// An Alarm starts Idle and moves to Triggered the first time a checked value
// exceeds its threshold. There is no way back to Idle.
package alarm
