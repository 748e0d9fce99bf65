// Package demo implements the driver that shows the three components working
// together: two calculations, an audit log and a threshold notification.
package demo
