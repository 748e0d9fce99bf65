// Package recorder keeps an ordered, append-only history of text messages.
package recorder
