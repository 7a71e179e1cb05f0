// Package logtail reads the tail of stockdeck's own log file and turns the
// JSON events zerolog writes into entries the log overlay can render.
//
// Read keeps a ring buffer of the last maxLines lines, so memory stays
// bounded by the overlay size rather than the file size. A missing file is
// not an error: the overlay simply shows nothing until the first event is
// written.
//
// Parse never fails. Lines that are not JSON objects, such as console
// formatted output, come back as raw entries with only Message set.
package logtail
