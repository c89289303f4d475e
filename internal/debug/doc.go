// Package debug provides optional structured debug logging.
//
// When the OVERLAY_DEBUG environment variable is set to a file path, debug
// messages are appended to that file as JSON lines. Otherwise, logging is a
// no-op until Init or SetOutput is called.
package debug
