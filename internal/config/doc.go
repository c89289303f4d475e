// Package config loads overlay settings from YAML files.
//
// A file may describe a placement request, for the resolve command, and
// key-binding overrides for the focus-trap chain:
//
//	placement:
//	  anchor: {x: 10, y: 4, width: 12, height: 1}
//	  content: {width: 24, height: 6}
//	  container: {x: 0, y: 0, width: 80, height: 24}
//	  preferred: bottom-start
//	  fallbacks: [top-start, end-top]
//	  gap: 1
//	keys:
//	  - mode: action-menu
//	    action: next
//	    keys: [j, down]
//
// Files are validated on load. Syntax problems are reported as *ParseError
// and schema problems as *ValidationError.
package config
