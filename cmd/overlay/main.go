// Command overlay exercises the overlay interaction core from a terminal.
//
// Usage:
//
//	overlay resolve [flags]    Compute where a floating panel goes
//	overlay demo [flags]       Interactive menus, dialogs and a combobox
//	overlay version            Print version information
//
// Examples:
//
//	overlay resolve --anchor 100,50,80,30 --content 200,150 --container 0,0,1024,768
//	overlay resolve --config overlay.yaml --preview
//	overlay demo --rtl
//	OVERLAY_DEBUG=/tmp/overlay.log overlay demo
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
