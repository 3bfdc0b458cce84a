package main

import "github.com/mordilloSan/alignlog/cmd"

// Usage:
//
//	alignlog log -s warning "disk almost full"
//	alignlog separator --char -
//	alignlog demo --dir /tmp/alignlog
func main() {
	cmd.Execute()
}
