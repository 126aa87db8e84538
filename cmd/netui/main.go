// Command netui scans the local network and reports live host and
// connection throughput.
package main

import "github.com/yousfiSaad/netui/cmd"

func main() {
	cmd.Execute()
}
