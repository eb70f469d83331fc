// Command doboz is a CLI front-end over the doboz compression package.
package main

import "os"

func main() {
	if err := RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
