// Command distql-scheduler runs the distributed query scheduler.
package main

import "distql/scheduler/cmd"

func main() {
	cmd.Execute()
}
