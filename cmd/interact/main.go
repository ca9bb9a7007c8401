// Command interact replays interaction scenarios and runs the terminal demo.
package main

import (
	"log"
	"os"

	"github.com/go-drift/interact/cmd/interact/cmd"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("interact: ")
	if err := cmd.Execute(); err != nil {
		log.Printf("%v", err)
		os.Exit(1)
	}
}
