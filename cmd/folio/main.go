package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/user-none/folio"
)

func main() {
	opts, err := folio.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, folio.ErrHelp) {
			fmt.Print(folio.Usage())
			return
		}
		fmt.Fprintln(os.Stderr, err)
		fmt.Fprint(os.Stderr, folio.Usage())
		os.Exit(2)
	}

	if err := folio.Run(opts); err != nil {
		log.Fatalf("[App] %v", err)
	}
}
