//go:build !cgo

package main

import (
	"errors"

	"github.com/appengine-ltd/plantagotchi/internal/config"
)

// Without cgo there is no raylib; run always takes the terminal path.
const windowAvailable = false

func runWindow(*config.Config, *session, string) error {
	return errors.New("window interface needs a cgo build")
}
