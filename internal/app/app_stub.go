//go:build !ebiten

// Package app runs a session in an ebiten window. Headless builds register
// a frontend that only reports the missing build tag.
package app

import (
	"gopkg.in/errgo.v1"

	"landscapes/internal/config"
	"landscapes/internal/session"
)

// ErrNoWindow is returned by Run in builds without the ebiten tag.
var ErrNoWindow = errgo.New("window frontend requires building with the 'ebiten' tag")

// Run always fails in the headless build.
func Run(*session.Session) error {
	return ErrNoWindow
}

func init() {
	session.Register(config.UIGUI, Run)
}
