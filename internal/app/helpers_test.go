package app

import (
	"testing"

	"blockgol/internal/core"
	"blockgol/internal/session"
	"blockgol/internal/sizing"
)

func newTestController(t *testing.T) *session.Controller {
	t.Helper()
	layout, err := sizing.Fit(100, 100, 100)
	if err != nil {
		t.Fatal(err)
	}
	ctrl := session.New(layout, session.WithRNG(core.NewRNG(1)))
	ctrl.Apply(session.Clear())
	return ctrl
}
