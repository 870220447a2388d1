package models

import (
	"github.com/FM1201/aijohub/cli/api"
	"github.com/FM1201/aijohub/cli/session"
)

// suppliersMsg delivers a completed fetch or search. seq identifies which
// issued request produced it; results from superseded requests are dropped.
type suppliersMsg struct {
	seq       int
	suppliers []api.Supplier
}

// listFailedMsg delivers a failed fetch or search.
type listFailedMsg struct {
	seq int
	err error
}

// supplierSavedMsg reports a successful create or update.
type supplierSavedMsg struct {
	supplier api.Supplier
}

// saveFailedMsg reports a failed create or update; the modal stays open.
type saveFailedMsg struct {
	err error
}

// loggedInMsg reports a successful login with a persisted session.
type loggedInMsg struct {
	sess *session.Session
}

// authFailedMsg reports a rejected login attempt.
type authFailedMsg struct {
	err error
}

// loggedOutMsg reports that the persisted session was cleared.
type loggedOutMsg struct{}
