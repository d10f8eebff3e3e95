package ops

import (
	"github.com/flowbridge/plunet/pkg/executor"
	"github.com/flowbridge/plunet/pkg/session"
	"github.com/flowbridge/plunet/pkg/xmltree"
)

// Authentication operations on the PlunetAPI service. Login and logout
// are normally driven through session.Manager; they are registered so
// hosts can call them explicitly.
func init() {
	register(
		executor.Operation{
			Name:       "login",
			Service:    session.AuthService,
			ParamOrder: []string{"username", "password"},
			NoSession:  true,
			Parse:      func(raw string) any { return xmltree.AsString(raw) },
		},
		executor.Operation{
			Name:    "logout",
			Service: session.AuthService,
		},
		executor.Operation{
			Name:       "validate",
			Service:    session.AuthService,
			ParamOrder: []string{executor.SessionParam, "username", "password"},
			Parse:      func(raw string) any { return xmltree.AsString(raw) },
		},
	)
}
