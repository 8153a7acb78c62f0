// Package cli provides the interactive parasearch command-line client.
//
// It wires configuration, the session store, the API client and the router,
// then runs a REPL whose prompt shows the current screen:
//
//	/login       login, register
//	/register    register, login
//	/dashboard   submit, search <word>, results, whoami, logout
//
// help, goto <path>, exit and quit work everywhere. Navigating to the
// dashboard without a stored credential lands on /login instead, and any 401
// from the backend sends the user back there as well.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
