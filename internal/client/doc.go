// Package client runs the readsync sync client: one sync cycle on start,
// then the periodic sync job until the context is cancelled.
//
// The binary also takes a subcommand as its first argument. "register"
// creates the account on the blob server and "record" stores a reading
// position reported from the command line. See [ParseCommand].
package client
