// Package cli implements rentalctl, the operator command line for the
// rental server.
//
// It shares the server configuration layers (env, .env file, JSON file,
// flags) and talks to the database directly, not over HTTP.
//
// Commands:
//   - migrate: apply pending schema migrations
//   - create-user: register a customer, prompting for the password
//   - list-users: print registered customers
//
// See App.Run for dispatch.
package cli
