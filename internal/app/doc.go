// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the primary execution lifecycle: merge the
// configuration layers, load the gradebook, answer a query and render the
// result, decoupled from any specific entrypoint like a CLI.
package app
