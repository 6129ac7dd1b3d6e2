// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the execution lifecycle from script loading
// through resolution to process execution, decoupled from any specific
// entrypoint like a CLI.
package app
