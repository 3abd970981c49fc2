// Package app contains the core application logic. It defines the main App
// struct, its configuration, and the export lifecycle that turns an analysis
// setup into generator cards, decoupled from any specific entrypoint.
package app
