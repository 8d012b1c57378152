// Package cli implements the interactive EarTalk terminal client: a REPL
// over the account and recording services, with prompt-driven input for
// forms and hidden password entry.
package cli
