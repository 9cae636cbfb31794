// Package cli is the terminal front end. It owns prompts and printing only;
// all state synchronization with the backend lives in the store package.
// Commands are one-shot: the signed-in identity survives between invocations
// through the persistence bridge.
package cli
