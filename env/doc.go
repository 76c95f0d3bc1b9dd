// Package env provides the process environment backends used by the bridge.
//
// OS and Native operate on the real process environment table, while Memory
// keeps variables in an isolated map and is suitable for tests and hosts that
// must not modify the environment of the running process.
package env
