// Package component defines the lifecycle contract shared by managed
// pieces of infrastructure: anything that can be started, stopped, and
// health-checked. A Registry starts components in registration order and
// stops them in reverse, so dependencies go up first and come down last.
package component
