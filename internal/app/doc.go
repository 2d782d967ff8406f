// Package app contains the core application logic. It defines the App
// struct, its configuration, and one build invocation's lifecycle (load the
// build description, construct the graph, build or analyse it), decoupled
// from any specific entrypoint like the CLI.
package app
