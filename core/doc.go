// Package core defines the shared types of the kdiag diagnostic subsystem.
//
// It provides the Level type with its DEFAULT sentinel and the eight
// kernel severities, the Entry value copied out of a log store, the Arg
// tagged value consumed by the format engine, and the Status taxonomy
// (Ok, Changed, Empty, Error) together with the sentinel errors that
// carry it.
//
// Arg replaces a raw variadic argument cursor. Each value carries its own
// tag, so the engine never has to guess a stride or alignment; the format
// string still decides how a value is rendered. Integer kinds share one
// int64 payload, which keeps Arg a small fixed-size value that never
// escapes to the heap for numeric arguments.
package core
