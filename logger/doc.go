// Package logger is the public API of kdiag. Most users only need to
// import this package.
//
// A Logger renders printk-style messages into a fixed scratch buffer and
// stores the result in a logstore.Store:
//
//	log := logger.NewBuilder().Build()
//	log.Printk(logger.KernErr+"disk %s failed: %d", logger.Str("sda"), logger.Int(-5))
//
// The severity travels in the format string itself: a KernSOH marker
// followed by a digit '0' (EMERG) through '7' (DEBUG). A format without a
// prefix is stored at the store's default level. The level helpers Emerg,
// Err, Info and friends emit at a fixed level instead.
//
// Arguments are tagged values built with Int, Str, Ptr, Mem and the other
// helpers; Printf accepts plain Go values and converts them with ArgOf.
//
// Printk never fails from the caller's point of view. A rejected store
// write or a failing handler is counted and can be read back with Dropped
// and Failed.
package logger
