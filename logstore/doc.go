// Package logstore provides a fixed-capacity, severity-filtered circular log.
//
// A Store keeps the last N messages written to it, each capped at M
// characters. Writing while full evicts the oldest entry. Readers open a
// session with a severity ceiling and walk backward from the newest entry,
// seeing only entries at least as severe as the ceiling:
//
//	store := logstore.New(logstore.WithCapacity(5), logstore.WithMessageLen(10))
//	store.Write(core.LevelErr, "disk fail")
//
//	if err := store.ReadStart(core.LevelErr); err == nil {
//		defer store.ReadEnd()
//		for {
//			e, err := store.ReadNext()
//			if err != nil {
//				break
//			}
//			fmt.Println(e.Level, e.Message)
//		}
//	}
//
// Reading never removes entries. All operations are safe for concurrent use;
// only one read session may be open at a time.
package logstore
