// Package store maintains a single text file as the durable record of
// all tasks, one task per line, in insertion order.
//
// # File layout
//
// The store file lives at DataDir/FileName. Each line is the
// serialized form of exactly one task; the store never interprets the
// content of a line. There is no header, no checksum and no
// versioning.
//
// Append adds a line at the end of the file. Delete and Edit rewrite
// the file by streaming every line through a uniquely named staging
// file which is then renamed over the original, so a failed rewrite
// leaves the file as it was.
//
// # Basic usage
//
//	s := &store.Store{DataDir: "data"}
//	if err := store.Open(s); err != nil {
//		log.Fatal(err)
//	}
//
//	err := s.Append(t)
//	...
//	skipped, err := s.LoadAll(func(line string) error {
//		t, err := task.Decode(line)
//		if err != nil {
//			return err
//		}
//		list.Add(t)
//		return nil
//	})
//
// # Concurrency
//
// The store assumes a single caller per file path. There is no
// locking, so two processes rewriting the same file can lose updates.
package store
