/*
Package atomicfile writes a file so that the destination either keeps
its old content or gets the complete new content, never something in
between.

Data is written to a uniquely named temporary file in the destination
directory. On Close the temporary file is synced, closed and renamed
over the destination. If any write fails, or the caller gives up via
Cancel, the temporary file is removed and the destination is untouched.

	func writeFileAtomically(path string, data []byte) error {
		f, err := atomicfile.New(path)
		if err != nil {
			return err
		}
		// Cancel after a successful Close is a no-op
		defer f.Cancel()

		if _, err = f.Write(data); err != nil {
			return err
		}
		return f.Close()
	}
*/
package atomicfile
