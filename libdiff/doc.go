// Package libdiff computes line oriented differences between documents.
//
// Both sides are encoded with the same options and the encoded texts are
// compared line by line, so the diff reads like the documents themselves:
//
//	lines, err := libdiff.Diff(&before, &after, encode.EncodeSortKeys(true))
//	if err != nil {
//		return err
//	}
//	if libdiff.Changed(lines) {
//		libdiff.Write(os.Stdout, lines, true)
//	}
package libdiff
