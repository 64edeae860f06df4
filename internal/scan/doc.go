// Package scan discovers candidate input images under a directory.
//
// Discovery filters by a fixed allow-list of image extensions and returns a
// deterministically ordered sequence. Lexicographic path order is the default
// and is the ordering contract the bracket grouper depends on; callers can
// request modification-time order instead.
package scan
