// Package bracket partitions an ordered image sequence into fixed-size
// contiguous sets of bracketed exposures for HDR merging.
//
// Grouping is purely positional over the sorted sequence: it never inspects
// file contents or EXIF metadata, so bracket members must be named to sort
// adjacently. A trailing remainder smaller than the bracket size is dropped
// and reported, never merged into an undersized set.
package bracket
