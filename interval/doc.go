/*Package interval implements interval-union operations over closed integer
  ranges, such as the fresh-ingredient ID ranges of a cafeteria inventory.
  (Note the 'union'.  Overlapping intervals are merged, not tracked
  separately.  Intervals that merely touch, e.g. [1, 5] and [6, 10], are kept
  apart; only true overlap or containment merges.)
  Positions are PosType, currently int64, so any range up to 2^63 fits.
  Coverage counts are returned as uint64.
*/
package interval
