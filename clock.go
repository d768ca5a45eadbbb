package filetime

import "time"

// now is the wall clock consulted when an Update resolves
// to the current time. Tests substitute it to make the
// resolved instant deterministic.
var now = time.Now
