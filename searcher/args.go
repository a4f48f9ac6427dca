package searcher

import "time"

// Defaults for a Searcher

const DefaultSearchDepth = 3

// Minimum time left before a search is cancelled
const DefaultTimeoutThreshold = 5 * time.Millisecond

const DefaultMethod = MethodMinimax
