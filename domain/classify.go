package domain

// TurnIntent is the coarse label a turn-taking classifier assigns to a
// recognized line.
type TurnIntent string

const (
	IntentStart TurnIntent = "start"
	IntentStop  TurnIntent = "stop"
	IntentOther TurnIntent = "other"
)

// Category is the standup topic a statement belongs to.
type Category string

const (
	CategoryYesterday Category = "yesterday"
	CategoryToday     Category = "today"
	CategoryBlocker   Category = "blocker"
	// CategoryUnknown buckets lines the category model failed on. The
	// pipeline degrades instead of dropping the statement.
	CategoryUnknown Category = "unknown"
)

// Categories lists the report buckets in display order.
var Categories = []Category{CategoryYesterday, CategoryToday, CategoryBlocker}
