// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// OracleRequestEvent is the predicate function for oraclerequestevent builders.
type OracleRequestEvent func(*sql.Selector)
