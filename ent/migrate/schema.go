// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AttemptEventsColumns holds the columns for the "attempt_events" table.
	AttemptEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "attempt_id", Type: field.TypeString, Unique: true},
		{Name: "topic", Type: field.TypeString},
		{Name: "subtopic", Type: field.TypeString, Nullable: true},
		{Name: "difficulty", Type: field.TypeString},
		{Name: "learner_answer", Type: field.TypeString},
		{Name: "reference_answer", Type: field.TypeString},
		{Name: "correct", Type: field.TypeBool},
		{Name: "method", Type: field.TypeString},
		{Name: "similarity", Type: field.TypeInt},
	}
	// AttemptEventsTable holds the schema information for the "attempt_events" table.
	AttemptEventsTable = &schema.Table{
		Name:       "attempt_events",
		Columns:    AttemptEventsColumns,
		PrimaryKey: []*schema.Column{AttemptEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "attemptevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[1]},
			},
			{
				Name:    "attemptevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[2]},
			},
			{
				Name:    "attemptevent_topic",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[4]},
			},
			{
				Name:    "attemptevent_correct",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[9]},
			},
			{
				Name:    "attemptevent_difficulty",
				Unique:  false,
				Columns: []*schema.Column{AttemptEventsColumns[6]},
			},
		},
	}
	// OracleRequestEventsColumns holds the columns for the "oracle_request_events" table.
	OracleRequestEventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "provider", Type: field.TypeString},
		{Name: "operation", Type: field.TypeString},
		{Name: "expression", Type: field.TypeString},
		{Name: "result", Type: field.TypeString, Nullable: true},
		{Name: "latency_ms", Type: field.TypeInt64},
		{Name: "success", Type: field.TypeBool},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
	}
	// OracleRequestEventsTable holds the schema information for the "oracle_request_events" table.
	OracleRequestEventsTable = &schema.Table{
		Name:       "oracle_request_events",
		Columns:    OracleRequestEventsColumns,
		PrimaryKey: []*schema.Column{OracleRequestEventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "oraclerequestevent_sequence",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[1]},
			},
			{
				Name:    "oraclerequestevent_timestamp",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[2]},
			},
			{
				Name:    "oraclerequestevent_provider",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[3]},
			},
			{
				Name:    "oraclerequestevent_success",
				Unique:  false,
				Columns: []*schema.Column{OracleRequestEventsColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AttemptEventsTable,
		OracleRequestEventsTable,
	}
)

func init() {
}
