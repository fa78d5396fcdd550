// Package task manages the JSON-backed to-do store.
//
// The store is a single JSON array of task objects:
//
//	[
//	  {
//	    "id": 1,
//	    "title": "Write report",
//	    "description": "Optional details",
//	    "priority": "High",
//	    "category": "Work",
//	    "due_date": "2024-08-01",
//	    "completed": false,
//	    "created_at": "2024-07-28 09:15:00",
//	    "recurrence": "daily"
//	  }
//	]
//
// Dates travel as strings on disk ("2006-01-02" for due_date) and as
// Date values in memory; the zero Date is the explicit no-date marker.
//
// # Error policy
//
// Corrupted persisted data is recovered locally: a missing or invalid
// file loads as an empty store, an unparseable due date becomes the
// no-date marker, and every recovery is reported on LoadResult.Issues
// instead of failing the load. Caller mistakes are hard errors: editing
// or removing a nonexistent ID wraps ErrTaskNotFound and sorting on an
// unknown key wraps ErrInvalidSortKey.
//
// # Concurrency
//
// Operations are synchronous with no internal locking. Two concurrent
// load-modify-save cycles race and the last writer wins; callers that
// need multi-writer safety must serialize access externally.
//
// # Validation
//
// Validate checks the store against an embedded JSON Schema
// (draft 2020-12), falling back to minimal structural checks when a
// custom schema file cannot be used. Duplicate-ID detection runs in
// both modes.
package task
