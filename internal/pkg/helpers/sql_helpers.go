package helpers

import "database/sql"

// GetContentNullString stores empty strings as NULL. Used for optional asset paths.
func GetContentNullString(s string) sql.NullString {
	if s == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: s, Valid: true}
}

// StringOrEmpty is the read-side counterpart of GetContentNullString.
func StringOrEmpty(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
