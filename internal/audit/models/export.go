package models

import (
	"strings"
	"time"
)

var exportHeaders = []string{
	"Timestamp", "User Email", "Actor Type", "Action",
	"Resource Type", "Resource ID", "Status", "Error Message",
}

// LogsCSV renders entries with every data cell quoted. Lines are joined
// with "\n" and the header row is left bare.
func LogsCSV(entries []*LogEntry) []byte {
	var b strings.Builder
	b.WriteString(strings.Join(exportHeaders, ","))
	for _, e := range entries {
		b.WriteByte('\n')
		writeRow(&b,
			e.CreatedAt.UTC().Format(time.DateTime),
			e.UserEmail,
			e.ActorType,
			e.Action,
			e.ResourceType,
			deref(e.ResourceID),
			e.Status,
			deref(e.ErrorMessage),
		)
	}
	return []byte(b.String())
}

func writeRow(b *strings.Builder, cells ...string) {
	for i, c := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(c, `"`, `""`))
		b.WriteByte('"')
	}
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
