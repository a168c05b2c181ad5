package audit_test

import (
	"context"
	"testing"

	"github.com/quizforge/quizforge/internal/audit"
	"github.com/quizforge/quizforge/internal/db"
)

func TestAppendAndSince(t *testing.T) {
	handle, err := db.Open(context.Background(), db.DriverSQLite, "file:auditlog?mode=memory&cache=shared")
	if err != nil {
		t.Fatalf("open db: %v", err)
	}
	defer handle.Close()

	log := audit.NewLog(handle)
	ctx := context.Background()

	if err := log.Append(ctx, audit.TypeCertificateIssued, "AAAA00001111", map[string]any{"score": 92}); err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := log.Append(ctx, audit.TypeArtifactStored, "folder/key.html", nil); err != nil {
		t.Fatalf("Append: %v", err)
	}

	events, err := log.Since(ctx, 0, 10)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if len(events) != 2 {
		t.Fatalf("Since returned %d events, want 2", len(events))
	}
	if events[0].Type != audit.TypeCertificateIssued || events[0].Key != "AAAA00001111" {
		t.Fatalf("first event = %+v", events[0])
	}
	if events[0].DataJSON != `{"score":92}` {
		t.Fatalf("first event payload = %q", events[0].DataJSON)
	}
	if events[1].DataJSON != "null" {
		t.Fatalf("nil payload recorded as %q, want null", events[1].DataJSON)
	}

	rest, err := log.Since(ctx, events[0].Seq, 10)
	if err != nil {
		t.Fatalf("Since: %v", err)
	}
	if len(rest) != 1 || rest[0].Type != audit.TypeArtifactStored {
		t.Fatalf("Since(first) = %+v", rest)
	}
}
