package cert_test

import (
	"bytes"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/quizforge/quizforge/internal/cert"
)

var idPattern = regexp.MustCompile(`^[0-9A-F]{12}$`)

func TestIssueDeterministic(t *testing.T) {
	issued := time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC)

	a := cert.Issue("Jane Doe", "CNC Manufacturing Fundamentals", 92, issued, "abcd1234")
	b := cert.Issue("Jane Doe", "CNC Manufacturing Fundamentals", 92, issued, "abcd1234")
	if a != b {
		t.Fatalf("same facts produced different certificates:\n%+v\n%+v", a, b)
	}
	if !idPattern.MatchString(a.ID) {
		t.Fatalf("ID = %q, want 12 uppercase hex chars", a.ID)
	}
	if a.Performance != cert.TierExcellent {
		t.Fatalf("Performance = %q, want %q", a.Performance, cert.TierExcellent)
	}

	c := cert.Issue("Jane Doe", "CNC Manufacturing Fundamentals", 92, issued, "ffff0000")
	if c.ID == a.ID {
		t.Fatal("different salts produced the same ID")
	}
}

func TestNewDistinctIDs(t *testing.T) {
	a, err := cert.New("Jane Doe", "Safety Protocols Quiz", 85)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	b, err := cert.New("Jane Doe", "Safety Protocols Quiz", 85)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !idPattern.MatchString(a.ID) || !idPattern.MatchString(b.ID) {
		t.Fatalf("IDs = %q / %q, want 12 uppercase hex chars", a.ID, b.ID)
	}
	if a.ID == b.ID {
		t.Fatal("two issues produced the same ID")
	}
}

func TestPerformanceTiers(t *testing.T) {
	cases := []struct {
		score int
		tier  string
		color string
	}{
		{100, cert.TierOutstanding, "#FFD700"},
		{95, cert.TierOutstanding, "#FFD700"},
		{94, cert.TierExcellent, "#C0C0C0"},
		{90, cert.TierExcellent, "#C0C0C0"},
		{89, cert.TierSuperior, "#CD7F32"},
		{80, cert.TierSuperior, "#CD7F32"},
		{79, cert.TierSuccessful, "#5B9BD5"},
		{0, cert.TierSuccessful, "#5B9BD5"},
	}
	for _, tc := range cases {
		if got := cert.Performance(tc.score); got != tc.tier {
			t.Errorf("Performance(%d) = %q, want %q", tc.score, got, tc.tier)
		}
		if got := cert.SealColor(tc.score); got != tc.color {
			t.Errorf("SealColor(%d) = %q, want %q", tc.score, got, tc.color)
		}
	}
}

func TestRenderHTML(t *testing.T) {
	c := cert.Issue("Jane Doe", "CNC Manufacturing Fundamentals", 97,
		time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC), "abcd1234")

	var buf bytes.Buffer
	err := cert.RenderHTML(&buf, c, cert.RenderOptions{
		Instructor: "Dr. Smith",
		Company:    "Acme Manufacturing",
	})
	if err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"Certificate of Achievement",
		"Jane Doe",
		"CNC Manufacturing Fundamentals",
		"Outstanding Achievement",
		"97%",
		"#FFD700",
		"June 01, 2025",
		"Dr. Smith",
		"Acme Manufacturing",
		"© Acme Manufacturing. All rights reserved",
		"Certificate ID: " + c.ID,
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("document missing %q", want)
		}
	}
}

func TestRenderHTMLDefaults(t *testing.T) {
	c := cert.Issue("Jane Doe", "Quiz", 75, time.Date(2025, 6, 1, 14, 0, 0, 0, time.UTC), "abcd1234")

	var buf bytes.Buffer
	if err := cert.RenderHTML(&buf, c, cert.RenderOptions{}); err != nil {
		t.Fatalf("RenderHTML: %v", err)
	}
	out := buf.String()

	if !strings.Contains(out, "Technical Training Team") {
		t.Fatal("default instructor missing")
	}
	if !strings.Contains(out, "Issuing Organization") {
		t.Fatal("default organization missing")
	}
	if !strings.Contains(out, "#5B9BD5") {
		t.Fatal("blue seal missing for below-80 score")
	}
	if strings.Contains(out, "All rights reserved") {
		t.Fatal("copyright rendered with no company configured")
	}
}
