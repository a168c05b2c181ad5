// Package cert issues completion certificates: a deterministic ID derived
// from the issue facts, a performance tier derived from the score, and a
// standalone HTML rendering. Issued certificates are persisted by Store so
// an ID printed on a document can be verified later.
package cert

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"strconv"
	"strings"
	"time"
)

// Performance tiers by score.
const (
	TierOutstanding = "Outstanding Achievement" // >= 95
	TierExcellent   = "Excellent Performance"   // >= 90
	TierSuperior    = "Superior Performance"    // >= 80
	TierSuccessful  = "Successful Completion"
)

type Certificate struct {
	ID          string    `json:"id"`
	Recipient   string    `json:"recipient"`
	QuizTitle   string    `json:"quiz_title"`
	Score       int       `json:"score"` // percentage, 0-100
	IssuedAt    time.Time `json:"issued_at"`
	Performance string    `json:"performance"`
}

// Issue derives a certificate from the issue facts. Same inputs, same
// certificate: the ID is the first 12 hex chars of a SHA-256 over
// recipient, title, score, issue timestamp and salt, uppercased.
func Issue(recipient, quizTitle string, score int, issuedAt time.Time, salt string) Certificate {
	sum := sha256.Sum256([]byte(recipient + quizTitle + strconv.Itoa(score) + issuedAt.Format("20060102150405") + salt))
	return Certificate{
		ID:          strings.ToUpper(hex.EncodeToString(sum[:6])),
		Recipient:   recipient,
		QuizTitle:   quizTitle,
		Score:       score,
		IssuedAt:    issuedAt,
		Performance: Performance(score),
	}
}

// New issues a certificate stamped with the current time and a fresh
// random salt, so two issues for the same recipient and score still get
// distinct IDs.
func New(recipient, quizTitle string, score int) (Certificate, error) {
	var b [4]byte
	if _, err := rand.Read(b[:]); err != nil {
		return Certificate{}, err
	}
	return Issue(recipient, quizTitle, score, time.Now(), hex.EncodeToString(b[:])), nil
}

// Performance maps a score to its tier label.
func Performance(score int) string {
	switch {
	case score >= 95:
		return TierOutstanding
	case score >= 90:
		return TierExcellent
	case score >= 80:
		return TierSuperior
	default:
		return TierSuccessful
	}
}

// SealColor maps a score to its tier's accent color: gold, silver, bronze,
// blue.
func SealColor(score int) string {
	switch {
	case score >= 95:
		return "#FFD700"
	case score >= 90:
		return "#C0C0C0"
	case score >= 80:
		return "#CD7F32"
	default:
		return "#5B9BD5"
	}
}
