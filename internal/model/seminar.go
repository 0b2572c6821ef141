package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// SeminarSlots is the number of seminars a SeminarSet always holds.
const SeminarSlots = 2

// SeminarDate accepts RFC 3339 timestamps as well as plain dates (2006-01-02),
// which is what HTML date inputs submit.
type SeminarDate struct {
	time.Time
}

// UnmarshalJSON accepts RFC3339, datetime-local and date-only strings. An empty
// string leaves the zero time.
func (d *SeminarDate) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("seminar date must be a string: %w", err)
	}
	raw = strings.TrimSpace(raw)
	if raw == "" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04", "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("invalid seminar date %q", raw)
}

// MarshalJSON writes the date as RFC3339 in UTC.
func (d SeminarDate) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.UTC().Format(time.RFC3339))
}

// Seminar is one entry of the free seminar schedule.
type Seminar struct {
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Date        SeminarDate `json:"date"`
}

// SeminarSet is the singleton document holding the published seminars.
type SeminarSet struct {
	ID        uuid.UUID
	Seminars  []Seminar
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SeminarSetView is the client-facing shape of a SeminarSet.
type SeminarSetView struct {
	ID        string    `json:"id"`
	LegacyID  string    `json:"_id"`
	Seminars  []Seminar `json:"seminars"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// View maps a seminar set to its client representation. Seminars is never null.
func (s *SeminarSet) View() SeminarSetView {
	id := s.ID.String()
	seminars := s.Seminars
	if seminars == nil {
		seminars = []Seminar{}
	}
	return SeminarSetView{
		ID:        id,
		LegacyID:  id,
		Seminars:  seminars,
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

// SaveSeminarsRequest is the payload for POST /api/seminars.
type SaveSeminarsRequest struct {
	Seminars []Seminar `json:"seminars" binding:"required"`
}
