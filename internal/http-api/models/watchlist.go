package models

import "time"

// Watch-list entry types. These are labels, not a transition graph: any
// value may replace any other after creation.
const (
	ListPlanToWatch = "plan_to_watch"
	ListWatching    = "watching"
	ListCompleted   = "completed"
	ListOnHold      = "on_hold"
	ListDropped     = "dropped"
)

// WatchListEntry is a user's personal status label for a film.
// At most one entry per (user, film) pair.
type WatchListEntry struct {
	UserID    string    `gorm:"type:uuid;not null;primaryKey" json:"user_id"`
	FilmID    int64     `gorm:"not null;primaryKey" json:"film_id"`
	ListType  string    `gorm:"not null" json:"list_type"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	User *User `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
	Film *Film `gorm:"foreignKey:FilmID;constraint:OnDelete:CASCADE;" json:"film,omitempty"`
}

func (WatchListEntry) TableName() string {
	return "user_film_list"
}

// ValidListType reports whether s is one of the five list types.
func ValidListType(s string) bool {
	switch s {
	case ListPlanToWatch, ListWatching, ListCompleted, ListOnHold, ListDropped:
		return true
	}
	return false
}
