package models

import "time"

// Review reaction values.
const (
	ReactionLike    = "like"
	ReactionDislike = "dislike"
)

// ReviewReaction is an upserted (review, user) keyed vote: at most one
// reaction per user per review, later writes overwrite earlier ones.
type ReviewReaction struct {
	ReviewID  int64     `gorm:"not null;primaryKey" json:"review_id"`
	UserID    string    `gorm:"type:uuid;not null;primaryKey" json:"user_id"`
	Reaction  string    `gorm:"not null" json:"reaction"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`

	// Associations
	Review *Review `gorm:"foreignKey:ReviewID;constraint:OnDelete:CASCADE;" json:"review,omitempty"`
	User   *User   `gorm:"foreignKey:UserID;constraint:OnDelete:CASCADE;" json:"user,omitempty"`
}

func (ReviewReaction) TableName() string {
	return "review_reactions"
}

// ValidReaction reports whether s is "like" or "dislike".
func ValidReaction(s string) bool {
	return s == ReactionLike || s == ReactionDislike
}
