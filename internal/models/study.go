package models

import "time"

// StudyResult is a generated study saved by the user. The saved list lives in
// the cache tier only; publishing creates a SharedStudy in the remote store.
type StudyResult struct {
	ID        string         `bson:"id" json:"id"`
	Reference string         `bson:"reference" json:"reference"`
	Theology  TheologyLine   `bson:"theology" json:"theology"`
	Module    ExegesisModule `bson:"module" json:"module"`
	Content   string         `bson:"content" json:"content"`
	Date      string         `bson:"date" json:"date"`
}

// SharedStudy is a community-visible copy of a study result. Shared studies
// are append-only; they are never edited after creation.
type SharedStudy struct {
	ID         string         `bson:"_id" json:"id"`
	Reference  string         `bson:"reference" json:"reference"`
	Theology   TheologyLine   `bson:"theology" json:"theology"`
	Module     ExegesisModule `bson:"module" json:"module"`
	Content    string         `bson:"content" json:"content"`
	UserID     string         `bson:"userId" json:"userId"`
	UserName   string         `bson:"userName" json:"userName"`
	UserAvatar string         `bson:"userAvatar" json:"userAvatar"`
	Timestamp  time.Time      `bson:"timestamp" json:"timestamp"`
	Likes      int64          `bson:"likes" json:"likes"`
}
