package model

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Difficulty levels a problem can carry.
const (
	LevelEasy    = "easy"
	LevelMedium  = "medium"
	LevelAdvance = "advance"
)

// Problem is a coding problem. Body holds the statement, examples and
// whatever else the authoring side stored; this service never writes
// problems, only reads them.
type Problem struct {
	ID    primitive.ObjectID `bson:"_id,omitempty"`
	Title string             `bson:"title"`
	Level string             `bson:"level"`
	Body  bson.M             `bson:",inline"`
}

// MarshalJSON flattens the opaque body fields so a fetched problem looks
// exactly like the stored document.
func (p Problem) MarshalJSON() ([]byte, error) {
	doc := make(map[string]interface{}, len(p.Body)+3)
	for k, v := range p.Body {
		doc[k] = v
	}
	if !p.ID.IsZero() {
		doc["_id"] = p.ID.Hex()
	}
	doc["title"] = p.Title
	doc["level"] = p.Level
	return json.Marshal(doc)
}

// ProblemSummary is the projection returned by the listing endpoints.
type ProblemSummary struct {
	ID    primitive.ObjectID `bson:"_id" json:"_id"`
	Title string             `bson:"title" json:"title"`
	Level string             `bson:"level" json:"level"`
}

// ValidLevel reports whether level is one of the known difficulty values.
func ValidLevel(level string) bool {
	switch level {
	case LevelEasy, LevelMedium, LevelAdvance:
		return true
	}
	return false
}
