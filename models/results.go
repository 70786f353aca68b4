package models

import "go.mongodb.org/mongo-driver/mongo"

// UpdateResult is the client-facing view of a single-document update.
type UpdateResult struct {
	Acknowledged  bool        `json:"acknowledged"`
	MatchedCount  int64       `json:"matchedCount"`
	ModifiedCount int64       `json:"modifiedCount"`
	UpsertedCount int64       `json:"upsertedCount"`
	UpsertedID    interface{} `json:"upsertedId"`
}

// InsertResult is the client-facing view of a single-document insert.
type InsertResult struct {
	Acknowledged bool        `json:"acknowledged"`
	InsertedID   interface{} `json:"insertedId"`
}

func NewUpdateResult(res *mongo.UpdateResult) UpdateResult {
	if res == nil {
		return UpdateResult{}
	}
	return UpdateResult{
		Acknowledged:  true,
		MatchedCount:  res.MatchedCount,
		ModifiedCount: res.ModifiedCount,
		UpsertedCount: res.UpsertedCount,
		UpsertedID:    res.UpsertedID,
	}
}

func NewInsertResult(res *mongo.InsertOneResult) InsertResult {
	if res == nil {
		return InsertResult{}
	}
	return InsertResult{Acknowledged: true, InsertedID: res.InsertedID}
}
