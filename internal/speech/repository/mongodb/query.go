package mongodb

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// containsPattern builds a case-insensitive substring regex. User input is
// quoted so it cannot inject regex metacharacters into the query.
func containsPattern(s string) primitive.Regex {
	return primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}
}

// buildContactFilter returns the contacts query filter: everything when name
// is empty, otherwise a case-insensitive substring match on name.
func buildContactFilter(name string) bson.M {
	filter := bson.M{}
	if name != "" {
		filter["name"] = containsPattern(name)
	}
	return filter
}

// buildTaskFilter returns the tasks query filter. Completed tasks are always
// excluded. Time narrows by case-insensitive substring; keywords narrow by a
// logical OR of case-insensitive description matches.
func buildTaskFilter(timeFilter string, keywords []string) bson.M {
	filter := bson.M{"isCompleted": false}
	if timeFilter != "" {
		filter["time"] = containsPattern(timeFilter)
	}
	if len(keywords) > 0 {
		or := make(bson.A, len(keywords))
		for i, kw := range keywords {
			or[i] = bson.M{"description": containsPattern(kw)}
		}
		filter["$or"] = or
	}
	return filter
}

// newestFirst sorts by creation time descending.
func newestFirst() bson.D {
	return bson.D{{Key: "createdAt", Value: -1}}
}
