package mongo

import (
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
)

// toFilter translates f into a query document.
func toFilter(f docstore.Filter) bson.D {
	and := bson.A{}
	for _, c := range f.All {
		and = append(and, toCond(c))
	}

	if len(f.Any) > 0 {
		or := bson.A{}
		for _, c := range f.Any {
			or = append(or, toCond(c))
		}
		and = append(and, bson.D{{Key: "$or", Value: or}})
	}

	if len(and) == 0 {
		return bson.D{}
	}
	return bson.D{{Key: "$and", Value: and}}
}

func toCond(c docstore.Cond) bson.D {
	switch c.Op {
	case docstore.OpIn:
		return bson.D{{Key: c.Field, Value: bson.D{{Key: "$in", Value: bson.A(c.Values)}}}}
	case docstore.OpContainsFold:
		s, _ := c.Value.(string)
		return bson.D{{Key: c.Field, Value: primitive.Regex{Pattern: regexp.QuoteMeta(s), Options: "i"}}}
	default:
		// Equality on an array field matches any element.
		return bson.D{{Key: c.Field, Value: c.Value}}
	}
}

// toUpdate translates u into an update document. set carries the Set
// fields plus any store-managed timestamps.
func toUpdate(set map[string]any, u docstore.Update) bson.D {
	update := bson.D{}

	if len(set) > 0 {
		update = append(update, bson.E{Key: "$set", Value: bson.M(set)})
	}
	if len(u.Push) > 0 {
		push := bson.M{}
		for field, v := range u.Push {
			push[field] = v
		}
		update = append(update, bson.E{Key: "$push", Value: push})
	}
	if len(u.Pull) > 0 {
		pull := bson.M{}
		for field, v := range u.Pull {
			pull[field] = v
		}
		update = append(update, bson.E{Key: "$pull", Value: pull})
	}

	return update
}
