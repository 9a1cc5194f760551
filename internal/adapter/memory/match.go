package memory

import (
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/priteshGolakiya/Interview-Questions/internal/docstore"
)

func matches(doc bson.M, f docstore.Filter) bool {
	for _, c := range f.All {
		if !matchCond(doc, c) {
			return false
		}
	}
	if len(f.Any) == 0 {
		return true
	}
	for _, c := range f.Any {
		if matchCond(doc, c) {
			return true
		}
	}
	return false
}

func matchCond(doc bson.M, c docstore.Cond) bool {
	v, ok := doc[c.Field]
	if !ok {
		return false
	}

	switch c.Op {
	case docstore.OpEq:
		if arr, ok := v.(bson.A); ok {
			for _, elem := range arr {
				if equalValue(elem, c.Value) {
					return true
				}
			}
			return false
		}
		return equalValue(v, c.Value)

	case docstore.OpIn:
		for _, want := range c.Values {
			if equalValue(v, want) {
				return true
			}
		}
		return false

	case docstore.OpContainsFold:
		needle, ok := asString(c.Value)
		if !ok {
			return false
		}
		needle = strings.ToLower(needle)
		if arr, ok := v.(bson.A); ok {
			for _, elem := range arr {
				if s, ok := elem.(string); ok && strings.Contains(strings.ToLower(s), needle) {
					return true
				}
			}
			return false
		}
		s, ok := v.(string)
		return ok && strings.Contains(strings.ToLower(s), needle)
	}

	return false
}

// equalValue compares a stored bson value with a filter value. Named string
// types compare as strings and numbers compare by their printed form, since
// bson narrows Go ints to int32 when they fit.
func equalValue(stored, want any) bool {
	if s, ok := stored.(string); ok {
		w, ok := asString(want)
		return ok && s == w
	}
	if reflect.DeepEqual(stored, want) {
		return true
	}
	return fmt.Sprint(stored) == fmt.Sprint(want)
}

func asString(v any) (string, bool) {
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() != reflect.String {
		return "", false
	}
	return rv.String(), true
}
