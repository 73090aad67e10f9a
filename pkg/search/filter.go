package search

import (
	"Recipe-Journal/domain"

	"github.com/google/uuid"
)

// MemberScope narrows results to one member's entries or to the
// requester's friends.
type MemberScope int

const (
	ScopeNone MemberScope = iota
	ScopeMember
	ScopeFriends
)

// MemberFriends is the request sentinel selecting the friends scope.
const MemberFriends = "friends"

// Filter is the explicit specification the engine executes. Building a
// Filter performs no queries; execution happens in the repository.
type Filter struct {
	Title           string
	Category        string
	IngredientTerms []string
	CollectionName  string
	Scope           MemberScope
	MemberID        uuid.UUID // set when Scope == ScopeMember
	RequesterID     uuid.UUID // set when Scope == ScopeFriends
}

// BuildFilter translates a request into a Filter. The "friends" scope
// needs a requesting identity; without one this is a caller error.
func BuildFilter(req domain.SearchRecipeRequest, requesterID string, normalizer Normalizer) (Filter, error) {
	f := Filter{
		Title:          req.Title,
		Category:       req.Category,
		CollectionName: req.CollectionName,
	}

	for _, term := range []string{req.Ingredient1, req.Ingredient2, req.Ingredient3} {
		if term == "" {
			continue
		}
		if normalizer != nil {
			term = normalizer.Normalize(term)
		}
		if term != "" {
			f.IngredientTerms = append(f.IngredientTerms, term)
		}
	}

	switch req.Member {
	case "":
		f.Scope = ScopeNone
	case MemberFriends:
		if requesterID == "" {
			return Filter{}, domain.ErrFriendsScopeRequiresMember
		}
		requesterUUID, err := uuid.Parse(requesterID)
		if err != nil {
			return Filter{}, domain.ErrParseUUID
		}
		f.Scope = ScopeFriends
		f.RequesterID = requesterUUID
	default:
		memberUUID, err := uuid.Parse(req.Member)
		if err != nil {
			return Filter{}, domain.ErrParseUUID
		}
		f.Scope = ScopeMember
		f.MemberID = memberUUID
	}

	return f, nil
}
