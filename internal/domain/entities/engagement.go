package entities

import "time"

// EntityKind is the content type an engagement attaches to.
type EntityKind string

const (
	EntityKindBlog    EntityKind = "blog"
	EntityKindProject EntityKind = "project"
	EntityKindProduct EntityKind = "product"
)

func (k EntityKind) Valid() bool {
	switch k {
	case EntityKindBlog, EntityKindProject, EntityKindProduct:
		return true
	}
	return false
}

// ToggleKind selects which engagement flag a toggle flips.
type ToggleKind string

const (
	ToggleKindLike     ToggleKind = "like"
	ToggleKindFavorite ToggleKind = "favorite"
)

func (k ToggleKind) Valid() bool {
	return k == ToggleKindLike || k == ToggleKindFavorite
}

// Engagement is one visitor's like/favorite state for one entity.
//
// Storage model (DynamoDB):
//   - PK: entity (kind#id), SK: visitor_id
type Engagement struct {
	EntityKind EntityKind `json:"entity_kind"`
	EntityID   string     `json:"entity_id"`
	VisitorID  string     `json:"visitor_id"`
	Liked      bool       `json:"liked"`
	Favorited  bool       `json:"favorited"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// EngagementCounts aggregates an entity's likes and favorites.
type EngagementCounts struct {
	Likes     int `json:"likes"`
	Favorites int `json:"favorites"`
}
