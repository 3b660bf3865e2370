package domain

// Search type discriminators.
const (
	SearchTypeAll      = "all"
	SearchTypeUsers    = "users"
	SearchTypeScholars = "scholars"

	ResultTypeUser    = "user"
	ResultTypeScholar = "scholar"
)

// SearchRequest is the query-string form of every search endpoint.
type SearchRequest struct {
	Query  string `form:"q" binding:"required"`
	Type   string `form:"type"` // users | scholars | all
	Limit  int    `form:"limit"`
	Offset int    `form:"offset"`
}

// UserSearchResult is the flattened user view model returned by user search.
// Field names map to the selected columns so gorm can scan rows directly;
// FullName is computed after the scan.
type UserSearchResult struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	Role      string `json:"role"`
	FullName  string `json:"fullName" gorm:"-"`
}

// ScholarSearchResult is the scholar view model returned by scholar search.
// IsFollowed is only populated when the requester is known.
type ScholarSearchResult struct {
	ID           uint   `json:"id"`
	FullName     string `json:"fullName"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	BirthDate    string `json:"birthDate,omitempty"`
	DeathDate    string `json:"deathDate,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	Biography    string `json:"biography,omitempty"`
	IsFollowed   *bool  `json:"isFollowed,omitempty" gorm:"-"`
}

// FollowSearchResult is a user result scoped to the requester's follow graph.
type FollowSearchResult struct {
	ID        uint   `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Username  string `json:"username"`
	PhotoURL  string `json:"photoUrl,omitempty"`
	Role      string `json:"role"`
	FollowID  uint   `json:"followId"`
	FullName  string `json:"fullName" gorm:"-"`
}

// SearchResultItem is a type-tagged entry of the merged general search.
// Only the fields of the tagged entity are populated.
type SearchResultItem struct {
	Type         string `json:"type"` // user | scholar
	ID           uint   `json:"id"`
	FirstName    string `json:"firstName,omitempty"`
	LastName     string `json:"lastName,omitempty"`
	Username     string `json:"username,omitempty"`
	FullName     string `json:"fullName"`
	Role         string `json:"role,omitempty"`
	PhotoURL     string `json:"photoUrl,omitempty"`
	Biography    string `json:"biography,omitempty"`
	BirthDate    string `json:"birthDate,omitempty"`
	DeathDate    string `json:"deathDate,omitempty"`
	LocationName string `json:"locationName,omitempty"`
	IsFollowed   *bool  `json:"isFollowed,omitempty"`
}

// GeneralSearchResponse is the merged, paginated search envelope.
// TotalCount is the sum of the independent per-type counts; HasMore is
// therefore approximate when the merged page was shuffled.
type GeneralSearchResponse struct {
	Results     []SearchResultItem `json:"results"`
	TotalCount  int64              `json:"totalCount"`
	HasMore     bool               `json:"hasMore"`
	SearchQuery string             `json:"searchQuery"`
}

// UserSearchResponse is the envelope of /search/users.
type UserSearchResponse struct {
	Results     []UserSearchResult `json:"results"`
	TotalCount  int64              `json:"totalCount"`
	HasMore     bool               `json:"hasMore"`
	SearchQuery string             `json:"searchQuery"`
}

// ScholarSearchResponse is the envelope of /search/scholars.
type ScholarSearchResponse struct {
	Results     []ScholarSearchResult `json:"results"`
	TotalCount  int64                 `json:"totalCount"`
	HasMore     bool                  `json:"hasMore"`
	SearchQuery string                `json:"searchQuery"`
}

// FollowSearchResponse is the envelope of /search/followers and
// /search/following.
type FollowSearchResponse struct {
	Results     []FollowSearchResult `json:"results"`
	TotalCount  int64                `json:"totalCount"`
	HasMore     bool                 `json:"hasMore"`
	SearchQuery string               `json:"searchQuery"`
}
