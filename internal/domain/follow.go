package domain

import "time"

// FollowEntry is one row of a follower/following listing.
type FollowEntry struct {
	FollowID   uint         `json:"followId"`
	User       UserResponse `json:"user"`
	FollowedAt time.Time    `json:"followedAt"`
}

// FollowListResponse is a paginated follow-graph listing.
type FollowListResponse struct {
	Entries    []FollowEntry `json:"entries"`
	TotalCount int64         `json:"totalCount"`
}

// WhoToFollowResponse carries follow suggestions for the requester: active
// users and scholars not yet followed.
type WhoToFollowResponse struct {
	Users    []UserResponse    `json:"users"`
	Scholars []ScholarResponse `json:"scholars"`
}
