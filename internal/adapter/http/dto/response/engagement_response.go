package response

import "archmarket/internal/usecase"

type ToggleEngagementResponse struct {
	Liked         bool `json:"liked"`
	Favorited     bool `json:"favorited"`
	LikeCount     int  `json:"like_count"`
	FavoriteCount int  `json:"favorite_count"`
}

func FromToggleResult(r usecase.ToggleResult) ToggleEngagementResponse {
	return ToggleEngagementResponse{
		Liked:         r.Liked,
		Favorited:     r.Favorited,
		LikeCount:     r.LikeCount,
		FavoriteCount: r.FavoriteCount,
	}
}
