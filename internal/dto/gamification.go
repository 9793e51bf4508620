package dto

import "github.com/GlebRadaev/savesmart/internal/domain"

type BadgeDTO struct {
	ID          string `json:"id" example:"first_savings"`
	Name        string `json:"name" example:"First Savings"`
	Description string `json:"description" example:"Made your first savings deposit"`
	Icon        string `json:"icon" example:"💰"`
	Earned      bool   `json:"earned" example:"true"`
}

type ChallengeDTO struct {
	ID          string            `json:"id" example:"1"`
	Title       string            `json:"title" example:"Save $50 This Week"`
	Description string            `json:"description" example:"Add $50 to any of your savings goals"`
	Progress    int               `json:"progress" example:"0"`
	Reward      int               `json:"reward" example:"150"`
	DaysLeft    int               `json:"daysLeft" example:"7"`
	Difficulty  domain.Difficulty `json:"difficulty" swaggertype:"string" example:"Easy"`
}

type StatsResponseDTO struct {
	Points          int `json:"points" example:"160"`
	Level           int `json:"level" example:"1"`
	NextLevelPoints int `json:"nextLevelPoints" example:"1500"`
	Streak          int `json:"streak" example:"0"`
	BadgesEarned    int `json:"badgesEarned" example:"2"`
	Rank            int `json:"rank" example:"4"`
}

type LeaderboardEntryDTO struct {
	Rank   int    `json:"rank" example:"1"`
	Name   string `json:"name" example:"Sarah M."`
	Points int    `json:"points" example:"2850"`
	IsUser bool   `json:"isUser" example:"false"`
}

func NewBadgesResponse(badges []domain.Badge) []BadgeDTO {
	out := make([]BadgeDTO, len(badges))
	for i, b := range badges {
		out[i] = BadgeDTO(b)
	}
	return out
}

func NewChallengesResponse(challenges []domain.Challenge) []ChallengeDTO {
	out := make([]ChallengeDTO, len(challenges))
	for i, c := range challenges {
		out[i] = ChallengeDTO(c)
	}
	return out
}

func NewLeaderboardResponse(entries []domain.LeaderboardEntry) []LeaderboardEntryDTO {
	out := make([]LeaderboardEntryDTO, len(entries))
	for i, e := range entries {
		out[i] = LeaderboardEntryDTO(e)
	}
	return out
}
