// Package admin provides HTTP handlers for the admin-only surface:
// platform analytics and user listing.
package admin

import (
	"net/http"

	"copycraft/internal/handler/http/respond"
	"copycraft/internal/repository"
	adminUC "copycraft/internal/usecase/admin"
)

type typeCountDTO struct {
	Key   string `json:"key" example:"Blog"`
	Count int64  `json:"count" example:"12"`
}

type topUserDTO struct {
	UserID int64  `json:"userId" example:"1"`
	Name   string `json:"name" example:"Jane Doe"`
	Email  string `json:"email" example:"user@example.com"`
	Count  int64  `json:"count" example:"20"`
}

type analyticsDTO struct {
	UserCount         int64          `json:"userCount" example:"10"`
	ContentCount      int64          `json:"contentCount" example:"42"`
	ContentByType     []typeCountDTO `json:"contentByType"`
	ContentByLanguage []typeCountDTO `json:"contentByLanguage"`
	RecentContent     int64          `json:"recentContent" example:"5"`
	TopUsers          []topUserDTO   `json:"topUsers"`
}

type AnalyticsHandler struct{ Svc *adminUC.Service }

// ServeHTTP 分析情報取得
// @Summary      分析情報取得
// @Description  ユーザー数・コンテンツ数・種別/言語別の内訳・直近7日間の生成数・上位ユーザーを返します
// @Tags         admin
// @Security     BearerAuth
// @Produce      json
// @Success      200 {object} analyticsDTO "分析情報"
// @Failure      401 {string} string "Authentication required - missing or invalid JWT token"
// @Failure      403 {string} string "Forbidden - admin role required"
// @Failure      500 {string} string "サーバーエラー"
// @Router       /admin/analytics [get]
func (h AnalyticsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	stats, err := h.Svc.Analytics(r.Context())
	if err != nil {
		respond.SafeError(w, http.StatusInternalServerError, err)
		return
	}

	out := analyticsDTO{
		UserCount:         stats.UserCount,
		ContentCount:      stats.ContentCount,
		ContentByType:     toTypeCounts(stats.ContentByType),
		ContentByLanguage: toTypeCounts(stats.ContentByLanguage),
		RecentContent:     stats.RecentContent,
		TopUsers:          toTopUsers(stats.TopUsers),
	}
	respond.JSON(w, http.StatusOK, out)
}

func toTypeCounts(in []repository.TypeCount) []typeCountDTO {
	out := make([]typeCountDTO, 0, len(in))
	for _, tc := range in {
		out = append(out, typeCountDTO{Key: tc.Key, Count: tc.Count})
	}
	return out
}

func toTopUsers(in []repository.UserContentCount) []topUserDTO {
	out := make([]topUserDTO, 0, len(in))
	for _, u := range in {
		out = append(out, topUserDTO{UserID: u.UserID, Name: u.Name, Email: u.Email, Count: u.Count})
	}
	return out
}
