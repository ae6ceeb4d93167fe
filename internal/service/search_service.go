package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"

	"chirp-go/internal/api/dto"
	infraES "chirp-go/internal/infra/elasticsearch"
	"chirp-go/internal/repository"
	"chirp-go/pkg/logger"

	"go.uber.org/zap"
)

type SearchService struct {
	userRepo *repository.UserRepository
}

func NewSearchService(userRepo *repository.UserRepository) *SearchService {
	return &SearchService{userRepo: userRepo}
}

// SearchUsers 按关键字搜索用户。优先走 ES，不可用或失败时降级到数据库模糊查询。
func (s *SearchService) SearchUsers(ctx context.Context, keyword string, page, pageSize int) (*dto.SearchUsersData, error) {
	if infraES.Available() {
		data, err := s.searchViaES(ctx, keyword, page, pageSize)
		if err == nil {
			return data, nil
		}
		logger.Warn("ES user search failed, fallback to DB",
			zap.String("keyword", keyword),
			zap.Error(err),
		)
	}
	return s.searchViaDB(keyword, page, pageSize)
}

// esSearchResult ES 搜索响应中需要的部分
type esSearchResult struct {
	Hits struct {
		Total struct {
			Value int64 `json:"value"`
		} `json:"total"`
		Hits []struct {
			Source infraES.ESUserDoc `json:"_source"`
		} `json:"hits"`
	} `json:"hits"`
}

func (s *SearchService) searchViaES(ctx context.Context, keyword string, page, pageSize int) (*dto.SearchUsersData, error) {
	query := map[string]interface{}{
		"from": (page - 1) * pageSize,
		"size": pageSize,
		"query": map[string]interface{}{
			"multi_match": map[string]interface{}{
				"query":  keyword,
				"fields": []string{"name^3", "account^2", "introduction"},
			},
		},
		"sort": []interface{}{
			map[string]interface{}{"_score": "desc"},
			map[string]interface{}{"follower_count": "desc"},
		},
	}

	body, err := json.Marshal(query)
	if err != nil {
		return nil, err
	}

	resp, err := infraES.Search(ctx, infraES.UsersIndexName(), bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.IsError() {
		return nil, fmt.Errorf("es search failed: %s", resp.String())
	}

	var result esSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	users := make([]dto.UserInfo, 0, len(result.Hits.Hits))
	for _, hit := range result.Hits.Hits {
		doc := hit.Source
		users = append(users, dto.UserInfo{
			ID:           doc.ID,
			Account:      doc.Account,
			Name:         doc.Name,
			Avatar:       doc.Avatar,
			Introduction: doc.Introduction,
		})
	}

	return &dto.SearchUsersData{
		Users:    users,
		Total:    result.Hits.Total.Value,
		Page:     page,
		PageSize: pageSize,
	}, nil
}

func (s *SearchService) searchViaDB(keyword string, page, pageSize int) (*dto.SearchUsersData, error) {
	skip := (page - 1) * pageSize
	users, total, err := s.userRepo.SearchByKeyword(keyword, skip, pageSize)
	if err != nil {
		return nil, err
	}

	items := make([]dto.UserInfo, 0, len(users))
	for i := range users {
		items = append(items, *toUserInfo(&users[i]))
	}

	return &dto.SearchUsersData{
		Users:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}, nil
}
