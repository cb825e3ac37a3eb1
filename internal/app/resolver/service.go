// Package resolver matches free-text name queries against the player
// directory.
package resolver

import (
	"context"
	"sort"
	"strings"

	"nba-shotchart/internal/domain/players"
	"nba-shotchart/internal/providers"
)

// Service resolves player names using an injected directory provider.
type Service struct {
	directory providers.PlayerDirectoryProvider
}

// NewService constructs a Service with the provided directory.
func NewService(directory providers.PlayerDirectoryProvider) *Service {
	return &Service{directory: directory}
}

// Resolve returns the directory entries matching the query. An exact
// full-name match short-circuits substring matching, so "Michael Jordan"
// yields one candidate even though "Jordan" alone matches several players.
// Candidates come back in stable id order. No match is a NotFoundError.
func (s *Service) Resolve(ctx context.Context, query string) ([]players.Candidate, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, &providers.ValidationError{Field: "player name", Message: "must not be empty"}
	}

	directory, err := s.directory.FetchPlayers(ctx)
	if err != nil {
		return nil, err
	}

	var exact, partial []players.Candidate
	for _, candidate := range directory {
		if strings.EqualFold(candidate.FullName, query) {
			exact = append(exact, candidate)
			continue
		}
		if strings.Contains(strings.ToLower(candidate.FullName), strings.ToLower(query)) {
			partial = append(partial, candidate)
		}
	}

	matches := exact
	if len(matches) == 0 {
		matches = partial
	}
	if len(matches) == 0 {
		return nil, &providers.NotFoundError{Resource: "player", Key: query}
	}

	sort.Slice(matches, func(i, j int) bool { return matches[i].ID < matches[j].ID })
	return matches, nil
}
