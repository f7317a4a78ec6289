package service

import (
	"fmt"
	"log/slog"

	"github.com/internhub/internhub/internal/repository"
)

type ShortlistService struct {
	shortlistRepository repository.ShortlistRepository
}

func NewShortlistService(shortlistRepository repository.ShortlistRepository) *ShortlistService {
	return &ShortlistService{shortlistRepository: shortlistRepository}
}

func (s *ShortlistService) List(userID int64) ([]int64, error) {
	ids, err := s.shortlistRepository.InternshipIDs(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list shortlist: %w", err)
	}
	return ids, nil
}

// Add saves an internship to the user's shortlist. Adding an internship that
// is already shortlisted succeeds without creating a second row.
func (s *ShortlistService) Add(userID, internshipID int64) error {
	err := s.shortlistRepository.Add(userID, internshipID)
	if err != nil {
		return fmt.Errorf("failed to add to shortlist: %w", err)
	}

	slog.Debug("internship shortlisted", "user_id", userID, "internship_id", internshipID)
	return nil
}

// Remove drops an internship from the shortlist. Removing one that is not
// shortlisted is a no-op success.
func (s *ShortlistService) Remove(userID, internshipID int64) error {
	err := s.shortlistRepository.Remove(userID, internshipID)
	if err != nil {
		return fmt.Errorf("failed to remove from shortlist: %w", err)
	}

	slog.Debug("internship unshortlisted", "user_id", userID, "internship_id", internshipID)
	return nil
}
