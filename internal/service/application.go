package service

import (
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/internhub/internhub/internal/model"
	"github.com/internhub/internhub/internal/repository"
)

var ErrAlreadyApplied = errors.New("already applied for this internship")

// appliedOnFormat renders e.g. "05 Mar, 2024"
const appliedOnFormat = "02 Jan, 2006"

type ApplicationService struct {
	applicationRepository repository.ApplicationRepository

	// now is swappable for tests
	now func() time.Time
}

func NewApplicationService(applicationRepository repository.ApplicationRepository) *ApplicationService {
	return &ApplicationService{
		applicationRepository: applicationRepository,
		now:                   time.Now,
	}
}

type ApplyInput struct {
	InternshipID    int64  `json:"internship_id"`
	InternshipTitle string `json:"internship_title"`
	InternshipOrg   string `json:"internship_org"`
	WhyHire         string `json:"why_hire"`
	WorkSample      string `json:"work_sample"`
}

// ApplicationItem is one row of the "my applications" listing. Status carries
// the derived display status, not necessarily the stored column.
type ApplicationItem struct {
	InternshipID int64  `json:"id"`
	Title        string `json:"title"`
	Org          string `json:"org"`
	Status       string `json:"status"`
	AppliedOn    string `json:"applied_on"`
}

// Apply records a new application with the internship title and organization
// denormalized at apply time. A second apply for the same internship returns
// ErrAlreadyApplied.
func (s *ApplicationService) Apply(userID int64, input ApplyInput) (*model.Application, error) {
	app := &model.Application{
		UserID:          userID,
		InternshipID:    input.InternshipID,
		InternshipTitle: input.InternshipTitle,
		InternshipOrg:   input.InternshipOrg,
		Status:          model.StatusApplied,
		WhyHire:         input.WhyHire,
		WorkSample:      input.WorkSample,
		AppliedOn:       s.now().UTC(),
	}

	err := s.applicationRepository.Create(app)
	if err != nil {
		if errors.Is(err, repository.ErrAlreadyApplied) {
			return nil, fmt.Errorf("duplicate application: %w", ErrAlreadyApplied)
		}
		return nil, fmt.Errorf("failed to create application: %w", err)
	}

	slog.Info("application submitted", "user_id", userID, "internship_id", input.InternshipID)
	return app, nil
}

// ListMine returns the user's applications, most recent first, each with its
// display status derived from the time elapsed since applied_on.
func (s *ApplicationService) ListMine(userID int64) ([]ApplicationItem, error) {
	apps, err := s.applicationRepository.ByUser(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	now := s.now()
	items := make([]ApplicationItem, 0, len(apps))
	for _, app := range apps {
		items = append(items, ApplicationItem{
			InternshipID: app.InternshipID,
			Title:        app.InternshipTitle,
			Org:          app.InternshipOrg,
			Status:       app.DisplayStatus(now),
			AppliedOn:    app.AppliedOn.Format(appliedOnFormat),
		})
	}

	return items, nil
}
