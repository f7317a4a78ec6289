package service

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/internhub/internhub/internal/model"
	"github.com/internhub/internhub/internal/repository"
	"github.com/internhub/internhub/internal/validation"
)

// ErrPersistence wraps storage failures during a profile write. The in-flight
// update is rolled back and the stored profile left unchanged.
var ErrPersistence = errors.New("persistence failure")

type ProfileService struct {
	userRepository repository.UserRepository
	photoMaxBytes  int
	aboutMaxChars  int
}

func NewProfileService(userRepository repository.UserRepository, photoMaxBytes, aboutMaxChars int) *ProfileService {
	return &ProfileService{
		userRepository: userRepository,
		photoMaxBytes:  photoMaxBytes,
		aboutMaxChars:  aboutMaxChars,
	}
}

// ProfileSummary is the lightweight "who am I" view shown on every page.
type ProfileSummary struct {
	Name      string           `json:"name"`
	Skills    model.StringList `json:"skills"`
	Interests model.StringList `json:"interests"`
	Photo     string           `json:"photo"`
	Stream    string           `json:"stream"`
}

// ProfileInput carries one wholesale profile submission. There is no partial
// update: every field replaces the stored value, except FullName and Photo
// which keep the previous value when empty, and Phone which falls back to the
// signup mobile.
type ProfileInput struct {
	FullName      string   `json:"fullName"`
	DOB           string   `json:"dob"`
	Phone         string   `json:"phone"`
	State         string   `json:"state"`
	City          string   `json:"city"`
	LinkedIn      string   `json:"linkedin"`
	GitHub        string   `json:"github"`
	About         string   `json:"about"`
	College       string   `json:"college"`
	Qualification string   `json:"qualification"`
	Stream        string   `json:"stream"`
	Year          int      `json:"year"`
	Location      string   `json:"location"`
	Skills        []string `json:"skills"`
	Interests     []string `json:"interests"`
	Photo         string   `json:"photo"`
}

func (s *ProfileService) Summary(userID int64) (*ProfileSummary, error) {
	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return nil, err
	}

	return &ProfileSummary{
		Name:      user.FullName,
		Skills:    user.Skills,
		Interests: user.Interests,
		Photo:     user.Photo,
		Stream:    user.Stream,
	}, nil
}

func (s *ProfileService) FullProfile(userID int64) (*model.User, error) {
	return s.userRepository.ByID(userID)
}

// Submit overwrites the stored profile with the submitted fields in a single
// atomic write. Skills and interests are stored as ordered JSON lists; a nil
// input for either becomes an empty list.
func (s *ProfileService) Submit(userID int64, input ProfileInput) error {
	err := validation.ValidatePhoto(input.Photo, s.photoMaxBytes)
	if err != nil {
		return err
	}
	err = validation.ValidateAbout(input.About, s.aboutMaxChars)
	if err != nil {
		return err
	}

	user, err := s.userRepository.ByID(userID)
	if err != nil {
		return err
	}

	if name := strings.TrimSpace(input.FullName); name != "" {
		user.FullName = name
	}
	user.DOB = input.DOB
	user.Phone = input.Phone
	if user.Phone == "" {
		user.Phone = user.Mobile
	}
	user.State = input.State
	user.City = input.City
	user.LinkedIn = input.LinkedIn
	user.GitHub = input.GitHub
	user.About = input.About
	user.College = input.College
	user.Qualification = input.Qualification
	user.Stream = input.Stream
	user.Year = input.Year
	user.Location = input.Location
	user.Skills = listOrEmpty(input.Skills)
	user.Interests = listOrEmpty(input.Interests)
	if input.Photo != "" {
		user.Photo = input.Photo
	}

	err = s.userRepository.UpdateProfile(user)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return err
		}
		return fmt.Errorf("%w: %s", ErrPersistence, err)
	}

	slog.Info("profile submitted", "user_id", userID)
	return nil
}

func listOrEmpty(in []string) model.StringList {
	if in == nil {
		return model.StringList{}
	}
	return model.StringList(in)
}
