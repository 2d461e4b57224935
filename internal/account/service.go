package account

import (
	"errors"
	"fmt"
	"time"

	"storefront/internal/domain"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// Credentials is the demo login pair. This is a stand-in collaborator, not
// authentication: the pair is compared verbatim against the login form.
type Credentials struct {
	Email    string
	Password string
}

// Service backs the login, profile and settings pages with session-local
// state.
type Service struct {
	creds      Credentials
	loginDelay time.Duration
	validate   *validator.Validate

	user     *domain.User
	profile  domain.Profile
	settings domain.Settings
	history  []domain.PastOrder
	activity []domain.Activity
}

// NewService creates the account collaborator. loginDelay mirrors the
// cosmetic submit delay of the login form; pass 0 to disable it.
func NewService(creds Credentials, loginDelay time.Duration) *Service {
	return &Service{
		creds:      creds,
		loginDelay: loginDelay,
		validate:   validator.New(),
		profile: domain.Profile{
			Name:       "John Doe",
			Email:      creds.Email,
			Phone:      "+1 (555) 123-4567",
			Address:    "123 Main Street, Apt 4B",
			City:       "New York",
			Country:    "United States",
			PostalCode: "10001",
		},
		settings: DefaultSettings(),
		history: []domain.PastOrder{
			{ID: 1001, Date: "2024-12-20", Items: 3, Total: decimal.NewFromFloat(249.98), Status: "Delivered"},
			{ID: 1002, Date: "2024-11-15", Items: 1, Total: decimal.NewFromFloat(899.99), Status: "Delivered"},
			{ID: 1003, Date: "2024-10-05", Items: 5, Total: decimal.NewFromFloat(159.97), Status: "Delivered"},
		},
	}
}

// DefaultSettings returns the preference defaults for a fresh account.
func DefaultSettings() domain.Settings {
	return domain.Settings{
		Notifications:      true,
		Newsletter:         false,
		DarkMode:           false,
		EmailNotifications: true,
		SMSNotifications:   false,
		Promotions:         true,
		TwoFactor:          false,
		Language:           "English",
		Currency:           "USD",
		TimeZone:           "America/New_York",
	}
}

// Login checks the submitted pair against the demo credentials.
func (s *Service) Login(email, password string) error {
	if s.loginDelay > 0 {
		time.Sleep(s.loginDelay)
	}
	if email != s.creds.Email || password != s.creds.Password {
		return ErrInvalidCredentials
	}
	s.user = &domain.User{
		Name:  s.profile.Name,
		Email: email,
		Role:  "Admin",
	}
	s.recordActivity("Logged in")
	return nil
}

// Logout drops the current user.
func (s *Service) Logout() {
	s.user = nil
}

// CurrentUser returns the logged-in user, if any.
func (s *Service) CurrentUser() (*domain.User, bool) {
	if s.user == nil {
		return nil, false
	}
	u := *s.user
	return &u, true
}

// Profile returns the stored contact fields.
func (s *Service) Profile() domain.Profile {
	return s.profile
}

// UpdateProfile validates and stores the edited contact fields.
func (s *Service) UpdateProfile(p domain.Profile) error {
	if err := s.validate.Struct(p); err != nil {
		return fmt.Errorf("invalid profile: %w", err)
	}
	s.profile = p
	if s.user != nil {
		s.user.Name = p.Name
	}
	s.recordActivity("Updated profile information")
	return nil
}

// Settings returns the stored preferences.
func (s *Service) Settings() domain.Settings {
	return s.settings
}

// SaveSettings validates and stores the edited preferences.
func (s *Service) SaveSettings(set domain.Settings) error {
	if err := s.validate.Struct(set); err != nil {
		return fmt.Errorf("invalid settings: %w", err)
	}
	s.settings = set
	return nil
}

// ResetSettings restores the preference defaults.
func (s *Service) ResetSettings() {
	s.settings = DefaultSettings()
}

// OrderHistory returns the profile page's past orders.
func (s *Service) OrderHistory() []domain.PastOrder {
	out := make([]domain.PastOrder, len(s.history))
	copy(out, s.history)
	return out
}

// ActivityLog returns the recorded account activity, most recent first.
func (s *Service) ActivityLog() []domain.Activity {
	out := make([]domain.Activity, len(s.activity))
	copy(out, s.activity)
	return out
}

func (s *Service) recordActivity(action string) {
	entry := domain.Activity{
		Action:    action,
		Timestamp: time.Now().Format("2006-01-02 03:04 PM"),
	}
	s.activity = append([]domain.Activity{entry}, s.activity...)
}
