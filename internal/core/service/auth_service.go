package service

import (
	"context"
	"errors"
	"regexp"

	"github.com/rs/zerolog"

	"github.com/request-management/request-system/internal/core/domain"
	"github.com/request-management/request-system/internal/core/ports"
)

var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,6}$`)

// AuthService implements login, registration and identifier classification.
type AuthService struct {
	repo     ports.AccountRepository
	accounts ports.AccountService
	mapper   ports.Mapper[ports.AccountData, domain.Account]
	hasher   ports.PasswordHasher
	tokens   ports.TokenService
	logger   zerolog.Logger
}

func NewAuthService(
	repo ports.AccountRepository,
	accounts ports.AccountService,
	mapper ports.Mapper[ports.AccountData, domain.Account],
	hasher ports.PasswordHasher,
	tokens ports.TokenService,
	logger zerolog.Logger,
) *AuthService {
	return &AuthService{
		repo:     repo,
		accounts: accounts,
		mapper:   mapper,
		hasher:   hasher,
		tokens:   tokens,
		logger:   logger,
	}
}

// Login resolves the identifier to an account, verifies the password, and
// issues a token carrying the account's persisted role. A failed lookup is
// tagged with the identifier kind that was attempted; a failed password check
// after a successful lookup is a credential mismatch, not a not-found.
func (s *AuthService) Login(ctx context.Context, identifier, password string) (*ports.LoginResult, error) {
	if identifier == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.findByIdentifier(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if !s.hasher.Matches(password, account.PasswordHash) {
		s.logger.Warn().Str("username", account.Username).Msg("login rejected, password mismatch")
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(ports.Identity{
		AccountID: account.ID,
		Username:  account.Username,
		Role:      account.Role,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("account_id", account.ID).Str("username", account.Username).Msg("login succeeded")

	return &ports.LoginResult{Account: *s.mapper.ToDTO(account), Token: token}, nil
}

// findByIdentifier classifies the identifier in strict order: bare national
// id, punctuated national id, email, username.
func (s *AuthService) findByIdentifier(ctx context.Context, identifier string) (*domain.Account, error) {
	switch {
	case domain.IsBareNationalID(identifier):
		account, err := s.repo.FindByNationalID(ctx, domain.FormatNationalID(identifier))
		return account, tagNotFound(err, domain.ErrNoAccountWithNationalID)
	case domain.IsPunctuatedNationalID(identifier):
		account, err := s.repo.FindByNationalID(ctx, identifier)
		return account, tagNotFound(err, domain.ErrNoAccountWithNationalID)
	case emailPattern.MatchString(identifier):
		account, err := s.repo.FindByEmail(ctx, identifier)
		return account, tagNotFound(err, domain.ErrNoAccountWithEmail)
	default:
		account, err := s.repo.FindByUsername(ctx, identifier)
		return account, tagNotFound(err, domain.ErrNoAccountWithUsername)
	}
}

func tagNotFound(err, tagged error) error {
	if errors.Is(err, domain.ErrAccountNotFound) {
		return tagged
	}
	return err
}

// Register validates the registration fields and creates the account. An
// admin role is rejected before anything else, regardless of other field
// validity. The password is hashed by the account service before persisting.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AccountData, error) {
	if input.Role == domain.RoleAdmin {
		return nil, domain.ErrPrivilegeEscalation
	}

	canonical, err := domain.NormalizeNationalID(input.NationalID)
	if err != nil {
		return nil, err
	}

	if !emailPattern.MatchString(input.Email) {
		return nil, domain.ErrInvalidEmail
	}

	created, err := s.accounts.Create(ctx, &ports.AccountData{
		Username:           input.Username,
		NationalID:         canonical,
		Email:              input.Email,
		Password:           input.Password,
		Role:               input.Role,
		Name:               input.Name,
		BirthDate:          input.BirthDate,
		Gender:             input.Gender,
		RegistrationNumber: input.RegistrationNumber,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Int64("account_id", created.ID).Str("username", created.Username).Msg("account registered")
	return created, nil
}
