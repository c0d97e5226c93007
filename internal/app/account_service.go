package app

import (
	"context"
	"strings"

	"risuwork/internal/common"
	"risuwork/internal/domain/company"
	"risuwork/internal/domain/user"
)

type AccountService struct {
	users     user.Repository
	companies company.Repository
}

func NewAccountService(users user.Repository, companies company.Repository) *AccountService {
	return &AccountService{users: users, companies: companies}
}

// SignupCandidate creates a CS account. Email uniqueness is enforced by
// the store and surfaces as a conflict.
func (s *AccountService) SignupCandidate(ctx context.Context, email, name string) (*user.User, error) {
	if err := validateAccount(email, name); err != nil {
		return nil, err
	}
	return s.users.Create(ctx, user.User{
		Email: strings.TrimSpace(email),
		Name:  name,
		Type:  user.TypeCandidate,
	})
}

// SignupEmployer creates a CL account bound to an existing company. The
// company binding is permanent; a nonexistent company is a validation
// failure, not a conflict.
func (s *AccountService) SignupEmployer(ctx context.Context, email, name string, companyID int64) (*user.User, error) {
	if err := validateAccount(email, name); err != nil {
		return nil, err
	}
	if companyID <= 0 {
		return nil, common.NewValidationError("invalid request", map[string]string{"company_id": "company_id is required"})
	}
	return s.users.Create(ctx, user.User{
		Email:     strings.TrimSpace(email),
		Name:      name,
		Type:      user.TypeEmployer,
		CompanyID: companyID,
	})
}

func (s *AccountService) CreateCompany(ctx context.Context, name, industryID string) (*company.Company, error) {
	fields := map[string]string{}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if strings.TrimSpace(industryID) == "" {
		fields["industry_id"] = "industry_id is required"
	}
	if len(fields) > 0 {
		return nil, common.NewValidationError("invalid request", fields)
	}
	return s.companies.Create(ctx, company.Company{Name: name, IndustryID: industryID})
}

func validateAccount(email, name string) error {
	fields := map[string]string{}
	if strings.TrimSpace(email) == "" {
		fields["email"] = "email is required"
	}
	if strings.TrimSpace(name) == "" {
		fields["name"] = "name is required"
	}
	if len(fields) > 0 {
		return common.NewValidationError("invalid request", fields)
	}
	return nil
}
