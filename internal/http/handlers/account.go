package handlers

import (
	"net/http"
	"time"

	"risuwork/internal/app"
	"risuwork/internal/common"
	"risuwork/internal/http/middleware"
	"risuwork/internal/http/response"
	"risuwork/internal/security"
)

type AccountHandler struct {
	accounts *app.AccountService
	tokens   *security.TokenProvider
	tokenTTL time.Duration
	limiter  middleware.Limiter
}

func NewAccountHandler(accounts *app.AccountService, tokens *security.TokenProvider, tokenTTL time.Duration, limiter middleware.Limiter) *AccountHandler {
	return &AccountHandler{accounts: accounts, tokens: tokens, tokenTTL: tokenTTL, limiter: limiter}
}

type signupRequest struct {
	Email     string `json:"email"`
	Name      string `json:"name"`
	CompanyID int64  `json:"company_id"`
}

type signupResponse struct {
	Message string `json:"message"`
	ID      int64  `json:"id"`
	Token   string `json:"token"`
}

func (h *AccountHandler) SignupCandidate(w http.ResponseWriter, r *http.Request) {
	if !h.allowSignup(w, r) {
		return
	}
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.accounts.SignupCandidate(r.Context(), req.Email, req.Name)
	if err != nil {
		response.Error(w, err)
		return
	}
	token, _, err := h.tokens.Generate(created.Email, h.tokenTTL)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to issue token", err))
		return
	}
	response.JSON(w, http.StatusOK, signupResponse{Message: "CS account created successfully", ID: created.ID, Token: token})
}

func (h *AccountHandler) SignupEmployer(w http.ResponseWriter, r *http.Request) {
	if !h.allowSignup(w, r) {
		return
	}
	var req signupRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.accounts.SignupEmployer(r.Context(), req.Email, req.Name, req.CompanyID)
	if err != nil {
		response.Error(w, err)
		return
	}
	token, _, err := h.tokens.Generate(created.Email, h.tokenTTL)
	if err != nil {
		response.Error(w, common.NewError(common.CodeInternal, "failed to issue token", err))
		return
	}
	response.JSON(w, http.StatusOK, signupResponse{Message: "CL account created successfully", ID: created.ID, Token: token})
}

type companyRequest struct {
	Name       string `json:"name"`
	IndustryID string `json:"industry_id"`
}

func (h *AccountHandler) CreateCompany(w http.ResponseWriter, r *http.Request) {
	var req companyRequest
	if err := decodeJSON(r, &req); err != nil {
		response.Error(w, err)
		return
	}
	created, err := h.accounts.CreateCompany(r.Context(), req.Name, req.IndustryID)
	if err != nil {
		response.Error(w, err)
		return
	}
	response.JSON(w, http.StatusOK, map[string]interface{}{"message": "company created successfully", "id": created.ID})
}

func (h *AccountHandler) allowSignup(w http.ResponseWriter, r *http.Request) bool {
	if h.limiter == nil {
		return true
	}
	key := "signup:" + middleware.ClientIP(r)
	if !h.limiter.Allow(key, 10, time.Minute) {
		response.Error(w, common.NewError(common.CodeRateLimited, "signup rate limit exceeded", nil))
		return false
	}
	return true
}
