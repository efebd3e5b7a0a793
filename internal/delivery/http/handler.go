package http

import (
	"crypto/sha256"
	"encoding/hex"
	"log"
	"net/http"
	"regexp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/shopwise/backend/internal/domain"
	"github.com/shopwise/backend/internal/usecase"
)

var emailRegex = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// Limit bounds for listings per store
const (
	minLimit     = 1
	maxLimit     = 10
	defaultLimit = 3
)

// Handler holds dependencies for HTTP handlers
type Handler struct {
	searchService *usecase.SearchService
	evaluator     domain.Evaluator
	signups       domain.SignupRepository
}

// NewHandler creates a new HTTP handler
func NewHandler(searchService *usecase.SearchService, evaluator domain.Evaluator, signups domain.SignupRepository) *Handler {
	return &Handler{
		searchService: searchService,
		evaluator:     evaluator,
		signups:       signups,
	}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status": "ok",
	})
}

type searchPayload struct {
	Query string `json:"query"`
	Limit int    `json:"limit"`
}

// SearchProducts handles product comparison requests
func (h *Handler) SearchProducts(c *gin.Context) {
	var payload searchPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	query := strings.TrimSpace(payload.Query)
	if query == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Query must not be empty."})
		return
	}

	limit := payload.Limit
	if limit == 0 {
		limit = defaultLimit
	}
	if limit < minLimit || limit > maxLimit {
		c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 10"})
		return
	}

	response, err := h.searchService.Search(c.Request.Context(), &domain.SearchRequest{
		Query: query,
		Limit: limit,
	})
	if err != nil {
		// Detail stays in the log; clients get a generic message
		log.Printf("[API] search failed for %q: %v", query, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "search failed"})
		return
	}

	c.JSON(http.StatusOK, response)
}

// Evaluate forwards a payload to the external evaluation service
func (h *Handler) Evaluate(c *gin.Context) {
	var payload map[string]interface{}
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	result, err := h.evaluator.Evaluate(c.Request.Context(), payload)
	if err != nil {
		log.Printf("[API] evaluation failed: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "evaluation failed"})
		return
	}

	c.JSON(http.StatusOK, result)
}

type signupPayload struct {
	FullName        string   `json:"full_name" binding:"required"`
	Email           string   `json:"email" binding:"required"`
	Password        string   `json:"password" binding:"required"`
	Organization    string   `json:"organization"`
	Major           string   `json:"major"`
	University      string   `json:"university"`
	Location        string   `json:"location"`
	PurposeChoices  []string `json:"purpose_choices"`
	PurposeText     string   `json:"purpose_text"`
	TermsAccepted   bool     `json:"terms_accepted"`
	PrivacyAccepted bool     `json:"privacy_accepted"`
}

// Signup validates and persists a student signup profile
func (h *Handler) Signup(c *gin.Context) {
	var payload signupPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "full_name, email and password are required"})
		return
	}

	if !emailRegex.MatchString(payload.Email) {
		c.JSON(http.StatusBadRequest, gin.H{"error": "email address is not valid"})
		return
	}
	if len(payload.Password) < 8 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "password must be at least 8 characters"})
		return
	}
	if !payload.TermsAccepted || !payload.PrivacyAccepted {
		c.JSON(http.StatusBadRequest, gin.H{"error": "terms and privacy policy must be accepted"})
		return
	}

	id, err := h.signups.Save(c.Request.Context(), &domain.SignupProfile{
		FullName:        payload.FullName,
		Email:           payload.Email,
		PasswordHash:    hashPassword(payload.Password),
		Organization:    payload.Organization,
		Major:           payload.Major,
		University:      payload.University,
		Location:        payload.Location,
		PurposeChoices:  payload.PurposeChoices,
		PurposeText:     payload.PurposeText,
		TermsAccepted:   payload.TermsAccepted,
		PrivacyAccepted: payload.PrivacyAccepted,
	})
	if err != nil {
		log.Printf("[API] signup failed for %s: %v", payload.Email, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "signup could not be saved"})
		return
	}

	c.JSON(http.StatusCreated, gin.H{"id": id})
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}
