package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	"taxengine/internal/ingest"
	"taxengine/internal/model"
	"taxengine/internal/rates"
	"taxengine/internal/session"
	"taxengine/pkg/money"
	"taxengine/pkg/pagination"

	"github.com/shopspring/decimal"
)

// Quote statuses
const (
	QuoteFound    = "success"
	QuoteNotFound = "not_found"
)

// ErrInvalidAmount is returned for amounts that are not decimal numbers
var ErrInvalidAmount = errors.New("invalid amount")

// NotFoundHint is shown when a zip code matches no rate entry
const NotFoundHint = "Upload a CSV or try: 60601 (Chicago), 90210 (Beverly Hills), 10001 (NYC)."

// --- DTOs ---

type CalculateTaxRequest struct {
	ZipCode string `json:"zip_code" binding:"required"` // Matched verbatim, e.g. "02101"
	Amount  string `json:"amount" binding:"required"`   // Decimal string, e.g. "100.00"
}

type RateBreakdownResponse struct {
	StateLabel   string `json:"state_label"`
	CityLabel    string `json:"city_label"`
	StateRate    string `json:"state_rate"`
	CityRate     string `json:"city_rate"`
	TotalRate    string `json:"total_rate"`
	StatePercent string `json:"state_percent"`
	CityPercent  string `json:"city_percent"`
	TotalPercent string `json:"total_percent"`
}

type CalculateTaxResponse struct {
	Status           string                 `json:"status"` // success or not_found
	Zip              string                 `json:"zip"`
	Amount           string                 `json:"amount"`
	City             string                 `json:"city,omitempty"`
	State            string                 `json:"state,omitempty"`
	Rate             string                 `json:"rate,omitempty"`
	Source           string                 `json:"source,omitempty"` // override or base
	JurisdictionCode string                 `json:"jurisdiction_code,omitempty"`
	TaxCollectible   string                 `json:"tax_collectible"`
	Breakdown        *RateBreakdownResponse `json:"breakdown,omitempty"`
	Message          string                 `json:"message,omitempty"`
}

type OverrideLoadResponse struct {
	Loaded         int `json:"loaded"`
	BuiltIn        int `json:"built_in"`
	TotalAvailable int `json:"total_available"` // built-in + custom, shadowed codes counted twice
}

type ZipRateResponse struct {
	ZipCode     string `json:"zip_code"`
	City        string `json:"city"`
	State       string `json:"state"`
	Rate        string `json:"rate"`
	RatePercent string `json:"rate_percent"`
	Source      string `json:"source"`
}

type SessionResponse struct {
	SessionID     string `json:"session_id"`
	OverrideCount int    `json:"override_count"`
	BuiltInCount  int    `json:"built_in_count"`
}

// --- Interface ---

type RateService interface {
	CalculateTax(ctx context.Context, sess *rates.Session, req CalculateTaxRequest) (CalculateTaxResponse, error)
	LoadOverrides(ctx context.Context, sess *rates.Session, r io.Reader) (OverrideLoadResponse, error)
	ClearOverrides(ctx context.Context, sess *rates.Session)
	ListRates(ctx context.Context, sess *rates.Session, page pagination.Params) ([]ZipRateResponse, pagination.Meta)
	Describe(ctx context.Context, sess *rates.Session) SessionResponse
}

type rateService struct{}

func NewRateService() RateService {
	return &rateService{}
}

// --- Implementation ---

func (s *rateService) CalculateTax(ctx context.Context, sess *rates.Session, req CalculateTaxRequest) (CalculateTaxResponse, error) {
	amount, err := money.Parse(req.Amount)
	if err != nil {
		return CalculateTaxResponse{}, fmt.Errorf("%w: %v", ErrInvalidAmount, err)
	}

	quote := sess.Resolve(req.ZipCode, amount)
	return toQuoteResponse(quote), nil
}

func (s *rateService) LoadOverrides(ctx context.Context, sess *rates.Session, r io.Reader) (OverrideLoadResponse, error) {
	entries, err := ingest.ReadOverrides(r)
	if err != nil {
		return OverrideLoadResponse{}, fmt.Errorf("failed to load rate overrides: %w", err)
	}

	loaded := sess.LoadOverrides(entries)
	log.Printf("Session %s loaded %d custom zip codes", session.IDFromContext(ctx), loaded)

	return OverrideLoadResponse{
		Loaded:         loaded,
		BuiltIn:        sess.BaseCount(),
		TotalAvailable: sess.BaseCount() + loaded,
	}, nil
}

func (s *rateService) ClearOverrides(ctx context.Context, sess *rates.Session) {
	sess.ClearOverrides()
	log.Printf("Session %s cleared custom zip codes", session.IDFromContext(ctx))
}

func (s *rateService) ListRates(ctx context.Context, sess *rates.Session, page pagination.Params) ([]ZipRateResponse, pagination.Meta) {
	entries, sources := sess.Effective()
	start, end := page.Window(len(entries))

	res := make([]ZipRateResponse, 0, end-start)
	for i := start; i < end; i++ {
		e := entries[i]
		res = append(res, ZipRateResponse{
			ZipCode:     e.ZipCode,
			City:        e.City,
			State:       e.State,
			Rate:        e.Rate.String(),
			RatePercent: percent(e.Rate),
			Source:      sources[i],
		})
	}

	return res, page.Meta(int64(len(entries)))
}

func (s *rateService) Describe(ctx context.Context, sess *rates.Session) SessionResponse {
	return SessionResponse{
		SessionID:     session.IDFromContext(ctx),
		OverrideCount: sess.OverrideCount(),
		BuiltInCount:  sess.BaseCount(),
	}
}

// --- Helpers ---

func toQuoteResponse(q model.TaxQuote) CalculateTaxResponse {
	resp := CalculateTaxResponse{
		Zip:            q.ZipCode,
		Amount:         q.Amount.StringFixed(2),
		TaxCollectible: q.TaxAmount.StringFixed(rates.TaxDecimals),
	}
	if !q.Found() {
		resp.Status = QuoteNotFound
		resp.Message = fmt.Sprintf("Zip Code '%s' not in database. %s", q.ZipCode, NotFoundHint)
		return resp
	}

	e := q.Entry
	b := rates.Breakdown(*e)

	resp.Status = QuoteFound
	resp.City = e.City
	resp.State = e.State
	resp.Rate = e.Rate.String()
	resp.Source = q.Source
	resp.JurisdictionCode = e.State + "-" + q.ZipCode
	resp.Breakdown = &RateBreakdownResponse{
		StateLabel:   "State (" + e.State + ")",
		CityLabel:    "City (" + e.City + ")",
		StateRate:    b.State.String(),
		CityRate:     b.City.String(),
		TotalRate:    b.Total.String(),
		StatePercent: percent(b.State),
		CityPercent:  percent(b.City),
		TotalPercent: percent(b.Total),
	}
	return resp
}

var hundred = decimal.NewFromInt(100)

// percent renders a fraction as a percentage with two decimals, e.g. 0.095 -> "9.50%"
func percent(rate decimal.Decimal) string {
	return rate.Mul(hundred).StringFixed(2) + "%"
}
