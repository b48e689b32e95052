package service

import (
	"context"
	"fmt"
	"io"

	"taxengine/internal/catalog"
	"taxengine/internal/ingest"
	"taxengine/internal/model"
	"taxengine/internal/nexus"
	"taxengine/pkg/money"

	"github.com/shopspring/decimal"
)

// Verdict display statuses
const (
	StatusLiable = "LIABLE"
	StatusSafe   = "SAFE"
)

// DefaultJurisdiction labels the fallback rule in responses
const DefaultJurisdiction = "DEFAULT"

// --- DTOs ---

type SalesRecordRequest struct {
	StateCode string `json:"state_code"`
	Amount    string `json:"amount"` // Decimal string, e.g. "2500.00"
}

type EvaluateRecordsRequest struct {
	Records []SalesRecordRequest `json:"records" binding:"required"`
}

type NexusRuleResponse struct {
	Jurisdiction         string `json:"jurisdiction"` // State code, or DEFAULT for the fallback rule
	RevenueThreshold     string `json:"revenue_threshold"`
	TransactionThreshold int    `json:"transaction_threshold"` // 0 = not evaluated
	IsDefault            bool   `json:"is_default"`
}

type ThresholdResponse struct {
	StateCode string            `json:"state_code"`
	Rule      NexusRuleResponse `json:"rule"`
}

type NexusRuleTableResponse struct {
	Rules   []NexusRuleResponse `json:"rules"`
	Default NexusRuleResponse   `json:"default"`
}

type NexusVerdictResponse struct {
	StateCode         string            `json:"state_code"`
	TotalRevenue      string            `json:"total_revenue"`
	TotalTransactions int               `json:"total_transactions"`
	IsLiable          bool              `json:"is_liable"`
	Status            string            `json:"status"`      // LIABLE or SAFE
	ColorScale        int               `json:"color_scale"` // 1 liable, 0 safe
	Rule              NexusRuleResponse `json:"rule"`
}

type NexusEvaluationResponse struct {
	Verdicts     []NexusVerdictResponse `json:"verdicts"`
	RecordCount  int                    `json:"record_count"`
	StateCount   int                    `json:"state_count"`
	LiableCount  int                    `json:"liable_count"`
	TotalRevenue string                 `json:"total_revenue"`
}

// --- Interface ---

type NexusService interface {
	GetThreshold(ctx context.Context, stateCode string) ThresholdResponse
	ListRules(ctx context.Context) NexusRuleTableResponse
	EvaluateCSV(ctx context.Context, r io.Reader) (NexusEvaluationResponse, error)
	EvaluateRecords(ctx context.Context, records []SalesRecordRequest) (NexusEvaluationResponse, error)
	SampleCSV() []byte
}

type nexusService struct {
	evaluator *nexus.Evaluator
}

func NewNexusService(evaluator *nexus.Evaluator) NexusService {
	return &nexusService{evaluator: evaluator}
}

// --- Implementation ---

func (s *nexusService) GetThreshold(ctx context.Context, stateCode string) ThresholdResponse {
	return ThresholdResponse{
		StateCode: stateCode,
		Rule:      toNexusRuleResponse(s.evaluator.LookupRule(stateCode)),
	}
}

func (s *nexusService) ListRules(ctx context.Context) NexusRuleTableResponse {
	rules := s.evaluator.Rules()
	res := NexusRuleTableResponse{
		Rules:   make([]NexusRuleResponse, 0, len(rules)),
		Default: toNexusRuleResponse(s.evaluator.Fallback()),
	}
	for _, r := range rules {
		res.Rules = append(res.Rules, toNexusRuleResponse(r))
	}
	return res
}

func (s *nexusService) EvaluateCSV(ctx context.Context, r io.Reader) (NexusEvaluationResponse, error) {
	records, err := ingest.ReadSales(r)
	if err != nil {
		return NexusEvaluationResponse{}, fmt.Errorf("failed to read sales upload: %w", err)
	}
	return s.evaluate(records), nil
}

func (s *nexusService) EvaluateRecords(ctx context.Context, reqs []SalesRecordRequest) (NexusEvaluationResponse, error) {
	records := make([]model.SalesRecord, 0, len(reqs))
	for i, req := range reqs {
		amount, err := money.Parse(req.Amount)
		if err != nil {
			return NexusEvaluationResponse{}, fmt.Errorf("%w: record %d: %v", ErrInvalidAmount, i, err)
		}
		records = append(records, model.SalesRecord{StateCode: req.StateCode, Amount: amount})
	}
	return s.evaluate(records), nil
}

func (s *nexusService) SampleCSV() []byte {
	return catalog.SampleSalesCSV()
}

// --- Helpers ---

func (s *nexusService) evaluate(records []model.SalesRecord) NexusEvaluationResponse {
	verdicts := s.evaluator.EvaluateBatch(records)

	res := NexusEvaluationResponse{
		Verdicts:    make([]NexusVerdictResponse, 0, len(verdicts)),
		RecordCount: len(records),
		StateCount:  len(verdicts),
	}
	total := decimal.Zero
	for _, v := range verdicts {
		total = total.Add(v.TotalRevenue)
		if v.IsLiable {
			res.LiableCount++
		}
		res.Verdicts = append(res.Verdicts, toVerdictResponse(v))
	}
	res.TotalRevenue = total.StringFixed(2)

	return res
}

func toNexusRuleResponse(r model.NexusRule) NexusRuleResponse {
	jurisdiction := r.StateCode
	if r.Fallback {
		jurisdiction = DefaultJurisdiction
	}
	return NexusRuleResponse{
		Jurisdiction:         jurisdiction,
		RevenueThreshold:     r.RevenueThreshold.StringFixed(2),
		TransactionThreshold: r.TransactionThreshold,
		IsDefault:            r.Fallback,
	}
}

func toVerdictResponse(v model.NexusVerdict) NexusVerdictResponse {
	resp := NexusVerdictResponse{
		StateCode:         v.StateCode,
		TotalRevenue:      v.TotalRevenue.StringFixed(2),
		TotalTransactions: v.TotalTransactions,
		IsLiable:          v.IsLiable,
		Status:            StatusSafe,
		Rule:              toNexusRuleResponse(v.Rule),
	}
	if v.IsLiable {
		resp.Status = StatusLiable
		resp.ColorScale = 1
	}
	return resp
}
