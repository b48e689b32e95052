package service

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"taxengine/internal/ingest"
	"taxengine/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestNexusService(t *testing.T) NexusService {
	t.Helper()
	evaluator, _, err := LoadCatalog(context.Background(), repository.NewStaticCatalogRepository())
	require.NoError(t, err)
	return NewNexusService(evaluator)
}

func TestGetThreshold(t *testing.T) {
	svc := newTestNexusService(t)

	res := svc.GetThreshold(context.Background(), "NY")
	assert.Equal(t, "NY", res.StateCode)
	assert.Equal(t, NexusRuleResponse{Jurisdiction: "NY", RevenueThreshold: "500000.00", TransactionThreshold: 100}, res.Rule)

	res = svc.GetThreshold(context.Background(), "DEFAULT")
	assert.Equal(t, "DEFAULT", res.StateCode)
	assert.True(t, res.Rule.IsDefault)
	assert.Equal(t, "100000.00", res.Rule.RevenueThreshold)
	assert.Equal(t, 200, res.Rule.TransactionThreshold)
}

func TestListRules(t *testing.T) {
	svc := newTestNexusService(t)

	res := svc.ListRules(context.Background())
	require.Len(t, res.Rules, 6)
	assert.Equal(t, "AL", res.Rules[0].Jurisdiction)
	assert.Equal(t, DefaultJurisdiction, res.Default.Jurisdiction)
	assert.True(t, res.Default.IsDefault)
}

func TestEvaluateCSV_Sample(t *testing.T) {
	svc := newTestNexusService(t)

	res, err := svc.EvaluateCSV(context.Background(), bytes.NewReader(svc.SampleCSV()))
	require.NoError(t, err)

	assert.Equal(t, 7, res.RecordCount)
	assert.Equal(t, 6, res.StateCount)
	assert.Equal(t, 3, res.LiableCount)
	assert.Equal(t, "1452050.00", res.TotalRevenue)

	ca := res.Verdicts[0]
	assert.Equal(t, "CA", ca.StateCode)
	assert.Equal(t, "550000.00", ca.TotalRevenue)
	assert.Equal(t, 2, ca.TotalTransactions)
	assert.Equal(t, StatusLiable, ca.Status)
	assert.Equal(t, 1, ca.ColorScale)

	ny := res.Verdicts[1]
	assert.Equal(t, "NY", ny.StateCode)
	assert.Equal(t, StatusSafe, ny.Status)
	assert.Equal(t, 0, ny.ColorScale)
}

func TestEvaluateCSV_MissingColumn(t *testing.T) {
	svc := newTestNexusService(t)

	_, err := svc.EvaluateCSV(context.Background(), strings.NewReader("state,amount\nCA,1\n"))
	var fe *ingest.InputFormatError
	require.True(t, errors.As(err, &fe))
	assert.Equal(t, []string{"state_code"}, fe.Missing)
}

func TestEvaluateRecords(t *testing.T) {
	svc := newTestNexusService(t)

	reqs := make([]SalesRecordRequest, 0, 150)
	for i := 0; i < 150; i++ {
		reqs = append(reqs, SalesRecordRequest{StateCode: "NY", Amount: "266.66"})
	}

	res, err := svc.EvaluateRecords(context.Background(), reqs)
	require.NoError(t, err)
	require.Len(t, res.Verdicts, 1)
	assert.True(t, res.Verdicts[0].IsLiable, "150 NY transactions breach the count threshold")
	assert.Equal(t, "39999.00", res.Verdicts[0].TotalRevenue)
}

func TestEvaluateRecords_BadAmount(t *testing.T) {
	svc := newTestNexusService(t)

	_, err := svc.EvaluateRecords(context.Background(), []SalesRecordRequest{{StateCode: "CA", Amount: "lots"}})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestEvaluateRecords_Empty(t *testing.T) {
	svc := newTestNexusService(t)

	res, err := svc.EvaluateRecords(context.Background(), nil)
	require.NoError(t, err)
	assert.Empty(t, res.Verdicts)
	assert.NotNil(t, res.Verdicts)
	assert.Equal(t, "0.00", res.TotalRevenue)
}

func TestEvaluateRecords_RejectsOutOfRangeAmounts(t *testing.T) {
	svc := newTestNexusService(t)

	for _, amount := range []string{"1e50000000", "1e-50000000"} {
		_, err := svc.EvaluateRecords(context.Background(), []SalesRecordRequest{{StateCode: "CA", Amount: amount}})
		assert.ErrorIs(t, err, ErrInvalidAmount, amount)
	}
}
