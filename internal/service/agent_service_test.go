package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/pkg/serverutils"
	"fikse-agent-be/pkg/catalog"
	"fikse-agent-be/pkg/intent"
	"fikse-agent-be/pkg/rank"
	"fikse-agent-be/pkg/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func agentCandidate(service string, price float64) rank.Candidate {
	return rank.Candidate{
		Record: catalog.Record{
			RepairerType: "Tailor",
			Category:     "Clothing",
			GarmentType:  "Jacket",
			Service:      service,
			Price:        price,
		},
		Score: 0.9,
		Tier:  rank.TierPartialService,
	}
}

type agentFixture struct {
	svc         IAgentService
	sessionRepo *fakeSessionRepo
	orderRepo   *fakeOrderRepo
	search      *fakeSearchService
}

func newAgentFixture(candidates []rank.Candidate) *agentFixture {
	sessionRepo := newFakeSessionRepo()
	orderRepo := &fakeOrderRepo{}
	search := &fakeSearchService{candidates: candidates}

	svc := NewAgentService(
		sessionRepo,
		search,
		orderRepo,
		intent.NewRuleClassifier(),
		nil,
		nil,
		"",
		5,
		noopLogger{},
	)
	return &agentFixture{svc: svc, sessionRepo: sessionRepo, orderRepo: orderRepo, search: search}
}

func (f *agentFixture) turn(t *testing.T, message string) *dto.AgentTurnResponse {
	t.Helper()
	res, err := f.svc.HandleTurn(context.Background(), &dto.AgentTurnRequest{
		SessionId: "s1",
		Message:   message,
	})
	require.NoError(t, err)
	return res
}

func TestAgentFullOrderFlow(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{
		agentCandidate("Zipper replacement", 199),
		agentCandidate("Elbow patch", 99),
	})

	res := f.turn(t, "Hello!")
	assert.Equal(t, store.StateGreeting, res.State)

	res = f.turn(t, "My name is Kari")
	assert.Contains(t, res.Reply, "Kari")

	res = f.turn(t, "my jacket zipper is broken")
	assert.Equal(t, store.StateSelecting, res.State)
	require.Len(t, res.Suggestions, 2)

	res = f.turn(t, "1, 2")
	assert.Equal(t, store.StateManualAddition, res.State)
	require.NotNil(t, res.DraftOrder)
	assert.Equal(t, 298.0, res.DraftOrder.TotalPrice)

	res = f.turn(t, "no, that's all")
	assert.Equal(t, store.StateConfirming, res.State)

	res = f.turn(t, "yes")
	assert.Equal(t, store.StateCompleted, res.State)
	require.NotNil(t, res.Order)
	assert.True(t, strings.HasPrefix(res.Order.OrderId, "ORD-"), "order id %q", res.Order.OrderId)
	assert.Len(t, res.Order.OrderId, 12)
	assert.Equal(t, 298.0, res.Order.TotalPrice)

	require.Len(t, f.orderRepo.created, 1)
	assert.Equal(t, "confirmed", f.orderRepo.created[0].Status)
}

func TestAgentInvalidSelectionReprompts(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{agentCandidate("Zipper replacement", 199)})

	f.turn(t, "fix my zipper")

	res := f.turn(t, "7")
	assert.Equal(t, store.StateSelecting, res.State)
	assert.Empty(t, res.DraftOrder)

	// A valid pick still works afterwards.
	res = f.turn(t, "1")
	assert.Equal(t, store.StateManualAddition, res.State)
	require.NotNil(t, res.DraftOrder)
}

func TestAgentDuplicateSelectionIsNoOp(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{agentCandidate("Zipper replacement", 199)})

	f.turn(t, "fix my zipper")
	f.turn(t, "1")

	// Ask for another service, describe the same thing, pick it again.
	f.turn(t, "yes")
	f.turn(t, "same zipper again please, it is torn")
	res := f.turn(t, "1")

	require.NotNil(t, res.DraftOrder)
	assert.Len(t, res.DraftOrder.Services, 1)
	assert.Equal(t, 199.0, res.DraftOrder.TotalPrice)
}

func TestAgentNoMatchesKeepsSearching(t *testing.T) {
	f := newAgentFixture(nil)

	res := f.turn(t, "fix my hoverboard casing, it is broken")
	assert.Equal(t, store.StateSearching, res.State)
	assert.Empty(t, res.Suggestions)
}

func TestAgentResetClearsSession(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{agentCandidate("Zipper replacement", 199)})

	f.turn(t, "fix my zipper")
	f.turn(t, "1")

	res := f.turn(t, "cancel")
	assert.Equal(t, store.StateGreeting, res.State)
	assert.Empty(t, res.DraftOrder)

	session, found := f.sessionRepo.Get("s1")
	require.True(t, found)
	assert.Empty(t, session.Draft.Services)
}

func TestAgentDiscardOnConfirmDecline(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{agentCandidate("Zipper replacement", 199)})

	f.turn(t, "fix my zipper")
	f.turn(t, "1")
	f.turn(t, "no")

	res := f.turn(t, "no")
	assert.Equal(t, store.StateGreeting, res.State)
	assert.Empty(t, f.orderRepo.created)
}

func TestAgentFailedFinalizationStaysConfirming(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{agentCandidate("Zipper replacement", 199)})
	f.orderRepo.err = errors.New("connection lost")

	f.turn(t, "fix my zipper")
	f.turn(t, "1")
	f.turn(t, "no")

	_, err := f.svc.HandleTurn(context.Background(), &dto.AgentTurnRequest{SessionId: "s1", Message: "yes"})
	require.Error(t, err)

	session, found := f.sessionRepo.Get("s1")
	require.True(t, found)
	assert.Equal(t, store.StateConfirming, session.State)
	assert.Equal(t, "draft", session.Draft.Status)

	// Retry succeeds once the store recovers.
	f.orderRepo.err = nil
	res := f.turn(t, "yes")
	assert.Equal(t, store.StateCompleted, res.State)
}

func TestAgentSearchFailurePropagates(t *testing.T) {
	f := newAgentFixture(nil)
	f.search.err = serverutils.NewIndexUnavailableError(errors.New("down"))

	_, err := f.svc.HandleTurn(context.Background(), &dto.AgentTurnRequest{SessionId: "s1", Message: "fix my zipper"})

	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindIndexUnavailable, appErr.Kind)
}

func TestAgentNewOrderAfterCompletion(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{agentCandidate("Zipper replacement", 199)})

	f.turn(t, "fix my zipper")
	f.turn(t, "1")
	f.turn(t, "no")
	f.turn(t, "yes")

	res := f.turn(t, "now my trousers need a hem")
	assert.Equal(t, store.StateSelecting, res.State)
	assert.Empty(t, res.DraftOrder, "draft should restart for the next order")
}

func TestAgentSessionStateLookup(t *testing.T) {
	f := newAgentFixture([]rank.Candidate{agentCandidate("Zipper replacement", 199)})

	f.turn(t, "fix my zipper")

	state, err := f.svc.GetSessionState(context.Background(), "s1")
	require.NoError(t, err)
	assert.Equal(t, store.StateSelecting, state.State)
	assert.Equal(t, 1, state.SuggestionsCount)

	_, err = f.svc.GetSessionState(context.Background(), "missing")
	var appErr *serverutils.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, serverutils.KindNotFound, appErr.Kind)
}
