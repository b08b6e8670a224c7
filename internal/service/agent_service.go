package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"fikse-agent-be/internal/constant"
	"fikse-agent-be/internal/dto"
	"fikse-agent-be/internal/entity"
	"fikse-agent-be/internal/mapper"
	"fikse-agent-be/internal/pkg/logger"
	"fikse-agent-be/internal/pkg/mailer"
	"fikse-agent-be/internal/pkg/serverutils"
	"fikse-agent-be/internal/repository/contract"
	"fikse-agent-be/pkg/events"
	"fikse-agent-be/pkg/intent"
	pktNats "fikse-agent-be/pkg/nats"
	"fikse-agent-be/pkg/selection"
	"fikse-agent-be/pkg/store"

	"github.com/google/uuid"
)

// IAgentService drives the order-building conversation. Turns for one
// session id must be applied sequentially by the caller; there is no
// internal per-session locking.
type IAgentService interface {
	HandleTurn(ctx context.Context, req *dto.AgentTurnRequest) (*dto.AgentTurnResponse, error)
	GetSessionState(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error)
	ResetSession(ctx context.Context, sessionID string) error
}

type agentService struct {
	sessionRepo   contract.SessionRepository
	searchService ISearchService
	orderRepo     contract.OrderRepository
	classifier    intent.Classifier
	publisher     *pktNats.Publisher   // optional
	emailService  mailer.IEmailService // optional
	notifyEmail   string
	suggestionCap int
	mapper        *mapper.SearchMapper
	log           logger.ILogger
}

func NewAgentService(
	sessionRepo contract.SessionRepository,
	searchService ISearchService,
	orderRepo contract.OrderRepository,
	classifier intent.Classifier,
	publisher *pktNats.Publisher,
	emailService mailer.IEmailService,
	notifyEmail string,
	suggestionCap int,
	log logger.ILogger,
) IAgentService {
	if suggestionCap <= 0 {
		suggestionCap = 5
	}
	return &agentService{
		sessionRepo:   sessionRepo,
		searchService: searchService,
		orderRepo:     orderRepo,
		classifier:    classifier,
		publisher:     publisher,
		emailService:  emailService,
		notifyEmail:   notifyEmail,
		suggestionCap: suggestionCap,
		mapper:        mapper.NewSearchMapper(),
		log:           log,
	}
}

func (s *agentService) HandleTurn(ctx context.Context, req *dto.AgentTurnRequest) (*dto.AgentTurnResponse, error) {
	session, found := s.sessionRepo.Get(req.SessionId)
	if !found {
		session = store.NewSession(req.SessionId)
	}

	detected := s.classifier.Classify(req.Message)

	s.log.Debug("agent", "Turn received", map[string]interface{}{
		"session": req.SessionId,
		"state":   session.State,
		"intent":  string(detected),
	})

	var res *dto.AgentTurnResponse
	var err error

	switch detected {
	case intent.IntentReset:
		s.sessionRepo.Delete(req.SessionId)
		session = store.NewSession(req.SessionId)
		res = s.respond(session, detected, constant.ReplyCancelled)

	case intent.IntentGreeting:
		session.State = store.StateGreeting
		res = s.respond(session, detected, constant.ReplyGreeting)

	case intent.IntentIntroduceSelf:
		if name := intent.ExtractName(req.Message); name != "" {
			session.UserName = name
		}
		res = s.respond(session, detected, fmt.Sprintf(constant.ReplyNiceToMeet, s.displayName(session)))

	case intent.IntentRepairRequest:
		res, err = s.handleSearch(ctx, session, detected, req.Message)

	case intent.IntentSelection:
		res = s.handleSelection(session, detected, req.Message)

	case intent.IntentAffirmative:
		res, err = s.handleAffirmative(ctx, session, detected)

	case intent.IntentNegative:
		res = s.handleNegative(session, detected)

	default:
		res, err = s.handleUnknown(ctx, session, detected, req.Message)
	}

	if err != nil {
		// Failed turns leave the stored session untouched, so the draft
		// never advances past a collaborator failure.
		return nil, err
	}

	s.sessionRepo.Save(session)
	return res, nil
}

func (s *agentService) GetSessionState(ctx context.Context, sessionID string) (*dto.SessionStateResponse, error) {
	session, found := s.sessionRepo.Get(sessionID)
	if !found {
		return nil, serverutils.NewNotFoundError("session not found")
	}

	res := &dto.SessionStateResponse{
		SessionId:        session.ID,
		UserName:         session.UserName,
		State:            session.State,
		SuggestionsCount: len(session.Suggestions),
	}
	if session.Draft != nil && len(session.Draft.Services) > 0 {
		res.DraftOrder = s.mapper.ToOrderResponse(session.Draft)
	}
	return res, nil
}

func (s *agentService) ResetSession(ctx context.Context, sessionID string) error {
	s.sessionRepo.Delete(sessionID)
	return nil
}

// handleSearch runs the hybrid ranker and presents capped suggestions.
func (s *agentService) handleSearch(ctx context.Context, session *store.Session, detected intent.Intent, query string) (*dto.AgentTurnResponse, error) {
	if session.State == store.StateCompleted {
		// Previous order is done; a new request starts a fresh draft.
		session.Draft = entity.NewDraftOrder()
		session.Suggestions = nil
	}

	candidates, err := s.searchService.SearchCandidates(ctx, query, s.suggestionCap)
	if err != nil {
		return nil, err
	}

	session.LastQuery = query
	session.AwaitingManualEntry = false

	if len(candidates) == 0 {
		session.State = store.StateSearching
		session.Suggestions = nil
		return s.respond(session, detected, constant.ReplyNoMatches), nil
	}

	session.Suggestions = candidates
	session.State = store.StateSelecting

	greeting := ""
	if session.UserName != "" {
		greeting = fmt.Sprintf("Perfect, %s! ", session.UserName)
	}
	reply := greeting + fmt.Sprintf(constant.ReplySuggestions, len(candidates))
	return s.respond(session, detected, reply), nil
}

// handleSelection validates the picked indices against the pending
// suggestions. Validation is all-or-nothing; bad input re-prompts without a
// state change.
func (s *agentService) handleSelection(session *store.Session, detected intent.Intent, message string) *dto.AgentTurnResponse {
	if session.State != store.StateSelecting || len(session.Suggestions) == 0 {
		return s.respond(session, detected, constant.ReplyFallback)
	}

	indices, err := selection.ParseIndices(strings.TrimSpace(message), len(session.Suggestions))
	if err != nil {
		s.log.Debug("agent", "Selection rejected", map[string]interface{}{
			"session": session.ID,
			"error":   err.Error(),
		})
		return s.respond(session, detected, constant.ReplyReprompt)
	}

	if session.Draft == nil {
		session.Draft = entity.NewDraftOrder()
	}
	added := 0
	for _, idx := range indices {
		if session.Draft.AddService(session.Suggestions[idx].Record) {
			added++
		}
	}

	session.State = store.StateManualAddition
	return s.respond(session, detected, fmt.Sprintf(constant.ReplySelected, added))
}

func (s *agentService) handleAffirmative(ctx context.Context, session *store.Session, detected intent.Intent) (*dto.AgentTurnResponse, error) {
	switch session.State {
	case store.StateManualAddition:
		session.AwaitingManualEntry = true
		return s.respond(session, detected, constant.ReplyDescribeManual), nil

	case store.StateConfirming:
		return s.finalizeOrder(ctx, session, detected)

	default:
		return s.respond(session, detected, constant.ReplyFallback), nil
	}
}

func (s *agentService) handleNegative(session *store.Session, detected intent.Intent) *dto.AgentTurnResponse {
	switch session.State {
	case store.StateManualAddition:
		return s.presentSummary(session, detected)

	case store.StateConfirming:
		session.Draft = entity.NewDraftOrder()
		session.Suggestions = nil
		session.State = store.StateGreeting
		return s.respond(session, detected, constant.ReplyOrderDiscarded)

	default:
		return s.respond(session, detected, constant.ReplyFallback)
	}
}

func (s *agentService) handleUnknown(ctx context.Context, session *store.Session, detected intent.Intent, message string) (*dto.AgentTurnResponse, error) {
	switch {
	case session.AwaitingManualEntry:
		// Free-text description of an extra service: search again.
		return s.handleSearch(ctx, session, detected, message)

	case session.State == store.StateSearching:
		// The last search found nothing; treat the rephrase as a new query.
		return s.handleSearch(ctx, session, detected, message)

	case session.State == store.StateSelecting:
		return s.respond(session, detected, constant.ReplyReprompt), nil

	case session.State == store.StateManualAddition:
		// No recognizable answer while asked about extras: move on to the summary.
		return s.presentSummary(session, detected), nil

	case session.State == store.StateConfirming:
		return s.respond(session, detected, constant.ReplyConfirmPrompt), nil

	default:
		return s.respond(session, detected, constant.ReplyFallback), nil
	}
}

func (s *agentService) presentSummary(session *store.Session, detected intent.Intent) *dto.AgentTurnResponse {
	if session.Draft == nil || len(session.Draft.Services) == 0 {
		session.State = store.StateGreeting
		return s.respond(session, detected, constant.ReplyEmptyDraft)
	}

	session.AwaitingManualEntry = false
	session.State = store.StateConfirming
	reply := fmt.Sprintf(constant.ReplySummary, len(session.Draft.Services), session.Draft.TotalPrice)
	return s.respond(session, detected, reply)
}

// finalizeOrder persists the confirmed order and announces it. Any failure
// leaves the session in confirming so the user can retry.
func (s *agentService) finalizeOrder(ctx context.Context, session *store.Session, detected intent.Intent) (*dto.AgentTurnResponse, error) {
	if session.Draft == nil || len(session.Draft.Services) == 0 {
		session.State = store.StateGreeting
		return s.respond(session, detected, constant.ReplyEmptyDraft), nil
	}

	order := session.Draft
	order.Id = newOrderId()
	order.CreatedAt = time.Now()
	order.Status = entity.OrderStatusConfirmed

	if err := s.orderRepo.Create(ctx, order); err != nil {
		order.Id = ""
		order.Status = entity.OrderStatusDraft
		s.log.Error("agent", "Failed to persist order", map[string]interface{}{"error": err.Error()})
		return nil, err
	}

	session.State = store.StateCompleted
	session.Suggestions = nil

	if s.publisher != nil {
		if err := s.publisher.Publish(ctx, events.NewOrderConfirmed(order)); err != nil {
			s.log.Warn("agent", "Failed to publish order event", map[string]interface{}{"error": err.Error()})
		}
	}
	if s.emailService != nil && s.notifyEmail != "" {
		if err := s.emailService.SendOrderReceipt(s.notifyEmail, order); err != nil {
			s.log.Warn("agent", "Failed to send order receipt", map[string]interface{}{"error": err.Error()})
		}
	}

	s.log.Info("agent", "Order confirmed", map[string]interface{}{
		"order_id":    order.Id,
		"total_price": order.TotalPrice,
		"services":    len(order.Services),
	})

	reply := fmt.Sprintf(constant.ReplyOrderCreated, order.Id, order.TotalPrice)
	return s.respond(session, detected, reply), nil
}

func (s *agentService) respond(session *store.Session, detected intent.Intent, reply string) *dto.AgentTurnResponse {
	res := &dto.AgentTurnResponse{
		SessionId: session.ID,
		Intent:    string(detected),
		Reply:     reply,
		State:     session.State,
	}
	if session.State == store.StateSelecting {
		res.Suggestions = s.mapper.ToSearchResults(session.Suggestions)
	}
	if session.Draft != nil && len(session.Draft.Services) > 0 {
		if session.Draft.Status == entity.OrderStatusConfirmed {
			res.Order = s.mapper.ToOrderResponse(session.Draft)
		} else {
			res.DraftOrder = s.mapper.ToOrderResponse(session.Draft)
		}
	}
	return res
}

func (s *agentService) displayName(session *store.Session) string {
	if session.UserName != "" {
		return session.UserName
	}
	return "friend"
}

func newOrderId() string {
	hex := strings.ReplaceAll(uuid.New().String(), "-", "")
	return "ORD-" + strings.ToUpper(hex[:8])
}
