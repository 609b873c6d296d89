package resolver

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/samber/do"
	"github.com/sejalchopra/dental-ai-chatbot/app/client/llm"
	"github.com/sejalchopra/dental-ai-chatbot/app/config"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/proposal"
	"github.com/sejalchopra/dental-ai-chatbot/app/service/schedule"
	"github.com/sejalchopra/dental-ai-chatbot/app/util/vocab"
)

const (
	anonSession = "anon"
	anonUser    = "anonymous"

	fallbackReply = "I can help you book an appointment. When would you like to come in?"
)

// Extractor is the external model boundary. Implementations return an error
// instead of panicking; the resolver treats any error as "no result" and
// falls through to deterministic extraction.
type Extractor interface {
	Extract(ctx context.Context, userText string) (*llm.Extraction, error)
}

type Service struct {
	proposals *proposal.Service
	extractor Extractor // nil when the model path is disabled
	now       func() time.Time
}

func New(di *do.Injector) (*Service, error) {
	cfg := do.MustInvoke[*config.Config](di)
	proposals := do.MustInvoke[*proposal.Service](di)

	var extractor Extractor
	if cfg.OpenAI.Enabled && cfg.OpenAI.Token != "" {
		extractor = do.MustInvoke[*llm.Client](di)
	}

	return NewService(proposals, extractor, time.Now), nil
}

// NewService wires the resolver explicitly; tests use it to substitute a
// deterministic extractor and a fixed clock.
func NewService(proposals *proposal.Service, extractor Extractor, now func() time.Time) *Service {
	return &Service{
		proposals: proposals,
		extractor: extractor,
		now:       now,
	}
}

// Resolve classifies one message into confirm/decline/propose/chat and
// applies the matching proposal transition. It never fails; the worst case
// is the generic chat fallback. The session lock is held across the whole
// sequence so racing requests for the same session serialize.
func (s *Service) Resolve(ctx context.Context, req Request) Result {
	msg := strings.TrimSpace(req.Message)
	low := strings.ToLower(msg)

	sid := req.SessionID
	if sid == "" {
		sid = anonSession
	}

	unlock := s.proposals.LockSession(sid)
	defer unlock()

	if pending, ok := s.proposals.Get(sid); ok {
		if vocab.EqualsAnyTrimmed(low, vocab.ShortYes) || vocab.Affirm.MatchesAny(low) {
			// The proposal is intentionally kept, so a repeated "yes"
			// confirms the same slot again.
			return s.finish(req, Result{
				Reply:                fmt.Sprintf("Confirming your appointment for %s.", pending),
				AppointmentCandidate: &pending,
				Intent:               IntentConfirm,
			})
		}

		if vocab.EqualsAnyTrimmed(low, vocab.ShortNo) || vocab.Negate.MatchesAny(low) {
			s.proposals.Remove(sid)

			return s.finish(req, Result{
				Reply:  "Okay, I will not book that time. When works better?",
				Intent: IntentDecline,
			})
		}
	}

	if s.extractor != nil {
		if result, ok := s.resolveViaModel(ctx, req, sid, msg); ok {
			return result
		}
	}

	if when, ok := schedule.Extract(msg, s.now()); ok {
		iso := schedule.FormatISO(when)
		s.proposals.Put(sid, iso)

		return s.finish(req, Result{
			Reply:                fmt.Sprintf("Great! I can tentatively book you for %s. Shall I confirm?", iso),
			AppointmentCandidate: &iso,
			Intent:               IntentPropose,
			NeedsConfirmation:    true,
		})
	}

	return s.finish(req, Result{
		Reply:  fallbackReply,
		Intent: IntentChat,
	})
}

func (s *Service) resolveViaModel(ctx context.Context, req Request, sid, msg string) (Result, bool) {
	extraction, err := s.extractor.Extract(ctx, msg)
	if err != nil {
		slog.Error("Model extraction failed, falling back",
			"session_id", sid,
			"error", err)
		return Result{}, false
	}

	if extraction.Empty() {
		return Result{}, false
	}

	if extraction.ISO != "" {
		iso := extraction.ISO
		s.proposals.Put(sid, iso)

		return s.finish(req, Result{
			Reply:                extraction.Reply + " Shall I confirm?",
			AppointmentCandidate: &iso,
			Intent:               IntentPropose,
			NeedsConfirmation:    true,
		}), true
	}

	return s.finish(req, Result{
		Reply:  extraction.Reply,
		Intent: IntentChat,
	}), true
}

func (s *Service) finish(req Request, result Result) Result {
	result.UserID = req.UserID
	if result.UserID == "" {
		result.UserID = anonUser
	}
	result.Input = req.Message

	return result
}
