package garden

import (
	"context"
	"fmt"

	"github.com/osse101/HealingGarden_Go/internal/catalog"
	"github.com/osse101/HealingGarden_Go/internal/domain"
	"github.com/osse101/HealingGarden_Go/internal/event"
	"github.com/osse101/HealingGarden_Go/internal/utils"
)

// InitFirstVisitMail drops the welcome letter into an empty mailbox.
// It reports whether the mail was added.
func (e *Engine) InitFirstVisitMail(ctx context.Context) bool {
	var added bool
	_ = e.mutate(ctx, OpInitMail, func(t *tx) error {
		added = e.initFirstVisitMailLocked(t)
		return nil
	})
	return added
}

// ReadMail marks a mail as read, stamping the first read time
func (e *Engine) ReadMail(ctx context.Context, id string) error {
	return e.mutate(ctx, OpReadMail, func(t *tx) error {
		idx := e.mailIndex(id)
		if idx < 0 {
			return fmt.Errorf("read mail %q: %w", id, domain.ErrMailNotFound)
		}
		e.markReadLocked(t, idx)
		return nil
	})
}

// ClaimMailReward merges a mail's seed reward into the inventory once
func (e *Engine) ClaimMailReward(ctx context.Context, id string) (*domain.MailReward, error) {
	var reward domain.MailReward
	err := e.mutate(ctx, OpClaimMail, func(t *tx) error {
		idx := e.mailIndex(id)
		if idx < 0 {
			return fmt.Errorf("claim mail %q: %w", id, domain.ErrMailNotFound)
		}
		m := &e.state.Mails[idx]
		if m.Reward == nil {
			return fmt.Errorf("claim mail %q: %w", id, domain.ErrNoReward)
		}
		if m.IsClaimed {
			return fmt.Errorf("claim mail %q: %w", id, domain.ErrRewardClaimed)
		}

		e.state.Seeds = utils.AddSeeds(e.state.Seeds, m.Reward.SeedType, m.Reward.Count)
		m.IsClaimed = true
		reward = *m.Reward
		e.markReadLocked(t, idx)
		t.touch()
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &reward, nil
}

// CheckForOwlMail delivers the owl's letter once OwlMailDelay has passed since
// the first harvest. It reports whether the mail was added.
func (e *Engine) CheckForOwlMail(ctx context.Context) bool {
	var added bool
	_ = e.mutate(ctx, OpOwlMail, func(t *tx) error {
		added = e.checkOwlMailLocked(t)
		return nil
	})
	return added
}

// UnreadMailCount returns how many mails have not been opened
func (e *Engine) UnreadMailCount() int {
	e.mu.Lock()
	defer e.mu.Unlock()

	n := 0
	for _, m := range e.state.Mails {
		if !m.IsRead {
			n++
		}
	}
	return n
}

func (e *Engine) initFirstVisitMailLocked(t *tx) bool {
	if len(e.state.Mails) > 0 {
		return false
	}
	e.addMailLocked(t, domain.MailItem{
		ID:    catalog.MailIDWelcome,
		Title: WelcomeMailTitle,
		From:  WelcomeMailFrom,
		Body:  WelcomeMailBody,
		Reward: &domain.MailReward{
			SeedType: domain.PlantTurnip,
			Count:    WelcomeRewardSeedQty,
		},
	})
	return true
}

func (e *Engine) checkOwlMailLocked(t *tx) bool {
	s := e.state
	if s.FirstHarvestTime == nil || e.mailIndex(catalog.MailIDOwl) >= 0 {
		return false
	}
	if t.now.Sub(*s.FirstHarvestTime) < OwlMailDelay {
		return false
	}
	e.addMailLocked(t, domain.MailItem{
		ID:    catalog.MailIDOwl,
		Title: OwlMailTitle,
		From:  OwlMailFrom,
		Body:  OwlMailBody,
	})
	return true
}

func (e *Engine) addMailLocked(t *tx, m domain.MailItem) {
	m.CreatedAt = t.now
	e.state.Mails = append(e.state.Mails, m)
	t.touch()
	t.emit(event.New(event.MailReceived, e.profileID, event.MailPayloadV1{
		MailID: m.ID,
		Title:  m.Title,
	}))
}

func (e *Engine) markReadLocked(t *tx, idx int) {
	m := &e.state.Mails[idx]
	if m.IsRead {
		return
	}
	m.IsRead = true
	readAt := t.now
	m.ReadAt = &readAt
	t.touch()
}

func (e *Engine) mailIndex(id string) int {
	for i, m := range e.state.Mails {
		if m.ID == id {
			return i
		}
	}
	return -1
}
