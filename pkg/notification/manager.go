// Package notification reminds subscribed chats about upcoming race
// weekend sessions.
package notification

import (
	"context"
	"fmt"
	"strconv"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/nikoksr/notify"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/pkg/model"
	"github.com/hajni77/f1-analytics/pkg/service"
	"github.com/hajni77/f1-analytics/pkg/settings"
)

// Lister exposes the subscriber side of the settings store.
type Lister interface {
	ListSubscribersForSession(sessionType string) ([]settings.Subscriber, error)
}

type Manager struct {
	ctx    context.Context
	bot    *tgbotapi.BotAPI
	svc    *service.Service
	lister Lister
	lead   time.Duration
	// sessions already announced, keyed by race id + session type
	announced map[string]bool
}

func NewManager(ctx context.Context, bot *tgbotapi.BotAPI, svc *service.Service, lister Lister, lead time.Duration) *Manager {
	return &Manager{
		ctx:       ctx,
		bot:       bot,
		svc:       svc,
		lister:    lister,
		lead:      lead,
		announced: make(map[string]bool),
	}
}

// Start checks the calendar once per tick until exitChan fires.
func (m *Manager) Start(ticker *time.Ticker, exitChan <-chan bool) {
	m.check(time.Now())
	go func() {
		for {
			select {
			case <-exitChan:
				return
			case t := <-ticker.C:
				m.check(t)
			}
		}
	}()
}

func (m *Manager) check(now time.Time) {
	race, err := m.svc.NextRace(m.ctx, now)
	if err == service.ErrNoUpcomingRace {
		return
	}
	if err != nil {
		log.Errorf("error looking up next race: %s", err)
		return
	}
	if race.Schedule == nil {
		return
	}

	for sessionType, session := range upcomingSessions(race) {
		start, ok := sessionStart(session)
		if !ok {
			continue
		}
		until := start.Sub(now)
		if until < 0 || until > m.lead {
			continue
		}
		key := race.ID + ":" + sessionType
		if m.announced[key] {
			continue
		}
		m.announced[key] = true
		m.handleReminder(race, sessionType, start)
	}
}

func (m *Manager) handleReminder(race model.Race, sessionType string, start time.Time) {
	subscribers, err := m.lister.ListSubscribersForSession(sessionType)
	if err != nil {
		log.Errorf("error listing subscribers for %s: %s", sessionType, err)
		return
	}
	log.Infof("sending %s reminder for %s to %d chats", sessionType, race.Name, len(subscribers))
	message := fmt.Sprintf("%s %s starts at %s (%s)",
		race.Name, sessionType, start.Format("2006-01-02 15:04 MST"), race.Circuit.Name)
	if err := m.sendReminder(subscribers, message); err != nil {
		log.Errorf("error notifying chats: %s", err)
	}
}

func (m *Manager) sendReminder(subscribers []settings.Subscriber, message string) error {
	if len(subscribers) == 0 {
		return nil
	}

	tg := Telegram{}
	tg.SetClient(m.bot)
	for _, subscriber := range subscribers {
		chatID, err := strconv.ParseInt(subscriber.ChatID, 0, 64)
		if err != nil {
			continue
		}
		tg.AddReceivers(chatID)
	}

	n := notify.NewWithServices(&tg)
	return n.Send(m.ctx, "Upcoming session:", message)
}

// upcomingSessions maps reminder types onto the race's schedule slots.
func upcomingSessions(race model.Race) map[string]model.SessionSchedule {
	sessions := map[string]model.SessionSchedule{
		settings.Practice: race.Schedule.FP1,
		settings.Qualy:    race.Schedule.Qualy,
		settings.Race:     race.Schedule.Race,
	}
	if race.Schedule.SprintRace != nil {
		sessions[settings.Sprint] = *race.Schedule.SprintRace
	}
	return sessions
}

func sessionStart(session model.SessionSchedule) (time.Time, bool) {
	if session.Date == nil {
		return time.Time{}, false
	}
	start := *session.Date
	if session.Time == nil {
		return start, true
	}
	for _, layout := range []string{"15:04:05Z07:00", "15:04:05"} {
		if t, err := time.Parse(layout, *session.Time); err == nil {
			return time.Date(start.Year(), start.Month(), start.Day(),
				t.Hour(), t.Minute(), t.Second(), 0, t.Location()), true
		}
	}
	return start, true
}
