// Package bot is the Telegram surface: the same standings, calendar
// and results the dashboard shows, rendered as monospace tables.
package bot

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/pkg/model"
	"github.com/hajni77/f1-analytics/pkg/render"
	"github.com/hajni77/f1-analytics/pkg/service"
	"github.com/hajni77/f1-analytics/pkg/settings"
)

const (
	menuDrivers   = "/drivers"
	menuTeams     = "/teams"
	menuCalendar  = "/calendar"
	menuNext      = "/next"
	menuReminders = "/reminders"

	callbackDrivers = "drivers"
	callbackTeams   = "teams"
	callbackRemind  = "remind"

	noDataMessage = "No data for this season yet."
)

var (
	commandWithYear = regexp.MustCompile(`^/(drivers|teams|calendar)_(\d{4})$`)
	commandResults  = regexp.MustCompile(`^/results_(\d{4})_(\d+)$`)
)

type Bot struct {
	api   *tgbotapi.BotAPI
	svc   *service.Service
	store *settings.Manager
}

func New(token string, svc *service.Service, store *settings.Manager) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}
	api.Debug = false
	return &Bot{api: api, svc: svc, store: store}, nil
}

// API exposes the underlying connection for the notification manager.
func (b *Bot) API() *tgbotapi.BotAPI {
	return b.api
}

// Start consumes updates until ctx is cancelled.
func (b *Bot) Start(ctx context.Context) {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60
	updates := b.api.GetUpdatesChan(u)

	log.Info("telegram bot listening for updates")
	for {
		select {
		case <-ctx.Done():
			return
		case update := <-updates:
			b.handleUpdate(ctx, update)
		}
	}
}

func (b *Bot) handleUpdate(ctx context.Context, update tgbotapi.Update) {
	switch {
	case update.Message != nil:
		b.handleMessage(ctx, update.Message)
	case update.CallbackQuery != nil:
		b.handleCallbackQuery(ctx, update.CallbackQuery)
	}
}

func (b *Bot) handleMessage(ctx context.Context, message *tgbotapi.Message) {
	if message.From == nil {
		return
	}
	log.Infof("%s wrote %s", message.From.FirstName, message.Text)

	if !message.IsCommand() {
		return
	}
	if err := b.handleCommand(ctx, message.Chat.ID, message.From.FirstName, message.Text); err != nil {
		log.Errorf("An error occured: %s", err.Error())
		msg := tgbotapi.NewMessage(message.Chat.ID, "Something went wrong fetching data. Try again later.")
		if _, err := b.api.Send(msg); err != nil {
			log.Errorf("An error occured: %s", err.Error())
		}
	}
}

func (b *Bot) handleCommand(ctx context.Context, chatID int64, userName, command string) error {
	now := time.Now()
	switch {
	case command == menuDrivers:
		return b.sendDriverStandings(ctx, chatID, 0, now.Year())

	case command == menuTeams:
		return b.sendTeamStandings(ctx, chatID, 0, now.Year())

	case command == menuCalendar:
		return b.sendCalendar(ctx, chatID, 0)

	case command == menuNext:
		return b.sendNextRace(ctx, chatID, now)

	case command == menuReminders:
		log.Debugf("%s opened the reminder menu", userName)
		return b.sendReminderMenu(chatID)

	case commandWithYear.MatchString(command):
		parts := commandWithYear.FindStringSubmatch(command)
		year, _ := strconv.Atoi(parts[2])
		switch parts[1] {
		case "drivers":
			return b.sendDriverStandings(ctx, chatID, year, now.Year())
		case "teams":
			return b.sendTeamStandings(ctx, chatID, year, now.Year())
		default:
			return b.sendCalendar(ctx, chatID, year)
		}

	case commandResults.MatchString(command):
		parts := commandResults.FindStringSubmatch(command)
		year, _ := strconv.Atoi(parts[1])
		round, _ := strconv.Atoi(parts[2])
		return b.sendRaceResults(ctx, chatID, year, round)
	}
	return nil
}

func (b *Bot) sendDriverStandings(ctx context.Context, chatID int64, season, currentYear int) error {
	standings, err := b.svc.DriverStandings(ctx, season)
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		return b.sendPlain(chatID, noDataMessage)
	}
	if season == 0 {
		season = currentYear
	}
	title := fmt.Sprintf("Drivers' championship %d", season)
	keyboard := seasonKeyboard(callbackDrivers, season, currentYear)
	return b.sendTable(chatID, title, render.DriverStandingsTable(standings), &keyboard)
}

func (b *Bot) sendTeamStandings(ctx context.Context, chatID int64, season, currentYear int) error {
	standings, err := b.svc.TeamStandings(ctx, season)
	if err != nil {
		return err
	}
	if len(standings) == 0 {
		return b.sendPlain(chatID, noDataMessage)
	}
	if season == 0 {
		season = currentYear
	}
	title := fmt.Sprintf("Constructors' championship %d", season)
	keyboard := seasonKeyboard(callbackTeams, season, currentYear)
	return b.sendTable(chatID, title, render.TeamStandingsTable(standings), &keyboard)
}

func (b *Bot) sendCalendar(ctx context.Context, chatID int64, season int) error {
	races, err := b.svc.Calendar(ctx, season)
	if err != nil {
		return err
	}
	if len(races) == 0 {
		return b.sendPlain(chatID, noDataMessage)
	}
	year := season
	if year == 0 {
		year = races[0].Season
	}
	title := fmt.Sprintf("Race calendar %d", year)
	return b.sendTable(chatID, title, render.CalendarTable(races), nil)
}

func (b *Bot) sendRaceResults(ctx context.Context, chatID int64, year, round int) error {
	results, err := b.svc.RaceResults(ctx, year, round)
	if err != nil {
		return err
	}
	if len(results) == 0 {
		return b.sendPlain(chatID, "No results for this round yet.")
	}
	title := fmt.Sprintf("Results %d round %d", year, round)
	return b.sendTable(chatID, title, render.RaceResultsTable(results), nil)
}

func (b *Bot) sendNextRace(ctx context.Context, chatID int64, now time.Time) error {
	race, err := b.svc.NextRace(ctx, now)
	if err == service.ErrNoUpcomingRace {
		return b.sendPlain(chatID, "The season is over!")
	}
	if err != nil {
		return err
	}

	lines := []string{
		fmt.Sprintf("Next grand prix: %s", race.Name),
		fmt.Sprintf("Circuit: %s (%s)", race.Circuit.Name, race.Circuit.Country),
		fmt.Sprintf("Round %d of season %d", race.Round, race.Season),
	}
	if race.Schedule != nil && race.Schedule.Race.Date != nil {
		lines = append(lines, fmt.Sprintf("Race day: %s", race.Schedule.Race.Date.Format(model.DateLayout)))
	}
	return b.sendPlain(chatID, strings.Join(lines, "\n"))
}

func (b *Bot) sendReminderMenu(chatID int64) error {
	chat := strconv.FormatInt(chatID, 10)
	reminders, err := b.store.ListReminders(chat)
	if err != nil {
		return err
	}
	msg := tgbotapi.NewMessage(chatID, "Session reminders:\n"+reminders.String())
	keyboard := reminderKeyboard()
	msg.ReplyMarkup = keyboard
	_, err = b.api.Send(msg)
	return err
}

func (b *Bot) sendTable(chatID int64, title, rendered string, keyboard *tgbotapi.InlineKeyboardMarkup) error {
	msg := tgbotapi.NewMessage(chatID, fmt.Sprintf("```\n%s\n\n%s```", title, rendered))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	if keyboard != nil {
		msg.ReplyMarkup = keyboard
	}
	_, err := b.api.Send(msg)
	return err
}

func (b *Bot) sendPlain(chatID int64, text string) error {
	msg := tgbotapi.NewMessage(chatID, text)
	_, err := b.api.Send(msg)
	return err
}
