package bot

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	log "github.com/sirupsen/logrus"

	"github.com/hajni77/f1-analytics/pkg/render"
	"github.com/hajni77/f1-analytics/pkg/service"
	"github.com/hajni77/f1-analytics/pkg/settings"
)

func (b *Bot) handleCallbackQuery(ctx context.Context, query *tgbotapi.CallbackQuery) {
	split := strings.Split(query.Data, ":")
	switch split[0] {
	case callbackDrivers, callbackTeams:
		if len(split) < 2 {
			return
		}
		season, err := strconv.Atoi(split[1])
		if err != nil {
			return
		}
		b.editStandings(ctx, query, split[0], season)

	case callbackRemind:
		if len(split) < 2 {
			return
		}
		b.toggleReminder(query, split[1])
	}
}

func (b *Bot) editStandings(ctx context.Context, query *tgbotapi.CallbackQuery, kind string, season int) {
	currentYear := time.Now().Year()

	var title, rendered string
	switch kind {
	case callbackDrivers:
		standings, err := b.svc.DriverStandings(ctx, season)
		if err != nil || len(standings) == 0 {
			b.answerNoData(query)
			return
		}
		title = fmt.Sprintf("Drivers' championship %d", season)
		rendered = render.DriverStandingsTable(standings)
	case callbackTeams:
		standings, err := b.svc.TeamStandings(ctx, season)
		if err != nil || len(standings) == 0 {
			b.answerNoData(query)
			return
		}
		title = fmt.Sprintf("Constructors' championship %d", season)
		rendered = render.TeamStandingsTable(standings)
	}

	keyboard := seasonKeyboard(kind, season, currentYear)
	msg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID,
		fmt.Sprintf("```\n%s\n\n%s```", title, rendered))
	msg.ParseMode = tgbotapi.ModeMarkdownV2
	msg.ReplyMarkup = &keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Errorf("An error occured: %s", err.Error())
	}
}

func (b *Bot) toggleReminder(query *tgbotapi.CallbackQuery, sessionType string) {
	chat := strconv.FormatInt(query.Message.Chat.ID, 10)
	name := query.From.FirstName
	if err := b.store.ToggleReminder(chat, name, sessionType); err != nil {
		log.Errorf("An error occured: %s", err.Error())
		return
	}
	reminders, err := b.store.ListReminders(chat)
	if err != nil {
		log.Errorf("An error occured: %s", err.Error())
		return
	}
	keyboard := reminderKeyboard()
	msg := tgbotapi.NewEditMessageText(query.Message.Chat.ID, query.Message.MessageID,
		"Session reminders:\n"+reminders.String())
	msg.ReplyMarkup = &keyboard
	if _, err := b.api.Send(msg); err != nil {
		log.Errorf("An error occured: %s", err.Error())
	}
}

func (b *Bot) answerNoData(query *tgbotapi.CallbackQuery) {
	callback := tgbotapi.NewCallback(query.ID, noDataMessage)
	if _, err := b.api.Request(callback); err != nil {
		log.Errorf("An error occured: %s", err.Error())
	}
}

// seasonKeyboard offers the surrounding seasons for quick switching.
func seasonKeyboard(kind string, season, currentYear int) tgbotapi.InlineKeyboardMarkup {
	buttons := []tgbotapi.InlineKeyboardButton{}
	for year := season - 2; year <= season+2; year++ {
		if year < service.FirstSeason || year > currentYear {
			continue
		}
		label := strconv.Itoa(year)
		if year == season {
			label = "·" + label + "·"
		}
		buttons = append(buttons,
			tgbotapi.NewInlineKeyboardButtonData(label, fmt.Sprintf("%s:%d", kind, year)))
	}
	return tgbotapi.NewInlineKeyboardMarkup(tgbotapi.NewInlineKeyboardRow(buttons...))
}

func reminderKeyboard() tgbotapi.InlineKeyboardMarkup {
	return tgbotapi.NewInlineKeyboardMarkup(
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Practice", callbackRemind+":"+settings.Practice),
			tgbotapi.NewInlineKeyboardButtonData("Qualy", callbackRemind+":"+settings.Qualy),
		),
		tgbotapi.NewInlineKeyboardRow(
			tgbotapi.NewInlineKeyboardButtonData("Sprint", callbackRemind+":"+settings.Sprint),
			tgbotapi.NewInlineKeyboardButtonData("Race", callbackRemind+":"+settings.Race),
		),
	)
}
