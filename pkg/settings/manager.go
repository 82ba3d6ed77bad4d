// Package settings persists per-chat reminder toggles and dashboard
// preferences. It stores no API data; the response cache lives in
// memory only.
package settings

import (
	"database/sql"
	"strconv"
	"strings"
	"sync"

	_ "github.com/mattn/go-sqlite3"
	log "github.com/sirupsen/logrus"
)

const (
	Practice = "practice"
	Qualy    = "qualy"
	Sprint   = "sprint"
	Race     = "race"

	keyDefaultSeason = "default_season"
)

// Subscriber is one chat that opted into a session reminder.
type Subscriber struct {
	ChatID string
	Name   string
}

type Reminders map[string]bool

func AllEnabled() Reminders {
	return Reminders{Practice: true, Qualy: true, Sprint: true, Race: true}
}

func AllDisabled() Reminders {
	return Reminders{Practice: false, Qualy: false, Sprint: false, Race: false}
}

func (r Reminders) String() string {
	status := []string{}
	for _, sessionType := range []string{Practice, Qualy, Sprint, Race} {
		status = append(status, symbolStatus(r[sessionType])+" "+sessionType)
	}
	return strings.Join(status, "\n")
}

func (r Reminders) enabledInt(sessionType string) int {
	if r[sessionType] {
		return 1
	}
	return 0
}

func (r *Reminders) setSessionEnabledFlag(sessionType string, enabled bool) {
	(*r)[sessionType] = enabled
}

func symbolStatus(enabled bool) string {
	if enabled {
		return "🔔"
	}
	return "🔕"
}

type Manager struct {
	db *sql.DB
	mu sync.Mutex
}

func NewManager(dbPath string) (*Manager, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		log.Errorf("error opening database: %s", err)
		return nil, err
	}

	for _, stmt := range []string{buildCreateRemindersTable(), buildCreatePreferencesTable()} {
		if _, err := db.Exec(stmt); err != nil {
			log.Errorf("error init database: %s", err)
			return nil, err
		}
	}

	return &Manager{db: db}, nil
}

func (m *Manager) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.db.Close()
}

// ToggleReminder flips one session reminder for a chat.
func (m *Manager) ToggleReminder(chatID, name, sessionType string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	r, err := m.listReminders(chatID)
	if err != nil {
		return err
	}
	r.setSessionEnabledFlag(sessionType, !r[sessionType])

	_, err = m.db.Exec(buildUpsertChatCommand(), chatID, name,
		r.enabledInt(Practice), r.enabledInt(Qualy), r.enabledInt(Sprint), r.enabledInt(Race))
	if err != nil {
		log.Errorf("error updating database: %s", err)
	}
	return err
}

// ListReminders reports a chat's current toggles.
func (m *Manager) ListReminders(chatID string) (Reminders, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.listReminders(chatID)
}

// ListSubscribersForSession lists every chat that enabled the given
// session reminder.
func (m *Manager) ListSubscribersForSession(sessionType string) ([]Subscriber, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	query, read := buildSelectChatsForSessionCommand(sessionType)
	rows, err := m.db.Query(query)
	if err != nil {
		return []Subscriber{}, err
	}
	return read(rows)
}

// DefaultSeason returns the dashboard's stored season, or zero when
// none was chosen (zero means current).
func (m *Manager) DefaultSeason() (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	var value string
	err := m.db.QueryRow(buildSelectPreferenceCommand(), keyDefaultSeason).Scan(&value)
	if err == sql.ErrNoRows {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	season, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}
	return season, nil
}

func (m *Manager) SetDefaultSeason(season int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	_, err := m.db.Exec(buildUpsertPreferenceCommand(), keyDefaultSeason, strconv.Itoa(season))
	return err
}

func (m *Manager) listReminders(chatID string) (Reminders, error) {
	query, read := buildSelectChatCommand()
	rows, err := m.db.Query(query, chatID)
	if err != nil {
		return AllDisabled(), err
	}
	return read(rows)
}
