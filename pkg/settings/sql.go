package settings

import "database/sql"

func buildCreateRemindersTable() string {
	return `CREATE TABLE IF NOT EXISTS reminders (
		chatid TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		practice INTEGER,
		qualy INTEGER,
		sprint INTEGER,
		race INTEGER);`
}

func buildCreatePreferencesTable() string {
	return `CREATE TABLE IF NOT EXISTS preferences (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL);`
}

func buildSelectChatCommand() (string, func(*sql.Rows) (Reminders, error)) {
	return `SELECT practice, qualy, sprint, race FROM reminders WHERE chatid = ?`, processSelectChatRows
}

func processSelectChatRows(rows *sql.Rows) (Reminders, error) {
	defer rows.Close()

	r := AllDisabled()
	// only can be one row
	if rows.Next() {
		var practice, qualy, sprint, race int
		if err := rows.Scan(&practice, &qualy, &sprint, &race); err != nil {
			return r, err
		}
		r.setSessionEnabledFlag(Practice, practice == 1)
		r.setSessionEnabledFlag(Qualy, qualy == 1)
		r.setSessionEnabledFlag(Sprint, sprint == 1)
		r.setSessionEnabledFlag(Race, race == 1)
		return r, nil
	}
	return r, rows.Err()
}

func buildSelectChatsForSessionCommand(sessionType string) (string, func(*sql.Rows) ([]Subscriber, error)) {
	return `SELECT chatid, name FROM reminders WHERE ` + sessionType + ` = 1`, processSelectChatsRows
}

func processSelectChatsRows(rows *sql.Rows) ([]Subscriber, error) {
	defer rows.Close()

	subscribers := make([]Subscriber, 0)
	for rows.Next() {
		var chatID, name string
		if err := rows.Scan(&chatID, &name); err != nil {
			return subscribers, err
		}
		subscribers = append(subscribers, Subscriber{ChatID: chatID, Name: name})
	}
	return subscribers, rows.Err()
}

func buildUpsertChatCommand() string {
	return `INSERT OR REPLACE INTO reminders (chatid, name, practice, qualy, sprint, race)
		VALUES (?, ?, ?, ?, ?, ?)`
}

func buildSelectPreferenceCommand() string {
	return `SELECT value FROM preferences WHERE key = ?`
}

func buildUpsertPreferenceCommand() string {
	return `INSERT OR REPLACE INTO preferences (key, value) VALUES (?, ?)`
}
