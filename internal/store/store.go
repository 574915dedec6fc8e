// Package store persists character snapshots in SQLite. Hot fields used for
// filtering and ranking live in scalar columns; the nested documents (stats,
// skills, rune, background, regression record) are stored as JSON.
package store

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"

	"github.com/arkanite/skillforge/internal/character"
	"github.com/arkanite/skillforge/internal/runegen"
)

// ErrNotFound is returned when no character has the requested id.
var ErrNotFound = errors.New("store: character not found")

// Store wraps a SQLite connection for character persistence.
type Store struct {
	conn *sqlx.DB
}

// Open opens or creates a SQLite database at the given path.
func Open(path string) (*Store, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.conn.Close()
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS characters (
		id TEXT PRIMARY KEY,
		name TEXT NOT NULL,
		level INTEGER NOT NULL,
		experience INTEGER NOT NULL,
		cycle INTEGER NOT NULL,
		background_analyzed INTEGER NOT NULL,
		quests_completed INTEGER NOT NULL,
		guild_role TEXT NOT NULL DEFAULT '',
		stats_json TEXT NOT NULL,
		skills_json TEXT NOT NULL,
		rune_json TEXT,
		background_json TEXT,
		class_json TEXT NOT NULL,
		available_classes_json TEXT NOT NULL,
		achievements_json TEXT NOT NULL,
		regression_json TEXT NOT NULL,
		created_at TEXT NOT NULL,
		updated_at TEXT NOT NULL
	);

	CREATE INDEX IF NOT EXISTS idx_characters_level ON characters(level);
	`
	_, err := s.conn.Exec(schema)
	return err
}

type row struct {
	ID                 string         `db:"id"`
	Name               string         `db:"name"`
	Level              int            `db:"level"`
	Experience         int            `db:"experience"`
	Cycle              int            `db:"cycle"`
	BackgroundAnalyzed int            `db:"background_analyzed"`
	QuestsCompleted    int            `db:"quests_completed"`
	GuildRole          string         `db:"guild_role"`
	StatsJSON          string         `db:"stats_json"`
	SkillsJSON         string         `db:"skills_json"`
	RuneJSON           sql.NullString `db:"rune_json"`
	BackgroundJSON     sql.NullString `db:"background_json"`
	ClassJSON          string         `db:"class_json"`
	AvailableJSON      string         `db:"available_classes_json"`
	AchievementsJSON   string         `db:"achievements_json"`
	RegressionJSON     string         `db:"regression_json"`
	CreatedAt          string         `db:"created_at"`
	UpdatedAt          string         `db:"updated_at"`
}

func encode(ch *character.Character) (row, error) {
	r := row{
		ID:              ch.ID,
		Name:            ch.Name,
		Level:           ch.Level,
		Experience:      ch.Experience,
		Cycle:           ch.Regression.Cycle,
		QuestsCompleted: ch.QuestsCompleted,
		GuildRole:       ch.GuildRole,
		CreatedAt:       ch.CreatedAt.UTC().Format(time.RFC3339Nano),
		UpdatedAt:       ch.UpdatedAt.UTC().Format(time.RFC3339Nano),
	}
	fields := []struct {
		name string
		src  any
		dst  *string
	}{
		{"stats", ch.Stats, &r.StatsJSON},
		{"skills", ch.Skills, &r.SkillsJSON},
		{"class", ch.Class, &r.ClassJSON},
		{"available classes", ch.AvailableClasses, &r.AvailableJSON},
		{"achievements", ch.Achievements, &r.AchievementsJSON},
		{"regression", ch.Regression, &r.RegressionJSON},
	}
	for _, f := range fields {
		b, err := json.Marshal(f.src)
		if err != nil {
			return row{}, fmt.Errorf("marshal %s: %w", f.name, err)
		}
		*f.dst = string(b)
	}
	if ch.BackgroundAnalyzed {
		r.BackgroundAnalyzed = 1
	}
	if ch.Rune != nil {
		b, err := json.Marshal(ch.Rune)
		if err != nil {
			return row{}, fmt.Errorf("marshal rune: %w", err)
		}
		r.RuneJSON = sql.NullString{String: string(b), Valid: true}
	}
	if ch.Background != nil {
		b, err := json.Marshal(ch.Background)
		if err != nil {
			return row{}, fmt.Errorf("marshal background: %w", err)
		}
		r.BackgroundJSON = sql.NullString{String: string(b), Valid: true}
	}
	return r, nil
}

func decode(r row) (character.Character, error) {
	ch := character.Character{
		ID:                 r.ID,
		Name:               r.Name,
		Level:              r.Level,
		Experience:         r.Experience,
		BackgroundAnalyzed: r.BackgroundAnalyzed != 0,
		QuestsCompleted:    r.QuestsCompleted,
		GuildRole:          r.GuildRole,
	}

	docs := []struct {
		name string
		src  string
		dst  any
	}{
		{"stats", r.StatsJSON, &ch.Stats},
		{"skills", r.SkillsJSON, &ch.Skills},
		{"class", r.ClassJSON, &ch.Class},
		{"available classes", r.AvailableJSON, &ch.AvailableClasses},
		{"achievements", r.AchievementsJSON, &ch.Achievements},
		{"regression", r.RegressionJSON, &ch.Regression},
	}
	for _, doc := range docs {
		if err := json.Unmarshal([]byte(doc.src), doc.dst); err != nil {
			return character.Character{}, fmt.Errorf("unmarshal %s: %w", doc.name, err)
		}
	}

	if r.RuneJSON.Valid {
		ch.Rune = new(runegen.SystemRune)
		if err := json.Unmarshal([]byte(r.RuneJSON.String), ch.Rune); err != nil {
			return character.Character{}, fmt.Errorf("unmarshal rune: %w", err)
		}
	}
	if r.BackgroundJSON.Valid {
		ch.Background = new(character.Background)
		if err := json.Unmarshal([]byte(r.BackgroundJSON.String), ch.Background); err != nil {
			return character.Character{}, fmt.Errorf("unmarshal background: %w", err)
		}
	}

	var err error
	if ch.CreatedAt, err = time.Parse(time.RFC3339Nano, r.CreatedAt); err != nil {
		return character.Character{}, fmt.Errorf("parse created_at: %w", err)
	}
	if ch.UpdatedAt, err = time.Parse(time.RFC3339Nano, r.UpdatedAt); err != nil {
		return character.Character{}, fmt.Errorf("parse updated_at: %w", err)
	}
	return ch, nil
}

// Create inserts a new character. The id must not already exist.
func (s *Store) Create(ch *character.Character) error {
	r, err := encode(ch)
	if err != nil {
		return err
	}
	_, err = s.conn.NamedExec(`INSERT INTO characters
		(id, name, level, experience, cycle, background_analyzed, quests_completed,
		 guild_role, stats_json, skills_json, rune_json, background_json, class_json,
		 available_classes_json, achievements_json, regression_json, created_at, updated_at)
		VALUES (:id, :name, :level, :experience, :cycle, :background_analyzed,
		 :quests_completed, :guild_role, :stats_json, :skills_json, :rune_json,
		 :background_json, :class_json, :available_classes_json, :achievements_json,
		 :regression_json, :created_at, :updated_at)`, r)
	if err != nil {
		return fmt.Errorf("insert character %s: %w", ch.ID, err)
	}
	return nil
}

// Update overwrites an existing character snapshot.
func (s *Store) Update(ch *character.Character) error {
	r, err := encode(ch)
	if err != nil {
		return err
	}
	res, err := s.conn.NamedExec(`UPDATE characters SET
		name = :name, level = :level, experience = :experience, cycle = :cycle,
		background_analyzed = :background_analyzed, quests_completed = :quests_completed,
		guild_role = :guild_role, stats_json = :stats_json, skills_json = :skills_json,
		rune_json = :rune_json, background_json = :background_json, class_json = :class_json,
		available_classes_json = :available_classes_json,
		achievements_json = :achievements_json, regression_json = :regression_json,
		updated_at = :updated_at
		WHERE id = :id`, r)
	if err != nil {
		return fmt.Errorf("update character %s: %w", ch.ID, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return ErrNotFound
	}
	return nil
}

// Get loads one character by id.
func (s *Store) Get(id string) (character.Character, error) {
	var r row
	err := s.conn.Get(&r, "SELECT * FROM characters WHERE id = ?", id)
	if errors.Is(err, sql.ErrNoRows) {
		return character.Character{}, ErrNotFound
	}
	if err != nil {
		return character.Character{}, fmt.Errorf("get character %s: %w", id, err)
	}
	return decode(r)
}

// List returns every character, newest first.
func (s *Store) List() ([]character.Character, error) {
	var rows []row
	if err := s.conn.Select(&rows, "SELECT * FROM characters ORDER BY created_at DESC"); err != nil {
		return nil, fmt.Errorf("list characters: %w", err)
	}
	out := make([]character.Character, 0, len(rows))
	for _, r := range rows {
		ch, err := decode(r)
		if err != nil {
			return nil, err
		}
		out = append(out, ch)
	}
	return out, nil
}

// LeaderboardEntry is one ranked row of the leaderboard.
type LeaderboardEntry struct {
	Rank       int    `json:"rank" db:"-"`
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Level      int    `json:"level" db:"level"`
	Experience int    `json:"experience" db:"experience"`
	Cycle      int    `json:"cycle" db:"cycle"`
}

// Leaderboard returns the top characters ordered by level, then experience,
// then regression cycle, all descending.
func (s *Store) Leaderboard(limit int) ([]LeaderboardEntry, error) {
	if limit <= 0 {
		limit = 10
	}
	var entries []LeaderboardEntry
	err := s.conn.Select(&entries, `SELECT id, name, level, experience, cycle
		FROM characters
		ORDER BY level DESC, experience DESC, cycle DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("leaderboard: %w", err)
	}
	for i := range entries {
		entries[i].Rank = i + 1
	}
	return entries, nil
}
