// Package history provides SQLite-based persistence for completed exchanges.
// The database is opened lazily and created on first use.
// If opening the DB or executing queries fails, the package falls back to in-memory storage.
package history

import (
	"database/sql"
	"sync"

	_ "github.com/glebarez/go-sqlite"

	"github.com/clipforge/clipforge/internal/logger"
)

// Log records completed exchanges. A zero-path or failed-to-open database
// degrades to the in-memory buffer only.
type Log struct {
	mu        sync.Mutex
	exchanges []Exchange // in-memory fallback

	dbPath  string
	dbOnce  sync.Once
	db      *sql.DB
	initErr error
}

// NewLog creates an exchange log backed by the SQLite file at dbPath.
func NewLog(dbPath string) *Log {
	if dbPath == "" {
		dbPath = "exchanges.db"
	}
	return &Log{dbPath: dbPath}
}

// initDB lazily opens the SQLite database and creates the exchanges table if it doesn't exist.
func (l *Log) initDB() {
	var err error
	l.db, err = sql.Open("sqlite", "file:"+l.dbPath+"?_busy_timeout=10000&_fk=1")
	if err != nil {
		l.initErr = err
		logger.L.Warn("sqlite open failed; using in-memory exchange log", "error", err)
		return
	}
	if _, err = l.db.Exec(`CREATE TABLE IF NOT EXISTS exchanges (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        invocation_id TEXT,
        app_id TEXT,
        action TEXT,
        prompt TEXT,
        reply TEXT,
        created_at DATETIME
    );`); err != nil {
		l.initErr = err
		logger.L.Warn("sqlite table creation failed; using in-memory exchange log", "error", err)
		return
	}
	logger.L.Info("sqlite exchange log initialized", "path", l.dbPath)
}

// Record persists an exchange to the SQLite database when available and
// always keeps an in-memory copy as fallback.
func (l *Log) Record(ex Exchange) {
	l.dbOnce.Do(l.initDB)

	if l.initErr == nil && l.db != nil {
		_, err := l.db.Exec(`INSERT INTO exchanges (invocation_id, app_id, action, prompt, reply, created_at) VALUES (?,?,?,?,?,?);`,
			ex.InvocationID, ex.AppID, ex.Action, ex.Prompt, ex.Reply, ex.CreatedAt)
		if err != nil {
			logger.L.Error("failed to store exchange in sqlite; falling back to memory", "error", err)
		}
	}

	l.mu.Lock()
	l.exchanges = append(l.exchanges, ex)
	l.mu.Unlock()
}

// List returns all exchanges recorded for an application in chronological order.
func (l *Log) List(appID string) []Exchange {
	l.dbOnce.Do(l.initDB)
	var out []Exchange
	if l.initErr == nil && l.db != nil {
		rows, err := l.db.Query(`SELECT id, invocation_id, app_id, action, prompt, reply, created_at FROM exchanges WHERE app_id = ? ORDER BY id ASC;`, appID)
		if err == nil {
			defer rows.Close()
			for rows.Next() {
				var ex Exchange
				if err := rows.Scan(&ex.ID, &ex.InvocationID, &ex.AppID, &ex.Action, &ex.Prompt, &ex.Reply, &ex.CreatedAt); err == nil {
					out = append(out, ex)
				}
			}
			return out
		}
	}
	l.mu.Lock()
	for _, ex := range l.exchanges {
		if ex.AppID == appID {
			out = append(out, ex)
		}
	}
	l.mu.Unlock()
	return out
}
