package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;

-- Documents table: one row per distinct source document, keyed by content
-- hash so reprocessing the same file reuses the row.
CREATE TABLE IF NOT EXISTS documents (
    document_id INTEGER PRIMARY KEY AUTOINCREMENT,
    path TEXT NOT NULL,
    content_hash TEXT NOT NULL UNIQUE,
    kind TEXT NOT NULL,              -- pdf, html, text
    size_bytes INTEGER,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_documents_hash ON documents(content_hash);

-- Runs: one row per extraction invocation
CREATE TABLE IF NOT EXISTS runs (
    run_id INTEGER PRIMARY KEY AUTOINCREMENT,
    document_id INTEGER NOT NULL,
    created_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,

    -- Resolved metadata (supplied or detected)
    course_name TEXT,
    semester TEXT,
    year INTEGER,
    language TEXT,
    syllabus_score REAL,

    -- Result counts
    event_count INTEGER NOT NULL DEFAULT 0,
    table_count INTEGER NOT NULL DEFAULT 0,
    linescan_count INTEGER NOT NULL DEFAULT 0,

    warnings TEXT,                   -- newline-joined warning messages
    FOREIGN KEY (document_id) REFERENCES documents(document_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_runs_created ON runs(created_at DESC);
CREATE INDEX IF NOT EXISTS idx_runs_document ON runs(document_id);

-- Run events: the merged event list of a run, in final sorted order
CREATE TABLE IF NOT EXISTS run_events (
    event_id INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id INTEGER NOT NULL,
    position INTEGER NOT NULL,       -- index within the run's sorted list
    ext_id TEXT NOT NULL,            -- generated event identifier
    title TEXT NOT NULL,
    date TEXT NOT NULL,              -- YYYY-MM-DD
    start_time TEXT,                 -- HH:MM, NULL for day-long events
    end_time TEXT,
    type TEXT NOT NULL,
    description TEXT,
    source TEXT NOT NULL,
    confidence REAL NOT NULL,
    selected BOOLEAN NOT NULL DEFAULT 0,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE,
    UNIQUE(run_id, position)
);

CREATE INDEX IF NOT EXISTS idx_run_events_run ON run_events(run_id);
CREATE INDEX IF NOT EXISTS idx_run_events_date ON run_events(date);
CREATE INDEX IF NOT EXISTS idx_run_events_type ON run_events(type);
`
