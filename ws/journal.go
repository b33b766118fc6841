package ws

import (
	"context"
	"database/sql"
	"fmt"
	"go-l5r/engine"
	"time"
)

// JournalEntry 动作流水里的一条事件记录
type JournalEntry struct {
	RoomID    string
	PlayerID  string
	Action    string
	Event     string
	CardID    string
	TokenID   string
	Cancelled bool
	Message   string
	CreatedAt time.Time
}

type Journal interface {
	Record(ctx context.Context, entries []JournalEntry) error
}

// NopJournal 未配置 MySQL 时使用
type NopJournal struct{}

func (NopJournal) Record(context.Context, []JournalEntry) error { return nil }

type MySQLJournal struct {
	db *sql.DB
}

func NewMySQLJournal(db *sql.DB) *MySQLJournal {
	return &MySQLJournal{db: db}
}

const insertJournalEntry = `INSERT INTO action_journal
	(room_id, player_id, action, event, card_id, token_id, cancelled, message, created_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`

// Record 同一次结算的事件在一个事务里写入
func (j *MySQLJournal) Record(ctx context.Context, entries []JournalEntry) error {
	if len(entries) == 0 {
		return nil
	}
	tx, err := j.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("开启事务失败: %w", err)
	}
	defer tx.Rollback()

	for _, e := range entries {
		if _, err := tx.ExecContext(ctx, insertJournalEntry,
			e.RoomID, e.PlayerID, e.Action, e.Event, e.CardID, e.TokenID, e.Cancelled, e.Message, e.CreatedAt,
		); err != nil {
			return fmt.Errorf("写入动作流水失败: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("提交动作流水失败: %w", err)
	}
	return nil
}

func journalEntries(roomID string, result *engine.Result, now time.Time) []JournalEntry {
	entries := make([]JournalEntry, 0, len(result.Resolved)+len(result.Cancelled))
	add := func(ev *engine.GameEvent) {
		entry := JournalEntry{
			RoomID:    roomID,
			PlayerID:  ev.Player,
			Action:    result.Action,
			Event:     string(ev.Name),
			CardID:    ev.CardID(),
			Cancelled: ev.Cancelled,
			Message:   result.Message,
			CreatedAt: now,
		}
		if ev.Token != nil {
			entry.TokenID = ev.Token.ID
		}
		entries = append(entries, entry)
	}
	for _, ev := range result.Resolved {
		add(ev)
	}
	for _, ev := range result.Cancelled {
		add(ev)
	}
	return entries
}
