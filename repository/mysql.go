package repository

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"go.uber.org/zap"
)

const createJournalTable = `CREATE TABLE IF NOT EXISTS action_journal (
	id BIGINT AUTO_INCREMENT PRIMARY KEY,
	room_id VARCHAR(32) NOT NULL,
	player_id VARCHAR(64) NOT NULL,
	action VARCHAR(32) NOT NULL,
	event VARCHAR(64) NOT NULL,
	card_id VARCHAR(64) NOT NULL,
	token_id VARCHAR(64) NOT NULL DEFAULT '',
	cancelled BOOLEAN NOT NULL DEFAULT FALSE,
	message VARCHAR(255) NOT NULL,
	created_at DATETIME NOT NULL,
	INDEX idx_room (room_id)
)`

// InitMySQL 打开动作流水库并确保表存在
func InitMySQL(dsn string) (*sql.DB, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, fmt.Errorf("打开 MySQL 失败: %w", err)
	}
	db.SetConnMaxLifetime(3 * time.Minute)
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(10)

	if err := db.PingContext(Ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("MySQL 连接失败: %w", err)
	}
	if _, err := db.ExecContext(Ctx, createJournalTable); err != nil {
		db.Close()
		return nil, fmt.Errorf("创建 action_journal 表失败: %w", err)
	}
	zap.L().Info("✅ MySQL 连接成功")
	return db, nil
}
