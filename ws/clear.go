package ws

import (
	"time"

	"go-l5r/repository"

	"go.uber.org/zap"
)

func ScheduleDailyRoomReset() {
	for {
		duration := durationUntilNext4AM(time.Now())
		zap.L().Info("距离下次清理房间", zap.Duration("after", duration))

		time.Sleep(duration)
		clearRooms()
	}
}

func durationUntilNext4AM(now time.Time) time.Duration {
	next := time.Date(now.Year(), now.Month(), now.Day(), 4, 0, 0, 0, now.Location())

	// 如果当前时间已过4点，则设置为第二天的4点
	if !now.Before(next) {
		next = next.Add(24 * time.Hour)
	}
	return next.Sub(now)
}

// clearRooms 移除所有玩家都已离线、或 redis 中已不存在的房间
func clearRooms() int {
	roomLock.Lock()
	ids := make([]string, 0, len(Rooms))
	for id, players := range Rooms {
		online := false
		for _, pc := range players {
			if pc.Online {
				online = true
				break
			}
		}
		if !online {
			ids = append(ids, id)
		}
	}
	roomLock.Unlock()

	removed := 0
	for id := range snapshotRoomIDs() {
		if _, err := GetRoomInfo(repository.Rdb, repository.Ctx, id); err != nil {
			ids = append(ids, id)
		}
	}

	roomLock.Lock()
	defer roomLock.Unlock()
	for _, id := range ids {
		if _, ok := Rooms[id]; ok {
			delete(Rooms, id)
			actionLocks.Delete(id)
			removed++
		}
	}
	zap.L().Info("⏰ 清理房间完成", zap.Int("removed", removed))
	return removed
}

func snapshotRoomIDs() map[string]struct{} {
	roomLock.Lock()
	defer roomLock.Unlock()
	ids := make(map[string]struct{}, len(Rooms))
	for id := range Rooms {
		ids[id] = struct{}{}
	}
	return ids
}
