package service

import (
	"testing"
	"time"

	"go-l5r/dto"
	"go-l5r/entities"
	"go-l5r/repository"
	"go-l5r/utils"
	"go-l5r/ws"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRedis(t *testing.T) {
	t.Helper()
	mr := miniredis.RunT(t)
	repository.Rdb = redis.NewClient(&redis.Options{Addr: mr.Addr()})
	ws.Rooms = make(map[string][]dto.PlayerConn)
	t.Cleanup(func() {
		repository.Rdb.Close()
		ws.Rooms = make(map[string][]dto.PlayerConn)
	})
}

func TestCreateRoom(t *testing.T) {
	setupRedis(t)

	roomID, err := CreateRoom(dto.CreateRoomRequest{MaxPlayers: 2, UserID: "owner"})
	require.NoError(t, err)
	assert.Len(t, roomID, 8)

	info, err := ws.GetRoomInfo(repository.Rdb, repository.Ctx, roomID)
	require.NoError(t, err)
	assert.Equal(t, 2, info.MaxPlayers)
	assert.Equal(t, "owner", info.UserID)
	assert.Equal(t, entities.RoomStatusWaiting, info.GameStatus)
	assert.Contains(t, ws.RoomSnapshot(), roomID)
}

func TestGetRoomList(t *testing.T) {
	setupRedis(t)

	a, err := CreateRoom(dto.CreateRoomRequest{MaxPlayers: 2, UserID: "u1"})
	require.NoError(t, err)
	b, err := CreateRoom(dto.CreateRoomRequest{MaxPlayers: 3, UserID: "u2"})
	require.NoError(t, err)
	ws.RegisterRoom("ghost")

	rooms, err := GetRoomList()
	require.NoError(t, err)
	require.Len(t, rooms, 2)
	assert.True(t, rooms[0].RoomID < rooms[1].RoomID)
	assert.ElementsMatch(t, []string{a, b}, []string{rooms[0].RoomID, rooms[1].RoomID})
	assert.NotContains(t, ws.RoomSnapshot(), "ghost")
	assert.Equal(t, 0, GetOnlinePlayer())
}

func TestDeleteRoom(t *testing.T) {
	setupRedis(t)

	roomID, err := CreateRoom(dto.CreateRoomRequest{MaxPlayers: 2, UserID: "u1"})
	require.NoError(t, err)

	require.NoError(t, DeleteRoom(dto.DeleteRoomRequest{RoomID: roomID}))
	assert.NotContains(t, ws.RoomSnapshot(), roomID)
	_, err = ws.GetRoomInfo(repository.Rdb, repository.Ctx, roomID)
	assert.Error(t, err)

	assert.ErrorIs(t, DeleteRoom(dto.DeleteRoomRequest{RoomID: roomID}), ErrRoomNotFound)
}

func TestGetRoomCards(t *testing.T) {
	setupRedis(t)

	_, err := GetRoomCards("nope", "")
	assert.ErrorIs(t, err, ErrRoomNotFound)

	roomID, err := CreateRoom(dto.CreateRoomRequest{MaxPlayers: 2, UserID: "u1"})
	require.NoError(t, err)

	card := entities.CharacterDef{Name: "Kakita Yoshi", MilitarySkill: 2, PoliticalSkill: 3, Glory: 2}.NewCard("u1")
	card.Honor()
	rival := entities.CharacterDef{Name: "Akodo Toturi", MilitarySkill: 3, PoliticalSkill: 2, Glory: 2}.NewCard("u2")
	require.NoError(t, ws.SetCards(repository.Rdb, repository.Ctx, roomID, card, rival))

	views, err := GetRoomCards(roomID, "")
	require.NoError(t, err)
	assert.Len(t, views, 2)

	views, err = GetRoomCards(roomID, "u1")
	require.NoError(t, err)
	require.Len(t, views, 1)
	assert.Equal(t, card.ID, views[0].ID)
	assert.Equal(t, "honored", views[0].Status)
	assert.Equal(t, 4, views[0].MilitaryTotal)
	assert.Equal(t, 5, views[0].PoliticalTotal)
}

func TestJoinRoom(t *testing.T) {
	setupRedis(t)
	utils.InitJWT("service-secret", time.Hour)

	_, err := JoinRoom(dto.JoinRoomRequest{RoomID: "nope", UserID: "u1"})
	assert.ErrorIs(t, err, ErrRoomNotFound)

	roomID, err := CreateRoom(dto.CreateRoomRequest{MaxPlayers: 2, UserID: "u1"})
	require.NoError(t, err)

	token, err := JoinRoom(dto.JoinRoomRequest{RoomID: roomID, UserID: "u2"})
	require.NoError(t, err)
	claims, err := utils.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "u2", claims.UserID)
	assert.Equal(t, roomID, claims.RoomID)

	ws.Rooms[roomID] = []dto.PlayerConn{{PlayerID: "u1"}, {PlayerID: "u2"}}
	_, err = JoinRoom(dto.JoinRoomRequest{RoomID: roomID, UserID: "u3"})
	assert.ErrorIs(t, err, ErrRoomFull)

	_, err = JoinRoom(dto.JoinRoomRequest{RoomID: roomID, UserID: "u2"})
	assert.NoError(t, err)
}
