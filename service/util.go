package service

import "errors"

var (
	ErrRoomNotFound = errors.New("房间不存在或无相关数据")
	ErrRoomFull     = errors.New("房间已满")
)
