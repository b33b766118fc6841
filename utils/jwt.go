package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v4"
)

const accessIssuer = "go-l5r-access"

var (
	accessSecret = []byte("access-secret")
	accessTTL    = 12 * time.Hour
)

// Claims 玩家在某个房间内的身份
type Claims struct {
	UserID string `json:"user_id"`
	RoomID string `json:"room_id"`
	jwt.RegisteredClaims
}

// InitJWT 启动时设置签名密钥和有效期
func InitJWT(secret string, ttl time.Duration) {
	if secret != "" {
		accessSecret = []byte(secret)
	}
	if ttl > 0 {
		accessTTL = ttl
	}
}

func GenerateAccessToken(roomID, userID string) (string, error) {
	now := time.Now()
	claims := Claims{
		UserID: userID,
		RoomID: roomID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    accessIssuer,
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(accessSecret)
}

func ParseAccessToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return accessSecret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	if claims.Issuer != accessIssuer {
		return nil, errors.New("invalid token issuer")
	}
	if claims.UserID == "" || claims.RoomID == "" {
		return nil, errors.New("token missing user or room")
	}
	return claims, nil
}
