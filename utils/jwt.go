package utils

import (
    "time"

    "github.com/golang-jwt/jwt/v5"
)

func GenerateJWT(userID uint, secret string) (string, error) {
    token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
        "userId": userID,
        "exp":    time.Now().Add(7 * 24 * time.Hour).Unix(),
    })

    return token.SignedString([]byte(secret))
}
